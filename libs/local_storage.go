package libs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes images under dir and serves them from baseURL
// (the router mounts dir at /uploads).
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("gagal membuat folder: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) Upload(_ context.Context, r io.Reader, filename, folder string) (string, string, error) {
	if err := os.MkdirAll(filepath.Join(s.dir, folder), os.ModePerm); err != nil {
		return "", "", fmt.Errorf("gagal membuat folder: %w", err)
	}

	ref := path.Join(folder, objectName(filename))
	f, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(ref)))
	if err != nil {
		return "", "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return s.baseURL + "/" + ref, ref, nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid image ref %q", ref)
	}
	err := os.Remove(filepath.Join(s.dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
