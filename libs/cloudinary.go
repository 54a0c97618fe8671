package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
	log *zap.Logger
}

// NewCloudinaryStorage prefers the separate credentials and falls back to
// CLOUDINARY_URL.
func NewCloudinaryStorage(cloudURL, cloudName, apiKey, apiSecret string, log *zap.Logger) (*CloudinaryStorage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cloudName != "" && apiKey != "" && apiSecret != "":
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	case cloudURL != "":
		cld, err = cloudinary.NewFromURL(cloudURL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, log: log}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, string, error) {
	publicID := strings.TrimSuffix(objectName(filename), filepath.Ext(filename))

	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	if res == nil {
		return "", "", errors.New("cloudinary response is nil")
	}

	url := res.SecureURL
	if url == "" {
		url = res.URL
	}
	if url == "" {
		return "", "", errors.New("cloudinary returned no url")
	}

	s.log.Debug("image uploaded", zap.String("public_id", res.PublicID))
	return url, res.PublicID, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     ref,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("delete from cloudinary: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", res.Result)
	}
	return nil
}
