package libs

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"jasit-store/utils"
)

const ProductImageFolder = "product-images"

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStorage stores uploaded images and returns a publicly resolvable URL
// plus a ref that Delete understands.
type ImageStorage interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (url, ref string, err error)
	Delete(ctx context.Context, ref string) error
}

func ValidateImage(header *multipart.FileHeader, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return utils.InvalidInput("Format gambar tidak didukung. Hanya .png, .jpg, .jpeg, .gif, .webp")
	}
	if header.Size > maxSize {
		return utils.InvalidInput(fmt.Sprintf("File terlalu besar (maks %dMB)", maxSize/(1024*1024)))
	}
	return nil
}

func objectName(filename string) string {
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(filename)))
}
