package service

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fixando/internal/models"

	"github.com/google/uuid"
)

const MaxImageUploadBytes = 5 * 1024 * 1024 // 5 MiB

var allowedImageMIMEs = map[string]string{
	"image/jpeg":  ".jpg",
	"image/pjpeg": ".jpg",
	"image/png":   ".png",
	"image/gif":   ".gif",
	"image/webp":  ".webp",
}

type UploadImageInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ImageService stores uploaded post images on disk under a generated name
// and returns the public URL path.
type ImageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) *ImageService {
	return &ImageService{uploadDir: uploadDir}
}

// UploadDir returns the directory served at /uploads.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

func (s *ImageService) Upload(in UploadImageInput) (string, error) {
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > MaxImageUploadBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", MaxImageUploadBytes/(1024*1024)))
	}

	ext, err := s.resolveExtension(in)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, in.Content, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a stored upload given its public URL. Used to discard an
// image whose post was rejected; anything that does not look like one of our
// generated names is left alone.
func (s *ImageService) Remove(url string) {
	name := filepath.Base(url)
	if name == "." || name == string(filepath.Separator) || strings.Contains(name, "..") {
		return
	}
	_ = os.Remove(filepath.Join(s.uploadDir, name))
}

// resolveExtension checks both the declared and the sniffed content type;
// a declared image type must agree with the bytes on disk.
func (s *ImageService) resolveExtension(in UploadImageInput) (string, error) {
	declared := strings.ToLower(strings.TrimSpace(strings.Split(in.ContentType, ";")[0]))
	if _, ok := allowedImageMIMEs[declared]; !ok {
		return "", models.NewValidationError("Only image files are allowed")
	}

	detected := http.DetectContentType(in.Content)
	ext, ok := allowedImageMIMEs[detected]
	if !ok {
		return "", models.NewValidationError("Only image files are allowed")
	}

	return ext, nil
}
