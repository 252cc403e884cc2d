package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tieubaoca/docsum-be/utils"
)

// FileService persists uploads so the original document can be served back
// after summarization. Stored names carry a timestamp suffix to avoid
// collisions between uploads with the same name.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{uploadDir: uploadDir}, nil
}

// SaveUpload writes the uploaded content under a sanitized, timestamped name
// and returns the stored path.
func (s *FileService) SaveUpload(filename string, src io.Reader) (string, error) {
	destPath := filepath.Join(s.uploadDir, utils.TimestampedName(filename))

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return destPath, nil
}
