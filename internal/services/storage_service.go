package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/utils"
)

// StorageService writes issue report attachments to local disk under the
// configured uploads directory.
type StorageService struct {
	root         string
	maxSizeBytes int64
}

// NewStorageService creates the storage service and ensures the uploads
// directory exists.
func NewStorageService(root string, maxSizeMB int) (*StorageService, error) {
	if root == "" {
		root = "uploads"
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir %s: %w", root, err)
	}
	return &StorageService{
		root:         root,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
	}, nil
}

// Save stores one uploaded file and returns its attachment record. Files
// over the size limit are rejected before any disk write.
func (s *StorageService) Save(file *multipart.FileHeader) (*models.Attachment, error) {
	if file == nil || file.Size == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if file.Size > s.maxSizeBytes {
		return nil, fmt.Errorf("file %s exceeds the %d MB limit", file.Filename, s.maxSizeBytes/(1024*1024))
	}

	safeName := utils.SafeFileName(file.Filename)
	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), safeName)
	fullPath := filepath.Join(s.root, storedName)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", fullPath, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", fullPath, err)
	}

	return &models.Attachment{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		StoredPath:  "/uploads/" + storedName,
		LengthBytes: written,
	}, nil
}
