package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const (
	// MaxImageBytes caps listing images; avatars get a tighter cap.
	MaxImageBytes  = 10 * 1024 * 1024
	MaxAvatarBytes = 2 * 1024 * 1024
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileType = errors.New("invalid file type: only JPEG, PNG, and WEBP images are accepted")
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadService stores uploaded images under random opaque names. The MIME
// type is sniffed from content, never taken from the client.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// SaveImage validates and persists a single uploaded image, returning its
// public /uploads/ URL. The stored name carries no trace of the original
// filename; only the detected extension survives.
func (s *UploadService) SaveImage(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}
	if fh.Size > maxBytes {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}
	if !allowedImageTypes[mtype.String()] {
		return "", ErrInvalidFileType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	name, err := randomName(mtype.Extension())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + name, nil
}

// randomName builds an opaque filename. Collision avoidance is probabilistic;
// 8 random bytes is plenty at this scale.
func randomName(ext string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}
	return hex.EncodeToString(b) + ext, nil
}
