// Package storage implements the upload port. The local adapter writes files
// under a configured directory and serves them by URL; swapping in a cloud
// object store only requires another implementation of ports.Uploader.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// LocalUploader stores payloads on the filesystem.
type LocalUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader ensures dir exists and returns an uploader serving files
// under baseURL/uploads/.
func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes the payload under a fresh public id and returns its
// reference. The original filename only contributes the extension.
func (u *LocalUploader) Upload(ctx context.Context, file ports.FileUpload) (*ports.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	publicID := uuid.NewString()
	name := publicID + strings.ToLower(filepath.Ext(file.Filename))

	if err := os.WriteFile(filepath.Join(u.dir, name), file.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &ports.UploadResult{
		URL:      u.baseURL + path.Join("/uploads", name),
		PublicID: publicID,
	}, nil
}
