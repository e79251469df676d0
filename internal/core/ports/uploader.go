package ports

import "context"

// UploadResult references a stored object.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader hands raw file payloads to an external object store and returns
// the resulting references. Storage internals live behind this port.
type Uploader interface {
	Upload(ctx context.Context, file FileUpload) (*UploadResult, error)
}
