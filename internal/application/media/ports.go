// Package media defines the port to the external image hosting provider.
// Product photos are stored there; the database only keeps their URLs.
package media

import (
	"context"
	"io"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
)

// Uploader stores and removes image assets on the hosting provider.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*dto.UploadData, error)
	Delete(ctx context.Context, publicID string) error
}
