package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	appmedia "github.com/HarshvardhanPondkule/InventoTrack/internal/application/media"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/config"
)

var _ appmedia.Uploader = (*CloudinaryUploader)(nil)

// CloudinaryUploader implements the media port against Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds the adapter from configuration.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{client: client, folder: cfg.Folder}, nil
}

// Upload streams the file to Cloudinary and returns the stored asset's URL
// and metadata.
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*dto.UploadData, error) {
	res, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload %q: %w", filename, err)
	}
	return &dto.UploadData{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Format:   res.Format,
		Bytes:    res.Bytes,
	}, nil
}

// Delete removes an asset by its public ID.
func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	res, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %q: %w", publicID, err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %q: %s", publicID, res.Result)
	}
	return nil
}
