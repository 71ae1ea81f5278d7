package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/entity"
	repo "storefront/internal/domain/repository"
	"storefront/internal/infrastructure/objectstore"
	"storefront/pkg/helpers"
)

// allowedImageTypes is the fixed content-type allow-list for uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ImageService manages product attachments: blob bytes in the object
// store, metadata in the catalog store. The blob is always written
// before the record and deleted before the record; a dangling metadata
// row pointing at a missing blob is never acceptable, an orphan blob is.
type ImageService struct {
	Images   repo.ImageRepository
	Products repo.ProductRepository
	Blobs    objectstore.Store
	Logger   *logrus.Logger
}

func NewImageService(images repo.ImageRepository, products repo.ProductRepository, blobs objectstore.Store, logger *logrus.Logger) *ImageService {
	return &ImageService{Images: images, Products: products, Blobs: blobs, Logger: logger}
}

type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (s *ImageService) Upload(ctx context.Context, actor *entity.User, productID int64, in UploadInput) (*entity.Image, error) {
	if in.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if !allowedImageTypes[strings.ToLower(in.ContentType)] {
		return nil, ErrUnsupportedFileType
	}
	if err := RequireVerified(actor); err != nil {
		return nil, err
	}

	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.OwnerUserID != actor.ID {
		return nil, ErrAccessDenied
	}

	key := helpers.NewStorageKey(actor.Email, in.FileName)
	if err := s.Blobs.Put(ctx, key, in.ContentType, in.Body); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	img := &entity.Image{
		ProductID:   productID,
		UserID:      actor.ID,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		FileSize:    in.Size,
		StorageKey:  key,
		DateCreated: time.Now().UTC(),
	}
	if err := s.Images.Create(ctx, img); err != nil {
		// The blob stays behind as an orphan; that beats a metadata row
		// whose storage key resolves to nothing.
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("storage_key", key).Error("image metadata insert failed after blob upload")
		}
		return nil, fmt.Errorf("persist image metadata: %w", err)
	}
	return img, nil
}

// Get is a public read. An image whose stored product reference does not
// match the requested product is reported as missing.
func (s *ImageService) Get(ctx context.Context, productID, imageID int64) (*entity.Image, error) {
	img, err := s.Images.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	if img.ProductID != productID {
		return nil, ErrImageNotFound
	}
	return img, nil
}

// List returns all images attached to the product, in no guaranteed order.
func (s *ImageService) List(ctx context.Context, productID int64) ([]*entity.Image, error) {
	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.Images.ListByProduct(ctx, productID)
}

// Delete removes blob then metadata. The actor must be both the image's
// uploader and the product's owner. A blob-delete failure aborts the
// whole operation so the metadata row is retained.
func (s *ImageService) Delete(ctx context.Context, actor *entity.User, productID, imageID int64) error {
	if err := RequireVerified(actor); err != nil {
		return err
	}

	img, err := s.Images.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	if img.ProductID != productID {
		return ErrImageNotFound
	}

	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if img.UserID != actor.ID || p.OwnerUserID != actor.ID {
		return ErrAccessDenied
	}

	if err := s.Blobs.Delete(ctx, img.StorageKey); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("storage_key", img.StorageKey).Error("blob delete failed, keeping image metadata")
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	return s.Images.Delete(ctx, imageID)
}
