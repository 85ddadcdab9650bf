package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
)

// Sentinel errors for media uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrImageRequired       = errors.New("image is required")
)

// Allowed image MIME types.
var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Upload is an image attached to a multipart write request.
type Upload struct {
	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// Validate checks the upload against the allowed types and the size cap.
func (u *Upload) Validate(maxBytes int64) error {
	if !allowedMIMETypes[u.ContentType] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, u.ContentType)
	}
	if u.Size > maxBytes {
		return fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, u.Size, maxBytes)
	}
	return nil
}

// MediaStore stores uploaded images on the external media host and deletes
// them by the stored URL.
type MediaStore interface {
	Upload(ctx context.Context, up *Upload) (string, error)
	Delete(ctx context.Context, url string) error
}

// CloudinaryStore is the Cloudinary-backed MediaStore.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a CloudinaryStore from a cloudinary:// URL.
func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Upload streams the image to Cloudinary and returns its durable URL.
func (s *CloudinaryStore) Upload(ctx context.Context, up *Upload) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, up.File, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return resp.SecureURL, nil
}

// Delete removes the image the URL points at.
func (s *CloudinaryStore) Delete(ctx context.Context, url string) error {
	publicID := ExtractPublicID(url)
	if publicID == "" {
		return fmt.Errorf("no public id in url %q", url)
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy image: %w", err)
	}
	return nil
}

// cleanupImage deletes a stored image best-effort. Cleanup is not atomic
// with the document write; failures are logged and swallowed so the
// surrounding operation proceeds.
func cleanupImage(ctx context.Context, media MediaStore, url string, log zerolog.Logger) {
	if url == "" {
		return
	}
	if err := media.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("image", url).Msg("Failed to delete image from media host")
	}
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// ExtractPublicID recovers the Cloudinary public id from a delivery URL:
// everything after the upload (and optional version) segment, without the
// file extension. Returns "" when the URL is not a Cloudinary delivery URL.
func ExtractPublicID(url string) string {
	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}
	segments := strings.Split(after, "/")
	if len(segments) > 1 && versionSegment.MatchString(segments[0]) {
		segments = segments[1:]
	}
	publicID := strings.Join(segments, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}
