package imagery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// ErrImageDecode is returned when downloaded bytes cannot be decoded as a color image.
var ErrImageDecode = errors.New("failed to decode image")

// ImageRepository is the slice of the store the image source reads from.
type ImageRepository interface {
	FirstDroneID(ctx context.Context, locationID string) (string, error)
	ListDroneImages(ctx context.Context, droneID string) ([]models.DroneImageRecord, error)
}

// BlobDownloader fetches raw object bytes from the storage bucket.
type BlobDownloader interface {
	Download(ctx context.Context, objectPath string) ([]byte, error)
}

// MissingFieldEntry records an image skipped for lacking required fields.
// Diagnostic only, never surfaced to API callers.
type MissingFieldEntry struct {
	Filename      string   `json:"filename"`
	MissingFields []string `json:"missing_fields"`
}

// Source resolves a location to its candidate images and an image reference
// to a decoded pixel buffer.
type Source struct {
	repo   ImageRepository
	blobs  BlobDownloader
	logger *logrus.Logger

	mu      sync.Mutex
	skipped []MissingFieldEntry
}

func NewSource(repo ImageRepository, blobs BlobDownloader, logger *logrus.Logger) *Source {
	return &Source{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}

// ListCandidateImages returns the valid images of a location's first
// enumerated drone. Records missing image_url, latitude or longitude are
// skipped and noted in the missing-fields log.
func (s *Source) ListCandidateImages(ctx context.Context, locationID string) ([]models.DroneImage, error) {
	droneID, err := s.repo.FirstDroneID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("imagery: could not resolve drone for location %s: %w", locationID, err)
	}
	if droneID == "" {
		s.logger.WithField("location_id", locationID).Info("No drones found for location")
		return nil, nil
	}

	records, err := s.repo.ListDroneImages(ctx, droneID)
	if err != nil {
		return nil, fmt.Errorf("imagery: could not list images for drone %s: %w", droneID, err)
	}

	valid := make([]models.DroneImage, 0, len(records))
	for _, rec := range records {
		var missing []string
		if rec.ImageURL == nil {
			missing = append(missing, "image_url")
		}
		if rec.Latitude == nil {
			missing = append(missing, "latitude")
		}
		if rec.Longitude == nil {
			missing = append(missing, "longitude")
		}
		if len(missing) > 0 {
			s.recordSkipped(rec, missing)
			continue
		}

		img := models.DroneImage{
			ID:        rec.ID,
			DroneID:   rec.DroneID,
			ImageURL:  *rec.ImageURL,
			Latitude:  *rec.Latitude,
			Longitude: *rec.Longitude,
		}
		if rec.Filename != nil {
			img.Filename = *rec.Filename
		}
		if rec.AlertStatus != nil {
			img.AlertStatus = *rec.AlertStatus
		}
		valid = append(valid, img)
	}
	return valid, nil
}

// ResolveImage downloads the image behind a public URL and decodes it as a
// color image. The returned Mat is owned by the caller.
func (s *Source) ResolveImage(ctx context.Context, imageURL string) (gocv.Mat, error) {
	objectPath, err := objectPathFromURL(imageURL)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("imagery: %w", err)
	}

	data, err := s.blobs.Download(ctx, objectPath)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("imagery: could not download %s: %w", objectPath, err)
	}

	img, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("imagery: %w: %w", ErrImageDecode, err)
	}
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, ErrImageDecode
	}
	return img, nil
}

// MissingFields returns a snapshot of the skipped-image log.
func (s *Source) MissingFields() []MissingFieldEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MissingFieldEntry, len(s.skipped))
	copy(out, s.skipped)
	return out
}

func (s *Source) recordSkipped(rec models.DroneImageRecord, missing []string) {
	filename := "unknown"
	if rec.Filename != nil {
		filename = *rec.Filename
	}

	s.mu.Lock()
	s.skipped = append(s.skipped, MissingFieldEntry{Filename: filename, MissingFields: missing})
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"filename":       filename,
		"missing_fields": strings.Join(missing, ","),
	}).Warn("Skipping image due to missing fields")
}

// objectPathFromURL derives the storage object path out of an image's public
// URL: the segment after "/o/" up to the query string, URL-unescaped.
func objectPathFromURL(imageURL string) (string, error) {
	_, encoded, found := strings.Cut(imageURL, "/o/")
	if !found {
		return "", fmt.Errorf("could not parse object path from url %q", imageURL)
	}
	encoded, _, _ = strings.Cut(encoded, "?")

	// PathUnescape, not QueryUnescape: a literal '+' in an object name must
	// survive, only percent escapes are decoded.
	path, err := url.PathUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("could not unescape object path from url %q: %w", imageURL, err)
	}
	if path == "" {
		return "", fmt.Errorf("empty object path in url %q", imageURL)
	}
	return path, nil
}
