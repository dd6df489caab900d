package imagery

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/Shamsiaa/ForestEye-App/internal/imagery/mocks"
	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSource(t *testing.T) (*Source, *mocks.MockImageRepository, *mocks.MockBlobDownloader) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockImageRepository(ctrl)
	blobMock := mocks.NewMockBlobDownloader(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	return NewSource(repoMock, blobMock, logger), repoMock, blobMock
}

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }

func TestListCandidateImages_SkipsRecordsWithMissingFields(t *testing.T) {
	source, repoMock, _ := newTestSource(t)
	ctx := context.Background()

	records := []models.DroneImageRecord{
		{
			ID:        "img-1",
			DroneID:   "drone-1",
			ImageURL:  strptr("https://storage.example.com/o/one.jpg"),
			Latitude:  f64ptr(49.5),
			Longitude: f64ptr(17.2),
			Filename:  strptr("one.jpg"),
		},
		{
			// No image_url: skipped and logged.
			ID:        "img-2",
			DroneID:   "drone-1",
			Latitude:  f64ptr(49.6),
			Longitude: f64ptr(17.3),
			Filename:  strptr("two.jpg"),
		},
		{
			// No coordinates and no filename either.
			ID:       "img-3",
			DroneID:  "drone-1",
			ImageURL: strptr("https://storage.example.com/o/three.jpg"),
		},
	}

	repoMock.EXPECT().FirstDroneID(ctx, "loc-1").Return("drone-1", nil)
	repoMock.EXPECT().ListDroneImages(ctx, "drone-1").Return(records, nil)

	images, err := source.ListCandidateImages(ctx, "loc-1")

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "img-1", images[0].ID)
	assert.Equal(t, 49.5, images[0].Latitude)
	assert.Equal(t, 17.2, images[0].Longitude)

	skipped := source.MissingFields()
	require.Len(t, skipped, 2)
	assert.Equal(t, "two.jpg", skipped[0].Filename)
	assert.Equal(t, []string{"image_url"}, skipped[0].MissingFields)
	assert.Equal(t, "unknown", skipped[1].Filename)
	assert.Equal(t, []string{"latitude", "longitude"}, skipped[1].MissingFields)
}

func TestListCandidateImages_NoDrones(t *testing.T) {
	source, repoMock, _ := newTestSource(t)
	ctx := context.Background()

	repoMock.EXPECT().FirstDroneID(ctx, "loc-1").Return("", nil)

	images, err := source.ListCandidateImages(ctx, "loc-1")

	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestListCandidateImages_RepositoryError(t *testing.T) {
	source, repoMock, _ := newTestSource(t)
	ctx := context.Background()

	repoMock.EXPECT().FirstDroneID(ctx, "loc-1").Return("drone-1", nil)
	repoMock.EXPECT().
		ListDroneImages(ctx, "drone-1").
		Return(nil, fmt.Errorf("query timeout"))

	images, err := source.ListCandidateImages(ctx, "loc-1")

	require.Error(t, err)
	assert.Nil(t, images)
}

func TestResolveImage_DownloadsParsedObjectPath(t *testing.T) {
	source, _, blobMock := newTestSource(t)
	ctx := context.Background()

	// The object path lives between "/o/" and the query string, URL-escaped.
	imageURL := "https://firebasestorage.googleapis.com/v0/b/bucket/o/drone_images%2Fone.jpg?alt=media&token=abc"

	blobMock.EXPECT().
		Download(ctx, "drone_images/one.jpg").
		Return([]byte("not-an-image"), nil)

	_, err := source.ResolveImage(ctx, imageURL)

	// Bytes are not decodable, but the path must have been parsed correctly
	// for the expectation above to match.
	require.ErrorIs(t, err, ErrImageDecode)
}

func TestResolveImage_UnparseableURL(t *testing.T) {
	source, _, _ := newTestSource(t)

	_, err := source.ResolveImage(context.Background(), "https://storage.example.com/no-object-segment.jpg")

	require.Error(t, err)
}

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "escaped path with query",
			url:  "https://firebasestorage.googleapis.com/v0/b/bucket/o/drone_images%2Fone.jpg?alt=media",
			want: "drone_images/one.jpg",
		},
		{
			name: "plain path without query",
			url:  "https://storage.example.com/o/one.jpg",
			want: "one.jpg",
		},
		{
			// A '+' is a literal character in an object name, not an
			// encoded space.
			name: "plus sign kept literal",
			url:  "https://storage.example.com/o/drone+images%2Fone.jpg?alt=media",
			want: "drone+images/one.jpg",
		},
		{
			name:    "missing object segment",
			url:     "https://storage.example.com/one.jpg",
			wantErr: true,
		},
		{
			name:    "empty path",
			url:     "https://storage.example.com/o/?alt=media",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := objectPathFromURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
