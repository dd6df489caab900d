package simulation

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/Shamsiaa/ForestEye-App/internal/simulation/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gocv.io/x/gocv"
)

type engineMocks struct {
	imagery  *mocks.MockImagerySource
	detector *mocks.MockDetector
	forests  *mocks.MockForestStore
	alerts   *mocks.MockAlertWriter
}

// newTestEngine builds an engine with mocked collaborators and a tight
// detection delay so runs finish fast.
func newTestEngine(t *testing.T, cfg Config) (*Engine, *engineMocks) {
	ctrl := gomock.NewController(t)
	m := &engineMocks{
		imagery:  mocks.NewMockImagerySource(ctrl),
		detector: mocks.NewMockDetector(ctrl),
		forests:  mocks.NewMockForestStore(ctrl),
		alerts:   mocks.NewMockAlertWriter(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	if cfg.DetectionDelay == 0 {
		cfg.DetectionDelay = time.Millisecond
	}
	if cfg.StopTimeout == 0 {
		cfg.StopTimeout = time.Second
	}

	engine := NewEngine(m.imagery, m.detector, m.forests, m.alerts, nil, nil, logger, cfg)
	return engine, m
}

func fireResult() *models.DetectionResult {
	return &models.DetectionResult{
		Status: "fire detected",
		Detections: []models.Detection{
			{Class: "fire", Confidence: 0.87},
		},
	}
}

// expectDetection wires the full happy path for one location.
func expectDetection(m *engineMocks, locationID, imageURL string) {
	img := models.DroneImage{
		ID:        "img-" + locationID,
		ImageURL:  imageURL,
		Latitude:  49.5,
		Longitude: 17.2,
	}
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), locationID).
		Return([]models.DroneImage{img}, nil).
		Times(1)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), imageURL).
		DoAndReturn(func(_ context.Context, _ string) (gocv.Mat, error) {
			return gocv.NewMat(), nil
		}).
		Times(1)
	m.alerts.EXPECT().
		AlertExistsForImage(gomock.Any(), imageURL).
		Return(false, nil).
		Times(1)
	m.forests.EXPECT().
		GetLocation(gomock.Any(), locationID).
		Return(&models.ForestLocation{ID: locationID, ForestName: "Redwood"}, nil).
		Times(1)
	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	m.forests.EXPECT().
		MarkImageAlertStatus(gomock.Any(), img.ID, models.StatusActive).
		Return(nil).
		Times(1)
}

func waitForIdle(t *testing.T, engine *Engine) {
	t.Helper()
	require.Eventually(t, func() bool { return !engine.Running() },
		2*time.Second, 2*time.Millisecond, "worker did not finish in time")
}

func TestEngine_SecondStartIsNoOp(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 4})
	release := make(chan struct{})

	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]string, error) {
			<-release
			return nil, nil
		}).
		Times(1)

	require.True(t, engine.Start())
	assert.True(t, engine.Running())

	// The running worker must be left untouched.
	assert.False(t, engine.Start())

	close(release)
	waitForIdle(t, engine)
}

func TestEngine_RunCreatesAlertsAcrossLocations(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 2})

	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil).Times(2)
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1", "loc-2"}, nil)
	expectDetection(m, "loc-1", "https://storage.example.com/o/one.jpg")
	expectDetection(m, "loc-2", "https://storage.example.com/o/two.jpg")

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	events := engine.Events()
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "Redwood", event.ForestName)
		assert.Equal(t, "fire", event.Class)
		assert.Equal(t, 0.87, event.Confidence)
		assert.Equal(t, 49.5, event.Coords.Latitude)
	}
}

func TestEngine_EventBufferKeepsLastFour(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 5})

	locationIDs := []string{"loc-1", "loc-2", "loc-3", "loc-4", "loc-5"}
	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil).Times(5)
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return(append([]string{}, locationIDs...), nil)
	for _, id := range locationIDs {
		expectDetection(m, id, "https://storage.example.com/o/"+id+".jpg")
	}

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Len(t, engine.Events(), 4)
}

func TestEngine_SkipsWhenAlertAlreadyExists(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 4})

	img := models.DroneImage{
		ID:       "img-1",
		ImageURL: "https://storage.example.com/o/dup.jpg",
	}
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-1").
		Return([]models.DroneImage{img}, nil)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), img.ImageURL).
		DoAndReturn(func(_ context.Context, _ string) (gocv.Mat, error) {
			return gocv.NewMat(), nil
		})
	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil)
	m.alerts.EXPECT().
		AlertExistsForImage(gomock.Any(), img.ImageURL).
		Return(true, nil)
	// No CreateAlert expectation: a duplicate image must not produce a second alert.

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Empty(t, engine.Events())
}

func TestEngine_SkipsWhenNothingDetected(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 4})

	img := models.DroneImage{
		ID:       "img-1",
		ImageURL: "https://storage.example.com/o/clear.jpg",
	}
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-1").
		Return([]models.DroneImage{img}, nil)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), img.ImageURL).
		DoAndReturn(func(_ context.Context, _ string) (gocv.Mat, error) {
			return gocv.NewMat(), nil
		})
	m.detector.EXPECT().
		Detect(gomock.Any()).
		Return(&models.DetectionResult{Status: models.NothingDetected}, nil)

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Empty(t, engine.Events())
}

func TestEngine_ResolveFailureMovesOnToNextLocation(t *testing.T) {
	// MaxDetections stays out of reach so both locations are visited in
	// either shuffle order.
	engine, m := newTestEngine(t, Config{MaxDetections: 2})

	badImg := models.DroneImage{
		ID:       "img-bad",
		ImageURL: "https://storage.example.com/o/bad.jpg",
	}
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-bad", "loc-good"}, nil)
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-bad").
		Return([]models.DroneImage{badImg}, nil)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), badImg.ImageURL).
		Return(gocv.Mat{}, fmt.Errorf("object not found"))

	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil)
	expectDetection(m, "loc-good", "https://storage.example.com/o/good.jpg")

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	// The failed resolve is skipped without counting as a detection and
	// without ending the run.
	events := engine.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "https://storage.example.com/o/good.jpg", events[0].ImageURL)
}

func TestEngine_SkipsResultWithoutDetections(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 4})

	img := models.DroneImage{
		ID:       "img-1",
		ImageURL: "https://storage.example.com/o/odd.jpg",
	}
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-1").
		Return([]models.DroneImage{img}, nil)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), img.ImageURL).
		DoAndReturn(func(_ context.Context, _ string) (gocv.Mat, error) {
			return gocv.NewMat(), nil
		})
	// A detector reporting a hit but handing back no detections must not
	// crash the worker or produce an alert.
	m.detector.EXPECT().
		Detect(gomock.Any()).
		Return(&models.DetectionResult{Status: "fire detected", Detections: []models.Detection{}}, nil)

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Empty(t, engine.Events())
}

func TestEngine_SkipsLocationWithoutCandidates(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 4})

	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-1").
		Return(nil, nil)

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Empty(t, engine.Events())
}

func TestEngine_StopInterruptsSleep(t *testing.T) {
	// A long delay keeps the worker parked in its throttle sleep after the
	// first detection; Stop must cut that short.
	engine, m := newTestEngine(t, Config{
		MaxDetections:  2,
		DetectionDelay: time.Minute,
		StopTimeout:    time.Second,
	})

	created := make(chan struct{})
	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil)
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)

	img := models.DroneImage{
		ID:       "img-1",
		ImageURL: "https://storage.example.com/o/one.jpg",
		Latitude: 49.5, Longitude: 17.2,
	}
	m.imagery.EXPECT().
		ListCandidateImages(gomock.Any(), "loc-1").
		Return([]models.DroneImage{img}, nil)
	m.imagery.EXPECT().
		ResolveImage(gomock.Any(), img.ImageURL).
		DoAndReturn(func(_ context.Context, _ string) (gocv.Mat, error) {
			return gocv.NewMat(), nil
		})
	m.alerts.EXPECT().
		AlertExistsForImage(gomock.Any(), img.ImageURL).
		Return(false, nil)
	m.forests.EXPECT().
		GetLocation(gomock.Any(), "loc-1").
		Return(&models.ForestLocation{ID: "loc-1", ForestName: "Redwood"}, nil)
	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Alert) error {
			close(created)
			return nil
		})
	m.forests.EXPECT().
		MarkImageAlertStatus(gomock.Any(), img.ID, models.StatusActive).
		Return(nil)

	require.True(t, engine.Start())

	select {
	case <-created:
	case <-time.After(2 * time.Second):
		t.Fatal("first detection never happened")
	}

	stopped := time.Now()
	engine.Stop()
	assert.Less(t, time.Since(stopped), 5*time.Second)
	assert.False(t, engine.Running())

	// The event from the completed iteration survives the stop.
	assert.Len(t, engine.Events(), 1)
}

func TestEngine_StopWithoutRunIsNoOp(t *testing.T) {
	engine, _ := newTestEngine(t, Config{MaxDetections: 4})

	engine.Stop()
	assert.False(t, engine.Running())
	assert.Empty(t, engine.Events())
}

func TestEngine_StaleWorkerDoesNotEndNewRun(t *testing.T) {
	// A tiny stop timeout lets Stop give up while the first worker is still
	// parked inside its location query.
	engine, m := newTestEngine(t, Config{
		MaxDetections: 4,
		StopTimeout:   5 * time.Millisecond,
	})

	firstParked := make(chan struct{})
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]string, error) {
			<-firstParked
			return nil, nil
		})

	require.True(t, engine.Start())
	engine.Stop()
	require.False(t, engine.Running())

	secondParked := make(chan struct{})
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]string, error) {
			<-secondParked
			return nil, nil
		})

	require.True(t, engine.Start())

	// Let the first worker exit; its deferred cleanup must leave the
	// second run untouched.
	close(firstParked)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, engine.Running())

	close(secondParked)
	waitForIdle(t, engine)
}

func TestEngine_RestartClearsEventBuffer(t *testing.T) {
	engine, m := newTestEngine(t, Config{MaxDetections: 1})

	m.detector.EXPECT().Detect(gomock.Any()).Return(fireResult(), nil)
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return([]string{"loc-1"}, nil)
	expectDetection(m, "loc-1", "https://storage.example.com/o/one.jpg")

	require.True(t, engine.Start())
	waitForIdle(t, engine)
	require.Len(t, engine.Events(), 1)

	// Second run finds nothing; the old buffer must not leak into it.
	m.forests.EXPECT().
		ListLocationIDs(gomock.Any()).
		Return(nil, nil)

	require.True(t, engine.Start())
	waitForIdle(t, engine)

	assert.Empty(t, engine.Events())
}
