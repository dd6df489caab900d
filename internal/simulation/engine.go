package simulation

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/Shamsiaa/ForestEye-App/internal/webhook"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// maxBufferedEvents bounds the in-memory fire event buffer; the oldest entry
// is evicted once a fifth arrives.
const maxBufferedEvents = 4

// ImagerySource resolves a location to candidate images and an image
// reference to decoded pixels.
type ImagerySource interface {
	ListCandidateImages(ctx context.Context, locationID string) ([]models.DroneImage, error)
	ResolveImage(ctx context.Context, imageURL string) (gocv.Mat, error)
}

// Detector runs the fire/smoke model on one decoded image.
type Detector interface {
	Detect(img gocv.Mat) (*models.DetectionResult, error)
}

// ForestStore is the location-side slice of the store the engine reads and marks.
type ForestStore interface {
	ListLocationIDs(ctx context.Context) ([]string, error)
	GetLocation(ctx context.Context, id string) (*models.ForestLocation, error)
	MarkImageAlertStatus(ctx context.Context, imageID, status string) error
}

// AlertWriter is the alert-side slice of the store the engine writes through.
type AlertWriter interface {
	AlertExistsForImage(ctx context.Context, imageURL string) (bool, error)
	CreateAlert(ctx context.Context, alert *models.Alert) error
}

// EventPublisher fans a fire event out to live consumers. Optional.
type EventPublisher interface {
	PublishFireEvent(event models.FireEvent) error
}

// Config carries the engine's tunables.
type Config struct {
	MaxDetections  int
	DetectionDelay time.Duration
	StopTimeout    time.Duration
}

// Engine drives simulation runs: at most one background worker at a time
// sweeping locations, detecting fire/smoke and writing alerts. All shared
// state sits behind one mutex, held only for state access, never across a
// call to an external collaborator.
type Engine struct {
	imagery  ImagerySource
	detector Detector
	forests  ForestStore
	alerts   AlertWriter
	events   EventPublisher         // nil when NATS is not configured
	webhooks webhook.AlertPublisher // nil when webhook forwarding is not configured
	logger   *logrus.Logger
	cfg      Config

	mu      sync.Mutex
	running bool
	gen     uint64
	buffer  []models.FireEvent
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewEngine(
	imagery ImagerySource,
	detector Detector,
	forests ForestStore,
	alerts AlertWriter,
	events EventPublisher,
	webhooks webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg Config,
) *Engine {
	return &Engine{
		imagery:  imagery,
		detector: detector,
		forests:  forests,
		alerts:   alerts,
		events:   events,
		webhooks: webhooks,
		logger:   logger,
		cfg:      cfg,
	}
}

// Start begins a run on a background goroutine. It reports false, without
// touching the current run, when one is already in flight.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		e.logger.Warn("Simulation already running, skipping start")
		return false
	}

	e.logger.Info("Starting fire simulation worker")
	e.running = true
	e.gen++
	e.buffer = nil

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	go e.run(ctx, e.done, e.gen)

	return true
}

// Stop requests the current run to end and waits up to StopTimeout for the
// worker to exit. The wait is best-effort: an in-flight iteration is never
// force-terminated.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		e.logger.Info("Simulation not running, nothing to stop")
		return
	}
	e.logger.Info("Stopping simulation")
	e.running = false
	cancel := e.cancel
	done := e.done
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-done:
	case <-time.After(e.cfg.StopTimeout):
		e.logger.Warn("Timed out waiting for simulation worker to exit")
	}
}

// Running reports whether a run is currently in flight.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Events returns a snapshot of the bounded fire event buffer, oldest first.
func (e *Engine) Events() []models.FireEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.FireEvent, len(e.buffer))
	copy(out, e.buffer)
	return out
}

// run is the worker body. Any error beyond the explicitly handled
// no-candidates and image-resolve conditions terminates the run, not just
// the iteration.
func (e *Engine) run(ctx context.Context, done chan struct{}, gen uint64) {
	defer func() {
		e.mu.Lock()
		// A worker that outlived its Stop timeout must not touch the
		// state of a newer run.
		if e.gen == gen {
			e.running = false
			e.cancel = nil
		}
		e.mu.Unlock()
		close(done)
	}()

	log := e.logger.WithField("component", "simulation")

	locationIDs, err := e.forests.ListLocationIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Simulation aborted: could not enumerate forest locations")
		return
	}
	rand.Shuffle(len(locationIDs), func(i, j int) {
		locationIDs[i], locationIDs[j] = locationIDs[j], locationIDs[i]
	})

	detected := 0
	next := 0
	for detected < e.cfg.MaxDetections {
		if e.stopRequested(gen) {
			log.Info("Simulation stop observed, ending run")
			return
		}

		if next >= len(locationIDs) {
			log.Info("No more unique forest locations available")
			return
		}
		// One attempt per location per run, regardless of outcome.
		locationID := locationIDs[next]
		next++

		created, err := e.visit(ctx, locationID)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.WithError(err).WithField("location_id", locationID).Error("Simulation run terminated")
			return
		}
		if created {
			detected++
		}

		// Fixed throttle between iterations, detection or not.
		if !e.sleep(ctx) {
			return
		}
	}

	log.WithField("detections", detected).Info("Simulation run complete")
}

// visit attempts one location: pick a random candidate image, detect, and on
// a qualifying, non-duplicate detection create the alert and buffer the event.
func (e *Engine) visit(ctx context.Context, locationID string) (bool, error) {
	log := e.logger.WithFields(logrus.Fields{
		"component":   "simulation",
		"location_id": locationID,
	})

	candidates, err := e.imagery.ListCandidateImages(ctx, locationID)
	if err != nil {
		return false, err
	}
	if len(candidates) == 0 {
		log.Info("No candidate images for location")
		return false, nil
	}

	img := candidates[rand.Intn(len(candidates))]

	frame, err := e.imagery.ResolveImage(ctx, img.ImageURL)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		log.WithError(err).Warn("Could not resolve image, skipping")
		return false, nil
	}
	defer frame.Close()

	result, err := e.detector.Detect(frame)
	if err != nil {
		return false, err
	}
	if result.Status == models.NothingDetected {
		log.Debug("Nothing detected")
		return false, nil
	}
	if len(result.Detections) == 0 {
		log.WithField("status", result.Status).Warn("Detection status carries no detections, skipping")
		return false, nil
	}

	// Never create two alerts for the same image reference.
	exists, err := e.alerts.AlertExistsForImage(ctx, img.ImageURL)
	if err != nil {
		return false, err
	}
	if exists {
		log.Info("Alert already exists for this image, skipping")
		return false, nil
	}

	forestName := "Unknown"
	location, err := e.forests.GetLocation(ctx, locationID)
	if err != nil {
		return false, err
	}
	if location != nil {
		forestName = location.ForestName
	}

	first := result.Detections[0]

	alert := &models.Alert{
		ForestName:       forestName,
		ForestLocationID: locationID,
		ImageLocation:    img.ImageURL,
		DetectionStatus:  models.StatusActive,
	}
	if err := e.alerts.CreateAlert(ctx, alert); err != nil {
		return false, err
	}
	if err := e.forests.MarkImageAlertStatus(ctx, img.ID, models.StatusActive); err != nil {
		return false, err
	}

	event := models.FireEvent{
		Coords: models.Coordinates{
			Latitude:  img.Latitude,
			Longitude: img.Longitude,
		},
		ImageURL:   img.ImageURL,
		ForestName: forestName,
		Class:      first.Class,
		Confidence: first.Confidence,
		LocationID: locationID,
	}
	e.appendEvent(event)

	if e.events != nil {
		if err := e.events.PublishFireEvent(event); err != nil {
			log.WithError(err).Warn("Failed to publish fire event")
		}
	}
	if e.webhooks != nil {
		webhookEvent := webhook.AlertEvent{
			AlertID:          alert.ID,
			ForestName:       alert.ForestName,
			ForestLocationID: alert.ForestLocationID,
			ImageLocation:    alert.ImageLocation,
			DetectionStatus:  alert.DetectionStatus,
			Timestamp:        alert.CreatedAt,
		}
		if err := e.webhooks.Publish(ctx, webhookEvent); err != nil {
			log.WithError(err).Warn("Failed to enqueue alert webhook")
		}
	}

	log.WithFields(logrus.Fields{
		"forest_name": forestName,
		"class":       first.Class,
		"confidence":  first.Confidence,
		"latitude":    img.Latitude,
		"longitude":   img.Longitude,
	}).Info("Alert created")

	return true, nil
}

// appendEvent adds a fire event, trimming the buffer to the most recent entries.
func (e *Engine) appendEvent(event models.FireEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer = append(e.buffer, event)
	if len(e.buffer) > maxBufferedEvents {
		e.buffer = e.buffer[len(e.buffer)-maxBufferedEvents:]
	}
}

// stopRequested is the per-iteration cancellation point. A worker whose
// generation was superseded stops even though running is true again.
func (e *Engine) stopRequested(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen != gen || !e.running
}

// sleep waits out the detection delay, cancellable.
func (e *Engine) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(e.cfg.DetectionDelay):
		return true
	}
}
