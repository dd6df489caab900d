package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/Shamsiaa/ForestEye-App/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// stationsCacheTTL bounds how long a location's station list may be served stale.
const stationsCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) *AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateAlert inserts a new alert and fills in its id and timestamps.
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (id, forest_name, forest_location_id, image_location, detection_status)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at;
	`
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, query,
		alert.ID,
		alert.ForestName,
		alert.ForestLocationID,
		alert.ImageLocation,
		alert.DetectionStatus,
	).Scan(&alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// AlertExistsForImage reports whether any alert already references the image.
func (r *AlertRepository) AlertExistsForImage(ctx context.Context, imageURL string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM alerts WHERE image_location = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, imageURL).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check alert existence for image: %w", err)
	}
	return exists, nil
}

// ListActiveAlerts returns all alerts with detection_status 'active',
// optionally narrowed to one forest location.
func (r *AlertRepository) ListActiveAlerts(ctx context.Context, forestID string) ([]*models.Alert, error) {
	query := `
		SELECT id, forest_name, forest_location_id, image_location, detection_status, created_at, updated_at
		FROM alerts
		WHERE detection_status = 'active'
	`
	args := []any{}
	if forestID != "" {
		query += ` AND forest_location_id = $1`
		args = append(args, forestID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.ForestName,
			&alert.ForestLocationID,
			&alert.ImageLocation,
			&alert.DetectionStatus,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during alert list iteration: %w", err)
	}
	return alerts, nil
}

// UpdateAlertStatus overwrites the status and update timestamp of an alert.
func (r *AlertRepository) UpdateAlertStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE alerts SET
			detection_status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrAlertNotFound
	}
	return nil
}

// DeleteAlert removes an alert unconditionally.
func (r *AlertRepository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM alerts WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrAlertNotFound
	}
	return nil
}

// GetFireStations returns all fire stations registered under a location.
func (r *AlertRepository) GetFireStations(ctx context.Context, locationID string) ([]models.FireStation, error) {
	query := `
		SELECT id, station_name, phone
		FROM fire_stations
		WHERE location_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fire stations: %w", err)
	}
	defer rows.Close()

	stations := make([]models.FireStation, 0)
	for rows.Next() {
		var station models.FireStation
		if err := rows.Scan(&station.ID, &station.Name, &station.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan fire station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during fire station iteration: %w", err)
	}
	return stations, nil
}

// GetStationsFromCache tries to fetch a location's station list from Redis.
// A cache miss returns (nil, nil).
func (r *AlertRepository) GetStationsFromCache(ctx context.Context, locationID string) ([]models.FireStation, error) {
	key := fmt.Sprintf("firestations:%s", locationID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fire stations from cache: %w", err)
	}

	var stations []models.FireStation
	if err := json.Unmarshal(val, &stations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fire stations from cache: %w", err)
	}
	return stations, nil
}

// SetStationsCache stores a location's station list in Redis.
func (r *AlertRepository) SetStationsCache(ctx context.Context, locationID string, stations []models.FireStation) error {
	key := fmt.Sprintf("firestations:%s", locationID)
	val, err := json.Marshal(stations)
	if err != nil {
		return fmt.Errorf("failed to marshal fire stations for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, stationsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set fire stations in cache: %w", err)
	}
	return nil
}
