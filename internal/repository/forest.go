package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ForestRepository struct {
	db *pgxpool.Pool
}

func NewForestRepository(db *pgxpool.Pool) *ForestRepository {
	return &ForestRepository{db: db}
}

// ListLocationIDs returns the ids of every known forest location.
func (r *ForestRepository) ListLocationIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM forest_locations ORDER BY id;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list forest locations: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan forest location row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during forest location iteration: %w", err)
	}
	return ids, nil
}

// GetLocation returns a forest location by id, or (nil, nil) when it does not exist.
func (r *ForestRepository) GetLocation(ctx context.Context, id string) (*models.ForestLocation, error) {
	query := `SELECT id, forest_name FROM forest_locations WHERE id = $1;`

	loc := &models.ForestLocation{}
	err := r.db.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.ForestName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get forest location %s: %w", id, err)
	}
	return loc, nil
}

// FirstDroneID returns the first enumerated drone under a location,
// or "" when the location has no drones.
func (r *ForestRepository) FirstDroneID(ctx context.Context, locationID string) (string, error) {
	query := `SELECT id FROM drones WHERE location_id = $1 ORDER BY id LIMIT 1;`

	var droneID string
	err := r.db.QueryRow(ctx, query, locationID).Scan(&droneID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get first drone for location %s: %w", locationID, err)
	}
	return droneID, nil
}

// ListDroneImages returns the raw image rows of one drone, required fields unvalidated.
func (r *ForestRepository) ListDroneImages(ctx context.Context, droneID string) ([]models.DroneImageRecord, error) {
	query := `
		SELECT id, drone_id, image_url, latitude, longitude, filename, alert_status
		FROM drone_images
		WHERE drone_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, droneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drone images: %w", err)
	}
	defer rows.Close()

	records := make([]models.DroneImageRecord, 0)
	for rows.Next() {
		var rec models.DroneImageRecord
		err := rows.Scan(
			&rec.ID,
			&rec.DroneID,
			&rec.ImageURL,
			&rec.Latitude,
			&rec.Longitude,
			&rec.Filename,
			&rec.AlertStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drone image row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during drone image iteration: %w", err)
	}
	return records, nil
}

// MarkImageAlertStatus records the alert status on the image's owning row.
func (r *ForestRepository) MarkImageAlertStatus(ctx context.Context, imageID, status string) error {
	query := `UPDATE drone_images SET alert_status = $1 WHERE id = $2;`

	cmdTag, err := r.db.Exec(ctx, query, status, imageID)
	if err != nil {
		return fmt.Errorf("failed to mark image alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("drone image %s not found for status update", imageID)
	}
	return nil
}
