package models

// ForestLocation is a monitored forest area drones report images from.
type ForestLocation struct {
	ID         string `json:"id"`
	ForestName string `json:"forest_name"`
}

// DroneImageRecord is a raw drone image row as stored, before the image
// source adapter has validated it. Required fields may be absent.
type DroneImageRecord struct {
	ID          string
	DroneID     string
	ImageURL    *string
	Latitude    *float64
	Longitude   *float64
	Filename    *string
	AlertStatus *string
}

// DroneImage describes a drone capture stored in the object storage bucket.
// ImageURL, Latitude and Longitude are required by the simulation; records
// missing any of them are skipped at the adapter boundary.
type DroneImage struct {
	ID          string  `json:"id"`
	DroneID     string  `json:"drone_id"`
	ImageURL    string  `json:"image_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Filename    string  `json:"filename"`
	AlertStatus string  `json:"alert_status"`
}
