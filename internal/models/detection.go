package models

// Detection is a single model output kept after label filtering.
type Detection struct {
	Class      string     `json:"class"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"`
}

// DetectionResult is the normalized outcome of one detector call.
// Status is "<class> detected" for the last kept detection, or
// NothingDetected when the filtered list is empty.
type DetectionResult struct {
	Status     string      `json:"status"`
	Detections []Detection `json:"detections"`
}

// NothingDetected is the literal status for a run with no qualifying detections.
const NothingDetected = "nothing detected"

// Coordinates of a fire event on the map.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FireEvent is an ephemeral, in-memory summary of a detection, exposed for
// live polling. It is never persisted.
type FireEvent struct {
	Coords     Coordinates `json:"coords"`
	ImageURL   string      `json:"image_url"`
	ForestName string      `json:"forest_name"`
	Class      string      `json:"class"`
	Confidence float64     `json:"confidence"`
	LocationID string      `json:"location_id"`
}
