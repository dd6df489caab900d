package v1

import "github.com/Shamsiaa/ForestEye-App/internal/models"

// ModelToAlertResponse converts a domain alert into its response DTO.
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	stations := make([]FireStationResponse, len(model.FireStations))
	for i, station := range model.FireStations {
		stations[i] = FireStationResponse{
			ID:    station.ID,
			Name:  station.Name,
			Phone: station.Phone,
		}
	}
	return &AlertResponse{
		AlertID:          model.ID,
		ForestName:       model.ForestName,
		ForestLocationID: model.ForestLocationID,
		ImageLocation:    model.ImageLocation,
		DetectionStatus:  model.DetectionStatus,
		Timestamp:        model.CreatedAt,
		FireStations:     stations,
	}
}

// ModelsToAlertResponses converts a slice of alerts into response DTOs.
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ModelsToFireEventResponses converts buffered fire events into response DTOs.
func ModelsToFireEventResponses(events []models.FireEvent) []FireEventResponse {
	responses := make([]FireEventResponse, len(events))
	for i, event := range events {
		responses[i] = FireEventResponse{
			Coords: CoordinatesResponse{
				Latitude:  event.Coords.Latitude,
				Longitude: event.Coords.Longitude,
			},
			ImageURL:   event.ImageURL,
			ForestName: event.ForestName,
			Class:      event.Class,
			Confidence: event.Confidence,
			LocationID: event.LocationID,
		}
	}
	return responses
}
