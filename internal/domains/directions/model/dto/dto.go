package dto

type DirectionsRequest struct {
	FromLat float64 `json:"from_lat" validate:"required,latitude"`
	FromLng float64 `json:"from_lng" validate:"required,longitude"`
	ToLat   float64 `json:"to_lat"   validate:"required,latitude"`
	ToLng   float64 `json:"to_lng"   validate:"required,longitude"`
}

// DirectionsResponse carries map data only. EstimatedFare is a display hint
// derived from distance; the bookable fare always comes from the bus record.
type DirectionsResponse struct {
	DistanceKM      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
	Geometry        string  `json:"geometry"`
	EstimatedFare   float64 `json:"estimated_fare"`
}
