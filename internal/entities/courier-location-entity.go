package entities

// CourierLocation — точка трека курьера. Таблица append-only.
type CourierLocation struct {
	ID        int64   `json:"id"`
	CourierID int64   `json:"courierId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}
