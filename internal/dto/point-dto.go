package dto

type CreatePointDTO struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	OpenTime  *string  `json:"openTime"`
	CloseTime *string  `json:"closeTime"`
	WorkDays  []string `json:"workDays"`
	IsActive  *bool    `json:"isActive"`
}

type UpdatePointDTO struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	OpenTime  *string  `json:"openTime"`
	CloseTime *string  `json:"closeTime"`
	WorkDays  []string `json:"workDays"`
	IsActive  *bool    `json:"isActive"`
}
