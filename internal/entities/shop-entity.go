package entities

type Shop struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Phone        *string  `json:"phone"`
	WorkingHours *string  `json:"workingHours"`
	IsActive     bool     `json:"isActive"`
}
