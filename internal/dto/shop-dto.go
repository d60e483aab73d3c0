package dto

type CreateShopDTO struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Phone        *string  `json:"phone"`
	WorkingHours *string  `json:"workingHours"`
	IsActive     *bool    `json:"isActive"`
}

type UpdateShopDTO struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Phone        *string  `json:"phone"`
	WorkingHours *string  `json:"workingHours"`
	IsActive     *bool    `json:"isActive"`
}
