package entities

type Point struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	OpenTime  string   `json:"openTime"`
	CloseTime string   `json:"closeTime"`

	// Рабочие дни недели; в хранилище лежат сериализованным JSON-массивом.
	WorkDays []string `json:"workDays"`

	IsActive  bool  `json:"isActive"`
	CreatedAt int64 `json:"createdAt"`
}
