package entities

type TaskTemplate struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatedAt   int64   `json:"createdAt"`
}
