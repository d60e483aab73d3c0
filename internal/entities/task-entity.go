package entities

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OrderNumber *string `json:"orderNumber"`

	AssignedToUserID *int64  `json:"assignedToUserId"`
	AssignedToRole   *string `json:"assignedToRole"`
	PointID          *int64  `json:"pointId"`
	CreatedByUserID  int64   `json:"createdByUserId"`

	Status     string `json:"status"`
	TemplateID *int64 `json:"templateId"`
	DueDate    *int64 `json:"dueDate"`

	// Проставляется ровно в момент перехода статуса в COMPLETED.
	CompletedAt *int64 `json:"completedAt"`
	CreatedAt   int64  `json:"createdAt"`
}
