package dto

type CreateTaskDTO struct {
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	OrderNumber      *string `json:"orderNumber"`
	AssignedToUserID *int64  `json:"assignedToUserId"`
	AssignedToRole   *string `json:"assignedToRole"`
	PointID          *int64  `json:"pointId"`
	Status           *string `json:"status"`
	TemplateID       *int64  `json:"templateId"`
	DueDate          *int64  `json:"dueDate"`
}

type UpdateTaskDTO struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	OrderNumber      *string `json:"orderNumber"`
	AssignedToUserID *int64  `json:"assignedToUserId"`
	AssignedToRole   *string `json:"assignedToRole"`
	PointID          *int64  `json:"pointId"`
	Status           *string `json:"status"`
	DueDate          *int64  `json:"dueDate"`
}
