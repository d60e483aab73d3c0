package dto

type CreatePurchaseDTO struct {
	PointID *int64  `json:"pointId"`
	ShopID  *int64  `json:"shopId"`
	Items   string  `json:"items"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
}

type UpdatePurchaseDTO struct {
	PointID           *int64  `json:"pointId"`
	ShopID            *int64  `json:"shopId"`
	AssignedCourierID *int64  `json:"assignedCourierId"`
	Items             *string `json:"items"`
	Notes             *string `json:"notes"`
	Status            *string `json:"status"`
}
