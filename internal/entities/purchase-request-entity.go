package entities

type PurchaseRequest struct {
	ID                int64   `json:"id"`
	PointID           int64   `json:"pointId"`
	ShopID            int64   `json:"shopId"`
	CreatedByUserID   int64   `json:"createdByUserId"`
	AssignedCourierID *int64  `json:"assignedCourierId"`
	Items             string  `json:"items"`
	Notes             *string `json:"notes"`
	Status            string  `json:"status"`

	CreatedAt int64 `json:"createdAt"`

	// Проставляется при переходе статуса в COMPLETED или PURCHASED.
	CompletedAt *int64 `json:"completedAt"`
}
