package entities

type WorkplacePhoto struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	PointID   int64  `json:"pointId"`
	DeskID    *int64 `json:"deskId"`
	PhotoType string `json:"photoType"`
	PhotoPath string `json:"photoPath"`
	TakenAt   int64  `json:"takenAt"`
	IsSynced  bool   `json:"isSynced"`
}
