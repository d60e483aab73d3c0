package dto

type CreatePhotoDTO struct {
	UserID    *int64  `json:"userId"`
	PointID   *int64  `json:"pointId"`
	DeskID    *int64  `json:"deskId"`
	PhotoType *string `json:"type"`
	PhotoPath string  `json:"photoPath"`
}
