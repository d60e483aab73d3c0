// Файл: internal/dto/user-dto.go
package dto

type CreateUserDTO struct {
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Role     *string `json:"role"`
	PointID  *int64  `json:"pointId"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUserDTO — частичное обновление: nil-поле не трогаем.
type UpdateUserDTO struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	PointID   *int64  `json:"pointId"`
	DeskID    *int64  `json:"deskId"`
	IsActive  *bool   `json:"isActive"`
	AvatarURL *string `json:"avatarUrl"`
}

type RegisterUserDTO struct {
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}
