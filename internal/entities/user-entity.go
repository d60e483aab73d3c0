// Файл: internal/entities/user-entity.go
package entities

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`

	PasswordHash string `json:"-"`

	Role string `json:"role"`

	PointID *int64 `json:"pointId"`
	DeskID  *int64 `json:"deskId"`

	IsActive  bool    `json:"isActive"`
	AvatarURL *string `json:"avatarUrl"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}
