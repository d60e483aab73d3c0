package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/store"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id int64) (*entities.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (int64, error)
	UpdateUser(ctx context.Context, id int64, payload dto.UpdateUserDTO) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
	GetUsersByPoint(ctx context.Context, pointID int64) ([]entities.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]entities.User, error)
}

type UserRepository struct {
	storage *store.Store
}

func NewUserRepository(storage *store.Store) UserRepositoryInterface {
	return &UserRepository{
		storage: storage,
	}
}

func userFromRow(r store.Row) *entities.User {
	return &entities.User{
		ID:           rowInt64(r, "id"),
		FullName:     rowString(r, "fullName"),
		Phone:        rowString(r, "phone"),
		PasswordHash: rowString(r, "passwordHash"),
		Role:         rowString(r, "role"),
		PointID:      rowInt64Ptr(r, "pointId"),
		DeskID:       rowInt64Ptr(r, "deskId"),
		IsActive:     rowBool(r, "isActive"),
		AvatarURL:    rowStringPtr(r, "avatarUrl"),
		CreatedAt:    rowInt64(r, "createdAt"),
		UpdatedAt:    rowInt64(r, "updatedAt"),
	}
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	rows := r.storage.Select(store.TableUsers, store.Filter{}, store.OrderByIDDesc, store.NoLimit)
	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *userFromRow(row))
	}
	return users, nil
}

func (r *UserRepository) FindUser(ctx context.Context, id int64) (*entities.User, error) {
	row := r.storage.SelectOne(store.TableUsers, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return userFromRow(row), nil
}

// FindUserByPhone ищет по нормализованному номеру: "+7 (999) 123-45-67" и
// "79991234567" — один и тот же пользователь.
func (r *UserRepository) FindUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	rows := r.storage.Select(store.TableUsers, store.Filter{}, store.OrderNone, store.NoLimit)
	for _, row := range rows {
		if utils.SamePhone(rowString(row, "phone"), phone) {
			return userFromRow(row), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (int64, error) {
	id := r.storage.Insert(store.TableUsers,
		[]string{"fullName", "phone", "passwordHash", "role", "pointId", "deskId", "isActive", "avatarUrl"},
		[]any{user.FullName, user.Phone, user.PasswordHash, user.Role, optInt64(user.PointID), optInt64(user.DeskID), user.IsActive, optString(user.AvatarURL)},
	)
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id int64, payload dto.UpdateUserDTO) (int64, error) {
	fields := []string{}
	values := []any{}

	if payload.FullName != nil {
		fields, values = append(fields, "fullName"), append(values, *payload.FullName)
	}
	if payload.Phone != nil {
		fields, values = append(fields, "phone"), append(values, *payload.Phone)
	}
	if payload.Role != nil {
		fields, values = append(fields, "role"), append(values, *payload.Role)
	}
	if payload.PointID != nil {
		fields, values = append(fields, "pointId"), append(values, *payload.PointID)
	}
	if payload.DeskID != nil {
		fields, values = append(fields, "deskId"), append(values, *payload.DeskID)
	}
	if payload.IsActive != nil {
		fields, values = append(fields, "isActive"), append(values, *payload.IsActive)
	}
	if payload.AvatarURL != nil {
		fields, values = append(fields, "avatarUrl"), append(values, *payload.AvatarURL)
	}

	fields, values = append(fields, "updatedAt"), append(values, utils.NowMillis())

	return r.storage.Update(store.TableUsers, fields, values, id), nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TableUsers, id), nil
}

func (r *UserRepository) GetUsersByPoint(ctx context.Context, pointID int64) ([]entities.User, error) {
	rows := r.storage.Select(store.TableUsers, store.ByField("pointId", pointID), store.OrderNone, store.NoLimit)
	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *userFromRow(row))
	}
	return users, nil
}

func (r *UserRepository) GetUsersByRole(ctx context.Context, role string) ([]entities.User, error) {
	rows := r.storage.Select(store.TableUsers, store.ByField("role", role), store.OrderNone, store.NoLimit)
	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *userFromRow(row))
	}
	return users, nil
}
