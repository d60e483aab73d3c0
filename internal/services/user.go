package services

import (
	"context"
	"errors"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepository.GetUsers(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id int64) (*entities.User, error) {
	return s.userRepository.FindUser(ctx, id)
}

// CreateUser создаёт сотрудника с паролем по умолчанию. Роль, если не
// указана — ENGINEER.
func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	if payload.FullName == "" || payload.Phone == "" {
		return nil, apperrors.NewInvalidInputError("заполните обязательные поля")
	}

	passwordHash, err := utils.HashPassword(constants.DefaultUserPassword)
	if err != nil {
		s.logger.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user := entities.User{
		FullName:     payload.FullName,
		Phone:        payload.Phone,
		PasswordHash: passwordHash,
		Role:         utils.SafeDeref(payload.Role),
		PointID:      payload.PointID,
		IsActive:     payload.IsActive == nil || *payload.IsActive,
	}
	if user.Role == "" {
		user.Role = constants.RoleEngineer
	}

	id, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Ошибка при создании пользователя", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь создан", zap.Int64("id", id), zap.String("role", user.Role))
	return s.userRepository.FindUser(ctx, id)
}

// RegisterUser — самостоятельная регистрация с собственным паролем.
func (s *UserService) RegisterUser(ctx context.Context, payload dto.RegisterUserDTO) (*entities.User, error) {
	if payload.FullName == "" || payload.Phone == "" || payload.Password == "" {
		return nil, apperrors.NewInvalidInputError("заполните все поля")
	}
	if len(payload.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepository.FindUserByPhone(ctx, payload.Phone); err == nil {
		return nil, apperrors.ErrUserExists
	}

	passwordHash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		FullName:     payload.FullName,
		Phone:        payload.Phone,
		PasswordHash: passwordHash,
		Role:         utils.SafeDeref(payload.Role),
		IsActive:     true,
	}
	if user.Role == "" {
		user.Role = constants.RoleSuperAdmin
	}

	id, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.userRepository.FindUser(ctx, id)
}

// Authenticate проверяет телефон и пароль. Телефоны сравниваются по
// нормализованной форме. Токены здесь не выпускаются.
func (s *UserService) Authenticate(ctx context.Context, phone, password string) (*entities.User, error) {
	if phone == "" || password == "" {
		return nil, apperrors.NewInvalidInputError("введите телефон и пароль")
	}

	user, err := s.userRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, payload dto.UpdateUserDTO) (*entities.User, error) {
	changed, err := s.userRepository.UpdateUser(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.userRepository.FindUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.userRepository.DeleteUser(ctx, id)
	return err
}

func (s *UserService) GetUsersByPoint(ctx context.Context, pointID int64) ([]entities.User, error) {
	return s.userRepository.GetUsersByPoint(ctx, pointID)
}

func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]entities.User, error) {
	return s.userRepository.GetUsersByRole(ctx, role)
}
