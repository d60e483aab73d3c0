package services

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

type PointService struct {
	pointRepository repositories.PointRepositoryInterface
	logger          *zap.Logger
}

func NewPointService(pointRepository repositories.PointRepositoryInterface,
	logger *zap.Logger,
) *PointService {
	return &PointService{
		pointRepository: pointRepository,
		logger:          logger,
	}
}

func (s *PointService) GetPoints(ctx context.Context) ([]entities.Point, error) {
	return s.pointRepository.GetPoints(ctx)
}

func (s *PointService) FindPoint(ctx context.Context, id int64) (*entities.Point, error) {
	return s.pointRepository.FindPoint(ctx, id)
}

func (s *PointService) CreatePoint(ctx context.Context, payload dto.CreatePointDTO) (*entities.Point, error) {
	if payload.Name == "" || payload.Address == "" {
		return nil, apperrors.NewInvalidInputError("укажите название и адрес")
	}

	point := entities.Point{
		Name:      payload.Name,
		Address:   payload.Address,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		OpenTime:  utils.SafeDeref(payload.OpenTime),
		CloseTime: utils.SafeDeref(payload.CloseTime),
		WorkDays:  payload.WorkDays,
		IsActive:  payload.IsActive == nil || *payload.IsActive,
	}
	if point.OpenTime == "" {
		point.OpenTime = constants.DefaultOpenTime
	}
	if point.CloseTime == "" {
		point.CloseTime = constants.DefaultCloseTime
	}
	if point.WorkDays == nil {
		point.WorkDays = constants.DefaultWorkDays
	}

	id, err := s.pointRepository.CreatePoint(ctx, point)
	if err != nil {
		s.logger.Error("Ошибка при создании точки", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Точка создана", zap.Int64("id", id), zap.String("name", point.Name))
	return s.pointRepository.FindPoint(ctx, id)
}

func (s *PointService) UpdatePoint(ctx context.Context, id int64, payload dto.UpdatePointDTO) (*entities.Point, error) {
	if _, err := s.pointRepository.UpdatePoint(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.pointRepository.FindPoint(ctx, id)
}

func (s *PointService) DeletePoint(ctx context.Context, id int64) error {
	_, err := s.pointRepository.DeletePoint(ctx, id)
	return err
}
