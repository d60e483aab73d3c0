package services

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"go.uber.org/zap"
)

type ShopService struct {
	shopRepository repositories.ShopRepositoryInterface
	logger         *zap.Logger
}

func NewShopService(shopRepository repositories.ShopRepositoryInterface,
	logger *zap.Logger,
) *ShopService {
	return &ShopService{
		shopRepository: shopRepository,
		logger:         logger,
	}
}

func (s *ShopService) GetShops(ctx context.Context) ([]entities.Shop, error) {
	return s.shopRepository.GetShops(ctx)
}

func (s *ShopService) FindShop(ctx context.Context, id int64) (*entities.Shop, error) {
	return s.shopRepository.FindShop(ctx, id)
}

func (s *ShopService) CreateShop(ctx context.Context, payload dto.CreateShopDTO) (*entities.Shop, error) {
	if payload.Name == "" || payload.Address == "" {
		return nil, apperrors.NewInvalidInputError("укажите название и адрес")
	}

	shop := entities.Shop{
		Name:         payload.Name,
		Address:      payload.Address,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		Phone:        payload.Phone,
		WorkingHours: payload.WorkingHours,
		IsActive:     payload.IsActive == nil || *payload.IsActive,
	}

	id, err := s.shopRepository.CreateShop(ctx, shop)
	if err != nil {
		s.logger.Error("Ошибка при создании магазина", zap.Error(err))
		return nil, err
	}
	return s.shopRepository.FindShop(ctx, id)
}

func (s *ShopService) UpdateShop(ctx context.Context, id int64, payload dto.UpdateShopDTO) (*entities.Shop, error) {
	if _, err := s.shopRepository.UpdateShop(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.shopRepository.FindShop(ctx, id)
}

func (s *ShopService) DeleteShop(ctx context.Context, id int64) error {
	_, err := s.shopRepository.DeleteShop(ctx, id)
	return err
}
