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

type PurchaseService struct {
	purchaseRepository repositories.PurchaseRepositoryInterface
	logger             *zap.Logger
}

func NewPurchaseService(purchaseRepository repositories.PurchaseRepositoryInterface,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepository: purchaseRepository,
		logger:             logger,
	}
}

func (s *PurchaseService) GetPurchases(ctx context.Context) ([]entities.PurchaseRequest, error) {
	return s.purchaseRepository.GetPurchases(ctx)
}

func (s *PurchaseService) FindPurchase(ctx context.Context, id int64) (*entities.PurchaseRequest, error) {
	return s.purchaseRepository.FindPurchase(ctx, id)
}

// CreatePurchase создаёт заявку на закупку. Точка и магазин по умолчанию —
// первые из справочников (их гарантирует сидер).
func (s *PurchaseService) CreatePurchase(ctx context.Context, payload dto.CreatePurchaseDTO, createdBy int64) (*entities.PurchaseRequest, error) {
	if payload.Items == "" {
		return nil, apperrors.NewInvalidInputError("укажите список товаров")
	}

	purchase := entities.PurchaseRequest{
		PointID:         1,
		ShopID:          1,
		CreatedByUserID: createdBy,
		Items:           payload.Items,
		Notes:           payload.Notes,
		Status:          utils.SafeDeref(payload.Status),
	}
	if payload.PointID != nil {
		purchase.PointID = *payload.PointID
	}
	if payload.ShopID != nil {
		purchase.ShopID = *payload.ShopID
	}
	if purchase.Status == "" {
		purchase.Status = constants.PurchaseStatusPending
	}

	id, err := s.purchaseRepository.CreatePurchase(ctx, purchase)
	if err != nil {
		s.logger.Error("Ошибка при создании заявки на закупку", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Заявка на закупку создана", zap.Int64("id", id))
	return s.purchaseRepository.FindPurchase(ctx, id)
}

func (s *PurchaseService) UpdatePurchase(ctx context.Context, id int64, payload dto.UpdatePurchaseDTO) (*entities.PurchaseRequest, error) {
	if _, err := s.purchaseRepository.UpdatePurchase(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.purchaseRepository.FindPurchase(ctx, id)
}

func (s *PurchaseService) DeletePurchase(ctx context.Context, id int64) error {
	_, err := s.purchaseRepository.DeletePurchase(ctx, id)
	return err
}

func (s *PurchaseService) GetPurchasesByCourier(ctx context.Context, courierID int64) ([]entities.PurchaseRequest, error) {
	return s.purchaseRepository.GetPurchasesByCourier(ctx, courierID)
}
