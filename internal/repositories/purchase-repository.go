package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type PurchaseRepositoryInterface interface {
	GetPurchases(ctx context.Context) ([]entities.PurchaseRequest, error)
	FindPurchase(ctx context.Context, id int64) (*entities.PurchaseRequest, error)
	CreatePurchase(ctx context.Context, purchase entities.PurchaseRequest) (int64, error)
	UpdatePurchase(ctx context.Context, id int64, payload dto.UpdatePurchaseDTO) (int64, error)
	DeletePurchase(ctx context.Context, id int64) (int64, error)
	GetPurchasesByCourier(ctx context.Context, courierID int64) ([]entities.PurchaseRequest, error)
}

type PurchaseRepository struct {
	storage *store.Store
}

func NewPurchaseRepository(storage *store.Store) PurchaseRepositoryInterface {
	return &PurchaseRepository{
		storage: storage,
	}
}

func purchaseFromRow(r store.Row) *entities.PurchaseRequest {
	return &entities.PurchaseRequest{
		ID:                rowInt64(r, "id"),
		PointID:           rowInt64(r, "pointId"),
		ShopID:            rowInt64(r, "shopId"),
		CreatedByUserID:   rowInt64(r, "createdByUserId"),
		AssignedCourierID: rowInt64Ptr(r, "assignedCourierId"),
		Items:             rowString(r, "items"),
		Notes:             rowStringPtr(r, "notes"),
		Status:            rowString(r, "status"),
		CreatedAt:         rowInt64(r, "createdAt"),
		CompletedAt:       rowInt64Ptr(r, "completedAt"),
	}
}

func (r *PurchaseRepository) GetPurchases(ctx context.Context) ([]entities.PurchaseRequest, error) {
	rows := r.storage.Select(store.TablePurchaseRequests, store.Filter{}, store.OrderByIDDesc, store.NoLimit)
	purchases := make([]entities.PurchaseRequest, 0, len(rows))
	for _, row := range rows {
		purchases = append(purchases, *purchaseFromRow(row))
	}
	return purchases, nil
}

func (r *PurchaseRepository) FindPurchase(ctx context.Context, id int64) (*entities.PurchaseRequest, error) {
	row := r.storage.SelectOne(store.TablePurchaseRequests, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return purchaseFromRow(row), nil
}

func (r *PurchaseRepository) CreatePurchase(ctx context.Context, purchase entities.PurchaseRequest) (int64, error) {
	id := r.storage.Insert(store.TablePurchaseRequests,
		[]string{"pointId", "shopId", "createdByUserId", "items", "notes", "status"},
		[]any{purchase.PointID, purchase.ShopID, purchase.CreatedByUserID, purchase.Items, optString(purchase.Notes), purchase.Status},
	)
	return id, nil
}

// UpdatePurchase — частичное обновление. Финальный статус (COMPLETED или
// PURCHASED) проставляет completedAt тем же вызовом.
func (r *PurchaseRepository) UpdatePurchase(ctx context.Context, id int64, payload dto.UpdatePurchaseDTO) (int64, error) {
	fields := []string{}
	values := []any{}

	if payload.PointID != nil {
		fields, values = append(fields, "pointId"), append(values, *payload.PointID)
	}
	if payload.ShopID != nil {
		fields, values = append(fields, "shopId"), append(values, *payload.ShopID)
	}
	if payload.AssignedCourierID != nil {
		fields, values = append(fields, "assignedCourierId"), append(values, *payload.AssignedCourierID)
	}
	if payload.Items != nil {
		fields, values = append(fields, "items"), append(values, *payload.Items)
	}
	if payload.Notes != nil {
		fields, values = append(fields, "notes"), append(values, *payload.Notes)
	}
	if payload.Status != nil {
		fields, values = append(fields, "status"), append(values, *payload.Status)
		if constants.IsPurchaseFinalStatus(*payload.Status) {
			fields, values = append(fields, "completedAt"), append(values, utils.NowMillis())
		}
	}

	if len(fields) == 0 {
		return 0, nil
	}
	return r.storage.Update(store.TablePurchaseRequests, fields, values, id), nil
}

func (r *PurchaseRepository) DeletePurchase(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TablePurchaseRequests, id), nil
}

func (r *PurchaseRepository) GetPurchasesByCourier(ctx context.Context, courierID int64) ([]entities.PurchaseRequest, error) {
	rows := r.storage.Select(store.TablePurchaseRequests, store.ByField("assignedCourierId", courierID), store.OrderByIDDesc, store.NoLimit)
	purchases := make([]entities.PurchaseRequest, 0, len(rows))
	for _, row := range rows {
		purchases = append(purchases, *purchaseFromRow(row))
	}
	return purchases, nil
}
