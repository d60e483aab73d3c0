package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
)

type ShopRepositoryInterface interface {
	GetShops(ctx context.Context) ([]entities.Shop, error)
	FindShop(ctx context.Context, id int64) (*entities.Shop, error)
	CreateShop(ctx context.Context, shop entities.Shop) (int64, error)
	UpdateShop(ctx context.Context, id int64, payload dto.UpdateShopDTO) (int64, error)
	DeleteShop(ctx context.Context, id int64) (int64, error)
}

type ShopRepository struct {
	storage *store.Store
}

func NewShopRepository(storage *store.Store) ShopRepositoryInterface {
	return &ShopRepository{
		storage: storage,
	}
}

func shopFromRow(r store.Row) *entities.Shop {
	return &entities.Shop{
		ID:           rowInt64(r, "id"),
		Name:         rowString(r, "name"),
		Address:      rowString(r, "address"),
		Latitude:     rowFloat64Ptr(r, "latitude"),
		Longitude:    rowFloat64Ptr(r, "longitude"),
		Phone:        rowStringPtr(r, "phone"),
		WorkingHours: rowStringPtr(r, "workingHours"),
		IsActive:     rowBool(r, "isActive"),
	}
}

func (r *ShopRepository) GetShops(ctx context.Context) ([]entities.Shop, error) {
	rows := r.storage.Select(store.TableShops, store.Filter{}, store.OrderByIDAsc, store.NoLimit)
	shops := make([]entities.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, *shopFromRow(row))
	}
	return shops, nil
}

func (r *ShopRepository) FindShop(ctx context.Context, id int64) (*entities.Shop, error) {
	row := r.storage.SelectOne(store.TableShops, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return shopFromRow(row), nil
}

func (r *ShopRepository) CreateShop(ctx context.Context, shop entities.Shop) (int64, error) {
	id := r.storage.Insert(store.TableShops,
		[]string{"name", "address", "latitude", "longitude", "phone", "workingHours", "isActive"},
		[]any{shop.Name, shop.Address, optFloat64(shop.Latitude), optFloat64(shop.Longitude), optString(shop.Phone), optString(shop.WorkingHours), shop.IsActive},
	)
	return id, nil
}

func (r *ShopRepository) UpdateShop(ctx context.Context, id int64, payload dto.UpdateShopDTO) (int64, error) {
	fields := []string{}
	values := []any{}

	if payload.Name != nil {
		fields, values = append(fields, "name"), append(values, *payload.Name)
	}
	if payload.Address != nil {
		fields, values = append(fields, "address"), append(values, *payload.Address)
	}
	if payload.Latitude != nil {
		fields, values = append(fields, "latitude"), append(values, *payload.Latitude)
	}
	if payload.Longitude != nil {
		fields, values = append(fields, "longitude"), append(values, *payload.Longitude)
	}
	if payload.Phone != nil {
		fields, values = append(fields, "phone"), append(values, *payload.Phone)
	}
	if payload.WorkingHours != nil {
		fields, values = append(fields, "workingHours"), append(values, *payload.WorkingHours)
	}
	if payload.IsActive != nil {
		fields, values = append(fields, "isActive"), append(values, *payload.IsActive)
	}

	if len(fields) == 0 {
		return 0, nil
	}
	return r.storage.Update(store.TableShops, fields, values, id), nil
}

func (r *ShopRepository) DeleteShop(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TableShops, id), nil
}
