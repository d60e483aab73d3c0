package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type CourierLocationRepositoryInterface interface {
	CreateLocation(ctx context.Context, location entities.CourierLocation) (int64, error)
	FindLocation(ctx context.Context, id int64) (*entities.CourierLocation, error)
	GetLocationsSince(ctx context.Context, sinceMillis int64) ([]entities.CourierLocation, error)
	GetLocationsByCourier(ctx context.Context, courierID int64, limit int) ([]entities.CourierLocation, error)
}

type CourierLocationRepository struct {
	storage *store.Store
}

func NewCourierLocationRepository(storage *store.Store) CourierLocationRepositoryInterface {
	return &CourierLocationRepository{
		storage: storage,
	}
}

func locationFromRow(r store.Row) *entities.CourierLocation {
	return &entities.CourierLocation{
		ID:        rowInt64(r, "id"),
		CourierID: rowInt64(r, "courierId"),
		Latitude:  rowFloat64(r, "latitude"),
		Longitude: rowFloat64(r, "longitude"),
		Accuracy:  rowFloat64(r, "accuracy"),
		Timestamp: rowInt64(r, "timestamp"),
	}
}

// CreateLocation всегда проставляет timestamp: по нему работает фильтр
// "активных" курьеров.
func (r *CourierLocationRepository) CreateLocation(ctx context.Context, location entities.CourierLocation) (int64, error) {
	ts := location.Timestamp
	if ts == 0 {
		ts = utils.NowMillis()
	}
	id := r.storage.Insert(store.TableCourierLocations,
		[]string{"courierId", "latitude", "longitude", "accuracy", "timestamp"},
		[]any{location.CourierID, location.Latitude, location.Longitude, location.Accuracy, ts},
	)
	return id, nil
}

func (r *CourierLocationRepository) FindLocation(ctx context.Context, id int64) (*entities.CourierLocation, error) {
	row := r.storage.SelectOne(store.TableCourierLocations, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return locationFromRow(row), nil
}

// GetLocationsSince возвращает все точки строго новее sinceMillis.
func (r *CourierLocationRepository) GetLocationsSince(ctx context.Context, sinceMillis int64) ([]entities.CourierLocation, error) {
	rows := r.storage.Select(store.TableCourierLocations,
		store.Filter{TimestampGt: &sinceMillis}, store.OrderNone, store.NoLimit)
	locations := make([]entities.CourierLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, *locationFromRow(row))
	}
	return locations, nil
}

func (r *CourierLocationRepository) GetLocationsByCourier(ctx context.Context, courierID int64, limit int) ([]entities.CourierLocation, error) {
	rows := r.storage.Select(store.TableCourierLocations,
		store.ByField("courierId", courierID), store.OrderByIDDesc, limit)
	locations := make([]entities.CourierLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, *locationFromRow(row))
	}
	return locations, nil
}
