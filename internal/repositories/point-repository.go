package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
)

type PointRepositoryInterface interface {
	GetPoints(ctx context.Context) ([]entities.Point, error)
	FindPoint(ctx context.Context, id int64) (*entities.Point, error)
	CreatePoint(ctx context.Context, point entities.Point) (int64, error)
	UpdatePoint(ctx context.Context, id int64, payload dto.UpdatePointDTO) (int64, error)
	DeletePoint(ctx context.Context, id int64) (int64, error)
}

type PointRepository struct {
	storage *store.Store
}

func NewPointRepository(storage *store.Store) PointRepositoryInterface {
	return &PointRepository{
		storage: storage,
	}
}

func pointFromRow(r store.Row) *entities.Point {
	return &entities.Point{
		ID:        rowInt64(r, "id"),
		Name:      rowString(r, "name"),
		Address:   rowString(r, "address"),
		Latitude:  rowFloat64Ptr(r, "latitude"),
		Longitude: rowFloat64Ptr(r, "longitude"),
		OpenTime:  rowString(r, "openTime"),
		CloseTime: rowString(r, "closeTime"),
		WorkDays:  rowWorkDays(r, "workDays"),
		IsActive:  rowBool(r, "isActive"),
		CreatedAt: rowInt64(r, "createdAt"),
	}
}

func (r *PointRepository) GetPoints(ctx context.Context) ([]entities.Point, error) {
	rows := r.storage.Select(store.TablePoints, store.Filter{}, store.OrderByIDAsc, store.NoLimit)
	points := make([]entities.Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, *pointFromRow(row))
	}
	return points, nil
}

func (r *PointRepository) FindPoint(ctx context.Context, id int64) (*entities.Point, error) {
	row := r.storage.SelectOne(store.TablePoints, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return pointFromRow(row), nil
}

func (r *PointRepository) CreatePoint(ctx context.Context, point entities.Point) (int64, error) {
	id := r.storage.Insert(store.TablePoints,
		[]string{"name", "address", "latitude", "longitude", "openTime", "closeTime", "workDays", "isActive"},
		[]any{point.Name, point.Address, optFloat64(point.Latitude), optFloat64(point.Longitude), point.OpenTime, point.CloseTime, marshalWorkDays(point.WorkDays), point.IsActive},
	)
	return id, nil
}

func (r *PointRepository) UpdatePoint(ctx context.Context, id int64, payload dto.UpdatePointDTO) (int64, error) {
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
	if payload.OpenTime != nil {
		fields, values = append(fields, "openTime"), append(values, *payload.OpenTime)
	}
	if payload.CloseTime != nil {
		fields, values = append(fields, "closeTime"), append(values, *payload.CloseTime)
	}
	if payload.WorkDays != nil {
		fields, values = append(fields, "workDays"), append(values, marshalWorkDays(payload.WorkDays))
	}
	if payload.IsActive != nil {
		fields, values = append(fields, "isActive"), append(values, *payload.IsActive)
	}

	if len(fields) == 0 {
		return 0, nil
	}
	return r.storage.Update(store.TablePoints, fields, values, id), nil
}

func (r *PointRepository) DeletePoint(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TablePoints, id), nil
}
