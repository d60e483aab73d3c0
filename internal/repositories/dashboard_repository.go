package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/store"
)

// DashboardRepository собирает счётчики для дашборда и статистики по точкам.
// Здесь живут все формы count / count-distinct, которые использует система.
type DashboardRepositoryInterface interface {
	CountUsers(ctx context.Context) int64
	CountPoints(ctx context.Context) int64
	CountTasks(ctx context.Context) int64
	CountTasksByStatus(ctx context.Context, status string) int64
	CountPurchases(ctx context.Context) int64
	CountPhotosTakenSince(ctx context.Context, sinceMillis int64) int64
	CountActiveCouriers(ctx context.Context, sinceMillis int64) int64

	CountUsersByPoint(ctx context.Context, pointID int64) int64
	CountActiveUsersByPoint(ctx context.Context, pointID int64) int64
	CountTasksByPoint(ctx context.Context, pointID int64) int64
	CountTasksByPointAndStatus(ctx context.Context, pointID int64, status string) int64
	CountPhotosByPointTakenSince(ctx context.Context, pointID int64, sinceMillis int64) int64
	CountPurchasesByPoint(ctx context.Context, pointID int64) int64
}

type DashboardRepository struct {
	storage *store.Store
}

func NewDashboardRepository(storage *store.Store) DashboardRepositoryInterface {
	return &DashboardRepository{
		storage: storage,
	}
}

func (r *DashboardRepository) CountUsers(ctx context.Context) int64 {
	return r.storage.Count(store.TableUsers, store.Filter{})
}

func (r *DashboardRepository) CountPoints(ctx context.Context) int64 {
	return r.storage.Count(store.TablePoints, store.Filter{})
}

func (r *DashboardRepository) CountTasks(ctx context.Context) int64 {
	return r.storage.Count(store.TableTasks, store.Filter{})
}

func (r *DashboardRepository) CountTasksByStatus(ctx context.Context, status string) int64 {
	return r.storage.Count(store.TableTasks, store.ByField("status", status))
}

func (r *DashboardRepository) CountPurchases(ctx context.Context) int64 {
	return r.storage.Count(store.TablePurchaseRequests, store.Filter{})
}

func (r *DashboardRepository) CountPhotosTakenSince(ctx context.Context, sinceMillis int64) int64 {
	return r.storage.Count(store.TableWorkplacePhotos, store.Filter{TakenAtGte: &sinceMillis})
}

// CountActiveCouriers считает уникальных курьеров, приславших координаты
// строго позже sinceMillis.
func (r *DashboardRepository) CountActiveCouriers(ctx context.Context, sinceMillis int64) int64 {
	return r.storage.CountDistinct(store.TableCourierLocations, "courierId",
		store.Filter{TimestampGt: &sinceMillis})
}

func (r *DashboardRepository) CountUsersByPoint(ctx context.Context, pointID int64) int64 {
	return r.storage.Count(store.TableUsers, store.ByField("pointId", pointID))
}

func (r *DashboardRepository) CountActiveUsersByPoint(ctx context.Context, pointID int64) int64 {
	return r.storage.Count(store.TableUsers, store.Filter{
		Eq: map[string]any{"pointId": pointID, "isActive": 1},
	})
}

func (r *DashboardRepository) CountTasksByPoint(ctx context.Context, pointID int64) int64 {
	return r.storage.Count(store.TableTasks, store.ByField("pointId", pointID))
}

func (r *DashboardRepository) CountTasksByPointAndStatus(ctx context.Context, pointID int64, status string) int64 {
	return r.storage.Count(store.TableTasks, store.Filter{
		Eq: map[string]any{"pointId": pointID, "status": status},
	})
}

func (r *DashboardRepository) CountPhotosByPointTakenSince(ctx context.Context, pointID int64, sinceMillis int64) int64 {
	return r.storage.Count(store.TableWorkplacePhotos, store.Filter{
		Eq:         map[string]any{"pointId": pointID},
		TakenAtGte: &sinceMillis,
	})
}

func (r *DashboardRepository) CountPurchasesByPoint(ctx context.Context, pointID int64) int64 {
	return r.storage.Count(store.TablePurchaseRequests, store.ByField("pointId", pointID))
}
