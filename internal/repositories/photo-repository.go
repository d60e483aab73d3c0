package repositories

import (
	"context"

	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/store"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type PhotoRepositoryInterface interface {
	GetPhotos(ctx context.Context) ([]entities.WorkplacePhoto, error)
	FindPhoto(ctx context.Context, id int64) (*entities.WorkplacePhoto, error)
	GetPhotosByUser(ctx context.Context, userID int64) ([]entities.WorkplacePhoto, error)
	GetPhotosByPoint(ctx context.Context, pointID int64) ([]entities.WorkplacePhoto, error)
	CreatePhoto(ctx context.Context, photo entities.WorkplacePhoto) (int64, error)
	DeletePhoto(ctx context.Context, id int64) (int64, error)
}

type PhotoRepository struct {
	storage *store.Store
}

func NewPhotoRepository(storage *store.Store) PhotoRepositoryInterface {
	return &PhotoRepository{
		storage: storage,
	}
}

func photoFromRow(r store.Row) *entities.WorkplacePhoto {
	return &entities.WorkplacePhoto{
		ID:        rowInt64(r, "id"),
		UserID:    rowInt64(r, "userId"),
		PointID:   rowInt64(r, "pointId"),
		DeskID:    rowInt64Ptr(r, "deskId"),
		PhotoType: rowString(r, "photoType"),
		PhotoPath: rowString(r, "photoPath"),
		TakenAt:   rowInt64(r, "takenAt"),
		IsSynced:  rowBool(r, "isSynced"),
	}
}

func (r *PhotoRepository) GetPhotos(ctx context.Context) ([]entities.WorkplacePhoto, error) {
	rows := r.storage.Select(store.TableWorkplacePhotos, store.Filter{}, store.OrderByIDDesc, store.NoLimit)
	photos := make([]entities.WorkplacePhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, *photoFromRow(row))
	}
	return photos, nil
}

func (r *PhotoRepository) FindPhoto(ctx context.Context, id int64) (*entities.WorkplacePhoto, error) {
	row := r.storage.SelectOne(store.TableWorkplacePhotos, store.ByID(id))
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	return photoFromRow(row), nil
}

func (r *PhotoRepository) GetPhotosByUser(ctx context.Context, userID int64) ([]entities.WorkplacePhoto, error) {
	rows := r.storage.Select(store.TableWorkplacePhotos, store.ByField("userId", userID), store.OrderByIDDesc, store.NoLimit)
	photos := make([]entities.WorkplacePhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, *photoFromRow(row))
	}
	return photos, nil
}

func (r *PhotoRepository) GetPhotosByPoint(ctx context.Context, pointID int64) ([]entities.WorkplacePhoto, error) {
	rows := r.storage.Select(store.TableWorkplacePhotos, store.ByField("pointId", pointID), store.OrderByIDDesc, store.NoLimit)
	photos := make([]entities.WorkplacePhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, *photoFromRow(row))
	}
	return photos, nil
}

// CreatePhoto всегда проставляет takenAt: окна "фото за сегодня" в статистике
// считаются именно по этому полю.
func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo entities.WorkplacePhoto) (int64, error) {
	takenAt := photo.TakenAt
	if takenAt == 0 {
		takenAt = utils.NowMillis()
	}
	id := r.storage.Insert(store.TableWorkplacePhotos,
		[]string{"userId", "pointId", "deskId", "photoType", "photoPath", "takenAt", "isSynced"},
		[]any{photo.UserID, photo.PointID, optInt64(photo.DeskID), photo.PhotoType, photo.PhotoPath, takenAt, photo.IsSynced},
	)
	return id, nil
}

func (r *PhotoRepository) DeletePhoto(ctx context.Context, id int64) (int64, error) {
	return r.storage.Delete(store.TableWorkplacePhotos, id), nil
}
