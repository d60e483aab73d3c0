package services

import (
	"context"
	"fmt"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

type PhotoService struct {
	photoRepository repositories.PhotoRepositoryInterface
	logger          *zap.Logger
}

func NewPhotoService(photoRepository repositories.PhotoRepositoryInterface,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepository: photoRepository,
		logger:          logger,
	}
}

func (s *PhotoService) GetPhotos(ctx context.Context) ([]entities.WorkplacePhoto, error) {
	return s.photoRepository.GetPhotos(ctx)
}

func (s *PhotoService) GetPhotosByUser(ctx context.Context, userID int64) ([]entities.WorkplacePhoto, error) {
	return s.photoRepository.GetPhotosByUser(ctx, userID)
}

func (s *PhotoService) GetPhotosByPoint(ctx context.Context, pointID int64) ([]entities.WorkplacePhoto, error) {
	return s.photoRepository.GetPhotosByPoint(ctx, pointID)
}

// LogPhoto фиксирует фото рабочего места. Хранится только путь/URL, сами
// файлы живут вне этой системы. actor — пользователь, от имени которого
// идёт запись; его точка подставляется, если в запросе точка не указана.
func (s *PhotoService) LogPhoto(ctx context.Context, payload dto.CreatePhotoDTO, actor *entities.User) (*entities.WorkplacePhoto, error) {
	photo := entities.WorkplacePhoto{
		UserID:    actor.ID,
		PointID:   1,
		DeskID:    payload.DeskID,
		PhotoType: utils.SafeDeref(payload.PhotoType),
		PhotoPath: payload.PhotoPath,
	}
	if payload.UserID != nil {
		photo.UserID = *payload.UserID
	}
	if payload.PointID != nil {
		photo.PointID = *payload.PointID
	} else if actor.PointID != nil {
		photo.PointID = *actor.PointID
	}
	if photo.PhotoType == "" {
		photo.PhotoType = constants.PhotoTypeDeskStart
	}
	if photo.PhotoPath == "" {
		photo.PhotoPath = fmt.Sprintf("https://via.placeholder.com/400?text=Photo+%d", utils.NowMillis())
	}

	id, err := s.photoRepository.CreatePhoto(ctx, photo)
	if err != nil {
		s.logger.Error("Ошибка при сохранении фото", zap.Error(err))
		return nil, err
	}
	return s.photoRepository.FindPhoto(ctx, id)
}

func (s *PhotoService) DeletePhoto(ctx context.Context, id int64) error {
	_, err := s.photoRepository.DeletePhoto(ctx, id)
	return err
}
