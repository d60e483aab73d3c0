package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

func newPhotoService(t *testing.T) *PhotoService {
	t.Helper()
	return NewPhotoService(repositories.NewPhotoRepository(newTestStorage(t)), zap.NewNop())
}

func TestPhotoService_LogPhotoDefaults(t *testing.T) {
	ctx := context.Background()
	service := newPhotoService(t)

	actor := &entities.User{
		ID:      5,
		PointID: utils.ToPtr(int64(3)),
	}

	photo, err := service.LogPhoto(ctx, dto.CreatePhotoDTO{}, actor)
	require.NoError(t, err)

	// Всё не указанное берётся от автора записи.
	assert.EqualValues(t, 5, photo.UserID)
	assert.EqualValues(t, 3, photo.PointID)
	assert.Equal(t, constants.PhotoTypeDeskStart, photo.PhotoType)
	assert.NotEmpty(t, photo.PhotoPath)
	assert.Greater(t, photo.TakenAt, int64(0))
}

func TestPhotoService_LogPhotoExplicitFields(t *testing.T) {
	ctx := context.Background()
	service := newPhotoService(t)

	actor := &entities.User{ID: 5, PointID: utils.ToPtr(int64(3))}

	photo, err := service.LogPhoto(ctx, dto.CreatePhotoDTO{
		UserID:    utils.ToPtr(int64(9)),
		PointID:   utils.ToPtr(int64(7)),
		PhotoType: utils.ToPtr(constants.PhotoTypeDeskEnd),
		PhotoPath: "/uploads/desk-end.jpg",
	}, actor)
	require.NoError(t, err)

	assert.EqualValues(t, 9, photo.UserID)
	assert.EqualValues(t, 7, photo.PointID)
	assert.Equal(t, constants.PhotoTypeDeskEnd, photo.PhotoType)
	assert.Equal(t, "/uploads/desk-end.jpg", photo.PhotoPath)
}

func TestPhotoService_ActorWithoutPoint(t *testing.T) {
	ctx := context.Background()
	service := newPhotoService(t)

	photo, err := service.LogPhoto(ctx, dto.CreatePhotoDTO{}, &entities.User{ID: 2})
	require.NoError(t, err)

	// Без точки у автора — первая точка из справочника.
	assert.EqualValues(t, 1, photo.PointID)
}
