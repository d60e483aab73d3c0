package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/pkg/constants"
)

func TestPointRepository_WorkDaysRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPointRepository(newTestStorage(t))

	id, err := repo.CreatePoint(ctx, entities.Point{
		Name:      "Точка на Ленина",
		Address:   "ул. Ленина, 1",
		OpenTime:  constants.DefaultOpenTime,
		CloseTime: constants.DefaultCloseTime,
		WorkDays:  constants.DefaultWorkDays,
		IsActive:  true,
	})
	require.NoError(t, err)

	point, err := repo.FindPoint(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultWorkDays, point.WorkDays)
	assert.Equal(t, constants.DefaultOpenTime, point.OpenTime)
	assert.Nil(t, point.Latitude)
}

func TestPointRepository_GetPointsAscending(t *testing.T) {
	ctx := context.Background()
	repo := NewPointRepository(newTestStorage(t))

	for _, name := range []string{"Первая", "Вторая", "Третья"} {
		_, err := repo.CreatePoint(ctx, entities.Point{
			Name:     name,
			Address:  "адрес",
			IsActive: true,
		})
		require.NoError(t, err)
	}

	points, err := repo.GetPoints(ctx)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "Первая", points[0].Name)
	assert.Equal(t, "Третья", points[2].Name)
}

func TestPointRepository_UpdateEmptyPayloadIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewPointRepository(newTestStorage(t))

	id, err := repo.CreatePoint(ctx, entities.Point{Name: "Точка", Address: "адрес", IsActive: true})
	require.NoError(t, err)

	changed, err := repo.UpdatePoint(ctx, id, dto.UpdatePointDTO{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, changed)
}
