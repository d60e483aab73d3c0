package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

func newCourierFixture(t *testing.T) (*CourierService, repositories.CourierLocationRepositoryInterface) {
	t.Helper()
	repo := repositories.NewCourierLocationRepository(newTestStorage(t))
	return NewCourierService(repo, zap.NewNop()), repo
}

func TestCourierService_ReportLocation(t *testing.T) {
	ctx := context.Background()
	service, _ := newCourierFixture(t)

	before := utils.NowMillis()
	loc, err := service.ReportLocation(ctx, 1, dto.ReportLocationDTO{
		Latitude:  55.75,
		Longitude: 37.61,
		Accuracy:  utils.ToPtr(12.5),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, loc.CourierID)
	assert.InDelta(t, 12.5, loc.Accuracy, 1e-9)
	assert.GreaterOrEqual(t, loc.Timestamp, before)
}

func TestCourierService_ActiveCouriers(t *testing.T) {
	ctx := context.Background()
	service, repo := newCourierFixture(t)

	now := utils.NowMillis()
	for _, loc := range []entities.CourierLocation{
		{CourierID: 1, Latitude: 1, Timestamp: now - 300},
		{CourierID: 1, Latitude: 2, Timestamp: now - 100},
		{CourierID: 2, Latitude: 3, Timestamp: now - 200},
		{CourierID: 3, Latitude: 4, Timestamp: now - 2*constants.CourierActiveWindowMs},
	} {
		_, err := repo.CreateLocation(ctx, loc)
		require.NoError(t, err)
	}

	active, err := service.ActiveCouriers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)

	byCourier := make(map[int64]entities.CourierLocation, len(active))
	for _, loc := range active {
		byCourier[loc.CourierID] = loc
	}

	// Для каждого курьера — именно последняя точка.
	require.Contains(t, byCourier, int64(1))
	assert.InDelta(t, 2, byCourier[1].Latitude, 1e-9)
	require.Contains(t, byCourier, int64(2))
	assert.NotContains(t, byCourier, int64(3))
}

func TestCourierService_HistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	service, repo := newCourierFixture(t)

	for i := int64(0); i < 3; i++ {
		_, err := repo.CreateLocation(ctx, entities.CourierLocation{
			CourierID: 1,
			Timestamp: 1000 + i,
		})
		require.NoError(t, err)
	}

	history, err := service.History(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.EqualValues(t, 1002, history[0].Timestamp)
	assert.EqualValues(t, 1000, history[2].Timestamp)
}

func TestCourierService_HistoryByDate(t *testing.T) {
	ctx := context.Background()
	service, repo := newCourierFixture(t)

	day := time.Date(2026, 8, 30, 14, 0, 0, 0, time.Local)
	start := utils.StartOfDayMillis(day)

	timestamps := []int64{
		start - 1,                                // вчера
		start + 10_000,                           // утро нужного дня
		start + 24*time.Hour.Milliseconds() - 1,  // последняя миллисекунда дня
		start + 24*time.Hour.Milliseconds() + 10, // уже завтра
	}
	for _, ts := range timestamps {
		_, err := repo.CreateLocation(ctx, entities.CourierLocation{CourierID: 1, Timestamp: ts})
		require.NoError(t, err)
	}

	history, err := service.History(ctx, 1, &day)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, loc := range history {
		assert.GreaterOrEqual(t, loc.Timestamp, start)
		assert.Less(t, loc.Timestamp, start+24*time.Hour.Milliseconds())
	}
}
