package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sAlyon228/youz-api/internal/entities"
)

func TestCourierLocationRepository_CreateDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := NewCourierLocationRepository(newTestStorage(t))

	id, err := repo.CreateLocation(ctx, entities.CourierLocation{
		CourierID: 1,
		Latitude:  55.7558,
		Longitude: 37.6173,
	})
	require.NoError(t, err)

	loc, err := repo.FindLocation(ctx, id)
	require.NoError(t, err)
	assert.Greater(t, loc.Timestamp, int64(0))
	assert.InDelta(t, 55.7558, loc.Latitude, 1e-9)
	assert.InDelta(t, 37.6173, loc.Longitude, 1e-9)
}

func TestCourierLocationRepository_GetLocationsSinceStrict(t *testing.T) {
	ctx := context.Background()
	repo := NewCourierLocationRepository(newTestStorage(t))

	for _, ts := range []int64{100, 200, 300} {
		_, err := repo.CreateLocation(ctx, entities.CourierLocation{CourierID: 1, Timestamp: ts})
		require.NoError(t, err)
	}

	// Граница не включается.
	locations, err := repo.GetLocationsSince(ctx, 200)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.EqualValues(t, 300, locations[0].Timestamp)
}

func TestCourierLocationRepository_HistoryOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewCourierLocationRepository(newTestStorage(t))

	for i := int64(0); i < 5; i++ {
		_, err := repo.CreateLocation(ctx, entities.CourierLocation{CourierID: 1, Timestamp: 1000 + i})
		require.NoError(t, err)
	}
	_, err := repo.CreateLocation(ctx, entities.CourierLocation{CourierID: 2, Timestamp: 2000})
	require.NoError(t, err)

	locations, err := repo.GetLocationsByCourier(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, locations, 3)

	// Новые точки первыми, чужой курьер не попадает.
	assert.EqualValues(t, 1004, locations[0].Timestamp)
	assert.EqualValues(t, 1002, locations[2].Timestamp)
	for _, loc := range locations {
		assert.EqualValues(t, 1, loc.CourierID)
	}
}
