package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	apperrors "github.com/sAlyon228/youz-api/pkg/errors"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

func newPurchaseService(t *testing.T) *PurchaseService {
	t.Helper()
	return NewPurchaseService(repositories.NewPurchaseRepository(newTestStorage(t)), zap.NewNop())
}

func TestPurchaseService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	service := newPurchaseService(t)

	purchase, err := service.CreatePurchase(ctx, dto.CreatePurchaseDTO{
		Items: "Вода, 10 бутылок",
	}, 4)
	require.NoError(t, err)

	assert.EqualValues(t, 1, purchase.PointID)
	assert.EqualValues(t, 1, purchase.ShopID)
	assert.EqualValues(t, 4, purchase.CreatedByUserID)
	assert.Equal(t, constants.PurchaseStatusPending, purchase.Status)
	assert.Nil(t, purchase.CompletedAt)
}

func TestPurchaseService_CreateRequiresItems(t *testing.T) {
	service := newPurchaseService(t)

	_, err := service.CreatePurchase(context.Background(), dto.CreatePurchaseDTO{}, 1)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestPurchaseService_CompleteFlow(t *testing.T) {
	ctx := context.Background()
	service := newPurchaseService(t)

	purchase, err := service.CreatePurchase(ctx, dto.CreatePurchaseDTO{
		Items: "Канцелярия",
	}, 1)
	require.NoError(t, err)

	assigned, err := service.UpdatePurchase(ctx, purchase.ID, dto.UpdatePurchaseDTO{
		AssignedCourierID: utils.ToPtr(int64(3)),
	})
	require.NoError(t, err)
	assert.Nil(t, assigned.CompletedAt)

	purchased, err := service.UpdatePurchase(ctx, purchase.ID, dto.UpdatePurchaseDTO{
		Status: utils.ToPtr(constants.PurchaseStatusPurchased),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.PurchaseStatusPurchased, purchased.Status)
	require.NotNil(t, purchased.CompletedAt)
	require.NotNil(t, purchased.AssignedCourierID)
	assert.EqualValues(t, 3, *purchased.AssignedCourierID)
}
