package seeders

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

func TestRun_SeedsEmptyDatabase(t *testing.T) {
	db := store.Open(filepath.Join(t.TempDir(), "db.json"), zap.NewNop())

	require.NoError(t, Run(db))

	assert.EqualValues(t, 1, db.Count(store.TableUsers, store.Filter{}))
	assert.EqualValues(t, 1, db.Count(store.TablePoints, store.Filter{}))
	assert.EqualValues(t, 1, db.Count(store.TableShops, store.Filter{}))

	admin, err := repositories.NewUserRepository(db).FindUserByPhone(context.Background(), AdminPhone)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleSuperAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, utils.CheckPassword(admin.PasswordHash, AdminPassword))
}

func TestRun_Idempotent(t *testing.T) {
	db := store.Open(filepath.Join(t.TempDir(), "db.json"), zap.NewNop())

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	assert.EqualValues(t, 1, db.Count(store.TableUsers, store.Filter{}))
	assert.EqualValues(t, 1, db.Count(store.TablePoints, store.Filter{}))
	assert.EqualValues(t, 1, db.Count(store.TableShops, store.Filter{}))
}

func TestRun_DoesNotTouchExistingData(t *testing.T) {
	db := store.Open(filepath.Join(t.TempDir(), "db.json"), zap.NewNop())

	db.Insert(store.TableUsers,
		[]string{"fullName", "phone", "role"},
		[]any{"Существующий", "+79990000001", constants.RoleEngineer},
	)

	require.NoError(t, Run(db))

	// Администратор не добавляется поверх существующих пользователей.
	users := db.Select(store.TableUsers, store.Filter{}, store.OrderByIDAsc, store.NoLimit)
	require.Len(t, users, 1)
	assert.Equal(t, "Существующий", users[0]["fullName"])
}
