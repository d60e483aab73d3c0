package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

type statsFixture struct {
	stats  *StatsService
	points repositories.PointRepositoryInterface
	tasks  repositories.TaskRepositoryInterface
	users  repositories.UserRepositoryInterface
}

func newStatsFixture(t *testing.T) statsFixture {
	t.Helper()
	storage := newTestStorage(t)
	points := repositories.NewPointRepository(storage)
	return statsFixture{
		stats: NewStatsService(
			repositories.NewDashboardRepository(storage),
			points,
			zap.NewNop(),
		),
		points: points,
		tasks:  repositories.NewTaskRepository(storage),
		users:  repositories.NewUserRepository(storage),
	}
}

func (f statsFixture) seedPoint(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.points.CreatePoint(context.Background(), entities.Point{
		Name:     name,
		Address:  "адрес",
		IsActive: true,
	})
	require.NoError(t, err)
	return id
}

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t)

	f.seedPoint(t, "Точка")
	for _, status := range []string{constants.TaskStatusPending, constants.TaskStatusCompleted} {
		_, err := f.tasks.CreateTask(ctx, entities.Task{
			Title:           "Задача",
			CreatedByUserID: 1,
			Status:          status,
		})
		require.NoError(t, err)
	}
	_, err := f.users.CreateUser(ctx, entities.User{
		FullName: "Сотрудник",
		Phone:    "+79990005001",
		Role:     constants.RoleEngineer,
		IsActive: true,
	})
	require.NoError(t, err)

	stats, err := f.stats.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalPoints)
	assert.EqualValues(t, 2, stats.TotalTasks)
	assert.EqualValues(t, 1, stats.CompletedTasks)
	assert.EqualValues(t, 1, stats.PendingTasks)
	assert.EqualValues(t, 0, stats.ActiveCouriers)
}

func TestStatsService_PointStatsFilter(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t)

	first := f.seedPoint(t, "Первая")
	f.seedPoint(t, "Вторая")

	_, err := f.tasks.CreateTask(ctx, entities.Task{
		Title:           "На первой",
		PointID:         utils.ToPtr(first),
		CreatedByUserID: 1,
		Status:          constants.TaskStatusPending,
	})
	require.NoError(t, err)

	all, err := f.stats.GetPointStats(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	single, err := f.stats.GetPointStats(ctx, &first)
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Первая", single[0].PointName)
	assert.EqualValues(t, 1, single[0].TasksTotal)
}

func TestReportService_WritePointStatsXLSX(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t)
	f.seedPoint(t, "Точка на Ленина")

	report := NewReportService(f.stats, zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, report.WritePointStatsXLSX(ctx, &buf))
	require.NotZero(t, buf.Len())

	book, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer book.Close()

	sheet := "Статистика по точкам"
	header, err := book.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Точка", header)

	name, err := book.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Точка на Ленина", name)
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "report_2026-08-31.xlsx", ReportFileName(now))
}
