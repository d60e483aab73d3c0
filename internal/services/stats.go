package services

import (
	"context"
	"time"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

type StatsService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	pointRepository     repositories.PointRepositoryInterface
	logger              *zap.Logger
}

func NewStatsService(dashboardRepository repositories.DashboardRepositoryInterface,
	pointRepository repositories.PointRepositoryInterface,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		dashboardRepository: dashboardRepository,
		pointRepository:     pointRepository,
		logger:              logger,
	}
}

// GetDashboardStats собирает сводку для главного экрана: общие счётчики,
// фото за сегодня и число активных курьеров за последний час.
func (s *StatsService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	startOfDay := utils.StartOfDayMillis(time.Now())
	activeSince := utils.NowMillis() - constants.CourierActiveWindowMs

	return &dto.DashboardStatsDTO{
		TotalUsers:            s.dashboardRepository.CountUsers(ctx),
		TotalPoints:           s.dashboardRepository.CountPoints(ctx),
		TotalTasks:            s.dashboardRepository.CountTasks(ctx),
		CompletedTasks:        s.dashboardRepository.CountTasksByStatus(ctx, constants.TaskStatusCompleted),
		PendingTasks:          s.dashboardRepository.CountTasksByStatus(ctx, constants.TaskStatusPending),
		TotalPhotosToday:      s.dashboardRepository.CountPhotosTakenSince(ctx, startOfDay),
		ActiveCouriers:        s.dashboardRepository.CountActiveCouriers(ctx, activeSince),
		TotalPurchaseRequests: s.dashboardRepository.CountPurchases(ctx),
	}, nil
}

// GetPointStats возвращает статистику по каждой точке; pointID ограничивает
// выборку одной точкой.
func (s *StatsService) GetPointStats(ctx context.Context, pointID *int64) ([]dto.PointStatsDTO, error) {
	points, err := s.pointRepository.GetPoints(ctx)
	if err != nil {
		return nil, err
	}

	startOfDay := utils.StartOfDayMillis(time.Now())

	stats := make([]dto.PointStatsDTO, 0, len(points))
	for _, point := range points {
		if pointID != nil && point.ID != *pointID {
			continue
		}
		stats = append(stats, dto.PointStatsDTO{
			PointID:          point.ID,
			PointName:        point.Name,
			TotalEmployees:   s.dashboardRepository.CountUsersByPoint(ctx, point.ID),
			ActiveEmployees:  s.dashboardRepository.CountActiveUsersByPoint(ctx, point.ID),
			TasksTotal:       s.dashboardRepository.CountTasksByPoint(ctx, point.ID),
			TasksCompleted:   s.dashboardRepository.CountTasksByPointAndStatus(ctx, point.ID, constants.TaskStatusCompleted),
			PhotosToday:      s.dashboardRepository.CountPhotosByPointTakenSince(ctx, point.ID, startOfDay),
			PurchaseRequests: s.dashboardRepository.CountPurchasesByPoint(ctx, point.ID),
		})
	}
	return stats, nil
}
