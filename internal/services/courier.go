package services

import (
	"context"
	"time"

	"github.com/sAlyon228/youz-api/internal/dto"
	"github.com/sAlyon228/youz-api/internal/entities"
	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
	"go.uber.org/zap"
)

// Лимит выдачи истории перемещений.
const historyLimit = 100

type CourierService struct {
	locationRepository repositories.CourierLocationRepositoryInterface
	logger             *zap.Logger
}

func NewCourierService(locationRepository repositories.CourierLocationRepositoryInterface,
	logger *zap.Logger,
) *CourierService {
	return &CourierService{
		locationRepository: locationRepository,
		logger:             logger,
	}
}

// ReportLocation добавляет точку трека курьера. Таблица append-only:
// старые точки никогда не перезаписываются.
func (s *CourierService) ReportLocation(ctx context.Context, courierID int64, payload dto.ReportLocationDTO) (*entities.CourierLocation, error) {
	location := entities.CourierLocation{
		CourierID: courierID,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		Accuracy:  utils.SafeDeref(payload.Accuracy),
		Timestamp: utils.NowMillis(),
	}

	id, err := s.locationRepository.CreateLocation(ctx, location)
	if err != nil {
		s.logger.Error("Ошибка при сохранении локации", zap.Error(err))
		return nil, err
	}
	return s.locationRepository.FindLocation(ctx, id)
}

// ActiveCouriers возвращает последнюю точку каждого курьера, приславшего
// координаты за последний час.
func (s *CourierService) ActiveCouriers(ctx context.Context) ([]entities.CourierLocation, error) {
	since := utils.NowMillis() - constants.CourierActiveWindowMs
	locations, err := s.locationRepository.GetLocationsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	latest := make(map[int64]entities.CourierLocation)
	for _, loc := range locations {
		prev, ok := latest[loc.CourierID]
		if !ok || loc.Timestamp > prev.Timestamp {
			latest[loc.CourierID] = loc
		}
	}

	result := make([]entities.CourierLocation, 0, len(latest))
	for _, loc := range latest {
		result = append(result, loc)
	}
	return result, nil
}

// History возвращает трек курьера, новые точки первыми. Если указана дата —
// только точки внутри этих суток.
func (s *CourierService) History(ctx context.Context, courierID int64, date *time.Time) ([]entities.CourierLocation, error) {
	if date == nil {
		return s.locationRepository.GetLocationsByCourier(ctx, courierID, historyLimit)
	}

	all, err := s.locationRepository.GetLocationsByCourier(ctx, courierID, 0)
	if err != nil {
		return nil, err
	}

	start := utils.StartOfDayMillis(*date)
	end := start + 24*time.Hour.Milliseconds() - 1

	result := make([]entities.CourierLocation, 0)
	for _, loc := range all {
		if loc.Timestamp >= start && loc.Timestamp <= end {
			result = append(result, loc)
			if len(result) == historyLimit {
				break
			}
		}
	}
	return result, nil
}
