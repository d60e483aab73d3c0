// Файл: main.go

package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sAlyon228/youz-api/internal/repositories"
	"github.com/sAlyon228/youz-api/internal/services"
	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/config"
	applogger "github.com/sAlyon228/youz-api/pkg/logger"
	"github.com/sAlyon228/youz-api/seeders"

	"go.uber.org/zap"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	db := store.Open(cfg.Storage.Path, logger)
	if err := seeders.Run(db); err != nil {
		log.Fatalf("❌ Ошибка инициализации базы: %v", err)
	}

	pointRepository := repositories.NewPointRepository(db)
	dashboardRepository := repositories.NewDashboardRepository(db)

	statsService := services.NewStatsService(dashboardRepository, pointRepository, logger)
	reportService := services.NewReportService(statsService, logger)

	ctx := context.Background()

	stats, err := statsService.GetDashboardStats(ctx)
	if err != nil {
		logger.Fatal("Не удалось собрать статистику", zap.Error(err))
	}
	logger.Info("Сводка по базе",
		zap.Int64("users", stats.TotalUsers),
		zap.Int64("points", stats.TotalPoints),
		zap.Int64("tasks", stats.TotalTasks),
		zap.Int64("purchases", stats.TotalPurchaseRequests),
		zap.Int64("activeCouriers", stats.ActiveCouriers),
	)

	reportPath := filepath.Join(filepath.Dir(cfg.Storage.Path), services.ReportFileName(time.Now()))
	f, err := os.Create(reportPath)
	if err != nil {
		logger.Fatal("Не удалось создать файл отчёта", zap.Error(err))
	}
	defer f.Close()

	if err := reportService.WritePointStatsXLSX(ctx, f); err != nil {
		logger.Fatal("Не удалось выгрузить отчёт", zap.Error(err))
	}
	logger.Info("🚀 Отчёт по точкам сохранён", zap.String("path", reportPath))
}
