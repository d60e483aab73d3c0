package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportService struct {
	statsService *StatsService
	logger       *zap.Logger
}

func NewReportService(statsService *StatsService,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		statsService: statsService,
		logger:       logger,
	}
}

var pointReportHeaders = []interface{}{
	"Точка", "Сотрудников", "Активных", "Задач всего", "Задач выполнено",
	"Фото за сегодня", "Заявок на закупку",
}

// WritePointStatsXLSX выгружает статистику по точкам в xlsx.
func (s *ReportService) WritePointStatsXLSX(ctx context.Context, w io.Writer) error {
	stats, err := s.statsService.GetPointStats(ctx, nil)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheet := "Статистика по точкам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &pointReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", style)

	for i, item := range stats {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.PointName, item.TotalEmployees, item.ActiveEmployees,
			item.TasksTotal, item.TasksCompleted, item.PhotosToday,
			item.PurchaseRequests,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	// Авто-ширина колонок для красоты
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "G", 18)

	if err := f.Write(w); err != nil {
		s.logger.Error("Ошибка выгрузки отчёта", zap.Error(err))
		return err
	}
	return nil
}

// ReportFileName — имя файла отчёта за сегодняшнюю дату.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("report_%s.xlsx", now.Format("2006-01-02"))
}
