package export_excel

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rgis-prio/internal/rgis"
)

// ErrNoData — в выбранной странице нет теплоисточников.
var ErrNoData = errors.New("нет данных для экспорта")

// MIMEType — тип содержимого xlsx.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HeatSourceProvider interface {
	HeatSources(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.HeatSource], error)
}

// Service строит xlsx-отчёт по реестру теплоисточников.
type Service struct {
	provider HeatSourceProvider
}

func NewService(provider HeatSourceProvider) *Service {
	return &Service{provider: provider}
}

func (s *Service) HeatSourceReport(ctx context.Context, filter rgis.ListParams) ([]byte, error) {
	// 1. Получаем данные у upstream
	list, err := s.provider.HeatSources(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}
	if len(list.Items) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Теплоисточники"
	f.SetSheetName("Sheet1", sheet)

	// Жирный шрифт для шапки
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	// 2. Шапка
	headers := []string{
		"№", "Наименование источника", "Собственник", "Эксплуатирующая организация",
		"Тип", "Адрес", "Установленная мощность, Гкал/ч", "Доступная мощность, Гкал/ч",
		"Основное топливо", "Резервное топливо", "Год ввода", "Период работы", "Потребители",
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	// 3. Данные
	for rowIdx, hs := range list.Items {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), hs.ID)
		f.SetCellValue(sheet, cellName(2, rowNum), hs.SourceName)
		f.SetCellValue(sheet, cellName(3, rowNum), hs.Owner)
		f.SetCellValue(sheet, cellName(4, rowNum), hs.Operator)
		f.SetCellValue(sheet, cellName(5, rowNum), hs.Type)
		f.SetCellValue(sheet, cellName(6, rowNum), hs.Address)
		f.SetCellValue(sheet, cellName(7, rowNum), hs.InstalledCapacity)
		f.SetCellValue(sheet, cellName(8, rowNum), hs.AvailableCapacity)
		f.SetCellValue(sheet, cellName(9, rowNum), hs.PrimaryFuel)
		f.SetCellValue(sheet, cellName(10, rowNum), hs.SecondaryFuel)
		f.SetCellValue(sheet, cellName(11, rowNum), hs.YearBuilt)
		f.SetCellValue(sheet, cellName(12, rowNum), hs.OperationPeriod)
		f.SetCellValue(sheet, cellName(13, rowNum), hs.Consumers)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
