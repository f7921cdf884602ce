// Пакет export_csv собирает CSV-выгрузки для Excel-процесса заказчика.
// Формат байт в байт как у старых выгрузок: UTF-8 с BOM, разделитель «;»,
// строки завершаются CRLF, заголовки русские.
package export_csv

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"rgis-prio/internal/rgis"
)

// ErrNoData — попытка выгрузить пустой список. Проверяется до записи заголовка.
var ErrNoData = errors.New("нет данных для экспорта")

// MIMEType — тип содержимого выгрузки.
const MIMEType = "text/csv;charset=utf-8;"

// utf8BOM нужен, чтобы Excel с legacy-кодировкой по умолчанию распознал UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write собирает CSV из заголовков и строк.
func Write(headers []string, rows [][]string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writeLine(&buf, headers)
	for _, row := range rows {
		writeLine(&buf, row)
	}

	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(escapeField(field))
	}
	// Всегда CRLF, независимо от платформы
	buf.WriteString("\r\n")
}

// escapeField оборачивает поле в кавычки (удваивая внутренние) тогда и только
// тогда, когда в нём есть «;», кавычки или перевод строки.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ";\"'\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// --- Выгрузки по разделам ---

// HeatSources — выгрузка реестра теплоисточников.
func HeatSources(items []rgis.HeatSource) ([]byte, error) {
	headers := []string{
		"№",
		"Наименование источника",
		"Собственник",
		"Эксплуатирующая организация",
		"Тип",
		"Адрес",
		"Установленная мощность, Гкал/ч",
		"Доступная мощность, Гкал/ч",
		"Основное топливо",
		"Резервное топливо",
		"Год ввода",
		"Период работы",
		"Потребители",
	}

	rows := make([][]string, 0, len(items))
	for _, hs := range items {
		rows = append(rows, []string{
			formatID(hs.ID),
			hs.SourceName,
			hs.Owner,
			hs.Operator,
			hs.Type,
			hs.Address,
			hs.InstalledCapacity,
			hs.AvailableCapacity,
			hs.PrimaryFuel,
			hs.SecondaryFuel,
			hs.YearBuilt,
			hs.OperationPeriod,
			hs.Consumers,
		})
	}

	return Write(headers, rows)
}

// HeatingPeriods — выгрузка отопительных периодов.
func HeatingPeriods(items []rgis.HeatingPeriod) ([]byte, error) {
	headers := []string{
		"№",
		"Город",
		"Улица",
		"Дом",
		"Плановое отключение",
		"Плановое включение",
		"Фактическое отключение",
		"Фактическое включение",
	}

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			formatID(p.ID),
			p.Address.City,
			p.Address.Street,
			p.Address.HouseNumber,
			deref(p.PlannedDisconnection),
			deref(p.PlannedConnection),
			deref(p.ActualDisconnection),
			deref(p.ActualConnection),
		})
	}

	return Write(headers, rows)
}

// MKDBuildings — выгрузка реестра МКД.
func MKDBuildings(items []rgis.MKDBuilding) ([]byte, error) {
	headers := []string{
		"№",
		"Адрес",
		"Управляющая организация",
		"Теплоисточник",
		"Этажность",
		"Квартир",
		"Год постройки",
	}

	rows := make([][]string, 0, len(items))
	for _, b := range items {
		rows = append(rows, []string{
			formatID(b.ID),
			b.Address,
			b.ManagementOrg,
			b.HeatSource,
			b.Floors,
			b.Apartments,
			b.YearBuilt,
		})
	}

	return Write(headers, rows)
}

// Incidents — выгрузка инцидентов.
func Incidents(items []rgis.Incident) ([]byte, error) {
	headers := []string{
		"№",
		"Заголовок",
		"Тип",
		"Статус",
		"Адрес",
		"Создан",
		"Описание",
	}

	rows := make([][]string, 0, len(items))
	for _, inc := range items {
		rows = append(rows, []string{
			formatID(inc.ID),
			inc.Title,
			inc.Type,
			inc.Status,
			inc.Address,
			inc.CreatedAt,
			inc.Description,
		})
	}

	return Write(headers, rows)
}

// deref: nil-дата превращается в пустое поле ещё до проверки экранирования.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
