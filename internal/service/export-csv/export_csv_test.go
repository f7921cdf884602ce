package export_csv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rgis-prio/internal/rgis"
)

// Тест: пустой список — ErrNoData, ничего не пишется
func TestWrite_Empty(t *testing.T) {
	out, err := Write([]string{"А", "Б"}, nil)
	assert.True(t, errors.Is(err, ErrNoData))
	assert.Nil(t, out)
}

// Тест: выгрузка начинается с UTF-8 BOM, строки завершаются CRLF
func TestWrite_BOMAndCRLF(t *testing.T) {
	out, err := Write([]string{"Имя"}, [][]string{{"Котельная"}})
	assert.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "Имя\r\nКотельная\r\n", string(out[3:]))
}

// Тест: поле экранируется только при спецсимволах
func TestEscapeField(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"простое", "простое"},
		{"", ""},
		{"с;точкой-запятой", `"с;точкой-запятой"`},
		{`с "кавычкой"`, `"с ""кавычкой"""`},
		{"с'апострофом", `"с'апострофом"`},
		{"пере\nнос", "\"пере\nнос\""},
		{"возврат\rкаретки", "\"возврат\rкаретки\""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeField(tc.in))
	}
}

// Тест: round-trip — поля с «;» и «"» восстанавливаются из CSV
func TestWrite_RoundTrip(t *testing.T) {
	rows := [][]string{
		{"ул. Ленина; д. 1", "обычное"},
		{`МУП "Теплосеть"`, "второе"},
	}

	out, err := Write([]string{"Адрес", "Прочее"}, rows)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out[3:]), "\r\n"), "\r\n")
	assert.Len(t, lines, 3)

	parsed := parseCSVLine(lines[1])
	assert.Equal(t, rows[0], parsed)

	parsed = parseCSVLine(lines[2])
	assert.Equal(t, rows[1], parsed)
}

// parseCSVLine — разбор строки выгрузки: split по неэкранированным «;»,
// снятие кавычек, обратная замена удвоенных кавычек
func parseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ';' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// Тест: выгрузка теплоисточников — русская шапка и значения по колонкам
func TestHeatSources(t *testing.T) {
	out, err := HeatSources([]rgis.HeatSource{
		{
			ID:              5,
			SourceName:      "Котельная №3",
			Owner:           "МУП ТС",
			Operator:        rgis.NotSpecified,
			Type:            "Котельная",
			Address:         "г. Рязань; ул. Ленина, 1",
			OperationPeriod: rgis.NotSpecified,
		},
	})
	assert.NoError(t, err)

	text := string(out[3:])
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "№;Наименование источника;Собственник"))

	row := parseCSVLine(lines[1])
	assert.Equal(t, "5", row[0])
	assert.Equal(t, "Котельная №3", row[1])
	assert.Equal(t, "г. Рязань; ул. Ленина, 1", row[5])
}

// Тест: nil-даты периодов уходят пустыми полями
func TestHeatingPeriods_NilDates(t *testing.T) {
	date := "2026-05-05"
	out, err := HeatingPeriods([]rgis.HeatingPeriod{
		{
			ID:                   3,
			Address:              rgis.PeriodAddress{City: "Рязань", Street: "ул. Садовая", HouseNumber: "12"},
			PlannedDisconnection: &date,
		},
	})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out[3:]), "\r\n"), "\r\n")
	row := parseCSVLine(lines[1])
	assert.Equal(t, []string{"3", "Рязань", "ул. Садовая", "12", "2026-05-05", "", "", ""}, row)
}
