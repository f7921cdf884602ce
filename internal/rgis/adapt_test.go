package rgis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Тест: nameRef понимает строку, объект и null
func TestNameRef_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"строка", `"МУП Теплосеть"`, "МУП Теплосеть"},
		{"объект с short_name", `{"id":1,"name":"Полное имя","short_name":"ACME"}`, "ACME"},
		{"объект с shortName", `{"shortName":"ООО Ромашка"}`, "ООО Ромашка"},
		{"объект только с name", `{"id":2,"name":"Котельная"}`, "Котельная"},
		{"null", `null`, NotSpecified},
		{"число", `42`, NotSpecified},
		{"пустой объект", `{}`, NotSpecified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref nameRef
			err := json.Unmarshal([]byte(tc.raw), &ref)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ref.display())
		})
	}
}

// Тест: незаполненные поля теплоисточника всегда дают «Не указано»,
// ни null, ни пустой строки во вьюмодели нет
func TestAdaptHeatSource_Fallbacks(t *testing.T) {
	var raw apiHeatSource
	assert.NoError(t, json.Unmarshal([]byte(`{"id":5}`), &raw))

	hs := adaptHeatSource(raw)

	assert.Equal(t, int64(5), hs.ID)
	assert.Equal(t, NotSpecified, hs.SourceName)
	assert.Equal(t, NotSpecified, hs.Owner)
	assert.Equal(t, NotSpecified, hs.Operator)
	assert.Equal(t, NotSpecified, hs.Type)
	assert.Equal(t, NotSpecified, hs.OperationPeriod)
	assert.Equal(t, NotSpecified, hs.Address)
	assert.Equal(t, NotSpecified, hs.InstalledCapacity)
	assert.Equal(t, NotSpecified, hs.AvailableCapacity)
	assert.Equal(t, NotSpecified, hs.PrimaryFuel)
	assert.Equal(t, NotSpecified, hs.YearBuilt)
	assert.Equal(t, NotSpecified, hs.Consumers)
}

// Тест: заполненные поля проходят без подстановок, числа форматируются
func TestAdaptHeatSource_Values(t *testing.T) {
	var raw apiHeatSource
	assert.NoError(t, json.Unmarshal([]byte(`{
		"id": 5,
		"name": "Котельная №3",
		"owner": {"short_name": "МУП ТС"},
		"org": "АО Облтепло",
		"type": {"name": "Котельная"},
		"address": "г. Рязань, ул. Ленина, 1",
		"installed_capacity": 12.5,
		"year_built": 1987,
		"consumers": 140
	}`), &raw))

	hs := adaptHeatSource(raw)

	assert.Equal(t, "Котельная №3", hs.SourceName)
	assert.Equal(t, "МУП ТС", hs.Owner)
	assert.Equal(t, "АО Облтепло", hs.Operator)
	assert.Equal(t, "Котельная", hs.Type)
	assert.Equal(t, "12.5", hs.InstalledCapacity)
	assert.Equal(t, "1987", hs.YearBuilt)
	assert.Equal(t, "140", hs.Consumers)
}

// Тест: отопительный период проходит без нормализации, даты остаются null
func TestHeatingPeriod_PassThrough(t *testing.T) {
	var period HeatingPeriod
	assert.NoError(t, json.Unmarshal([]byte(`{
		"id": 3,
		"address": {"house_number": "12", "street": "ул. Садовая", "city": "Рязань"},
		"planned_disconnection_date": "2026-05-05",
		"actual_disconnection_date": null
	}`), &period))

	adapted := adaptHeatingPeriod(period)

	assert.Equal(t, "ул. Садовая", adapted.Address.Street)
	assert.Equal(t, "2026-05-05", *adapted.PlannedDisconnection)
	assert.Nil(t, adapted.ActualDisconnection)
	assert.Nil(t, adapted.ActualConnection)
}
