package rgis

import (
	"encoding/json"
	"strconv"
)

// NotSpecified — подстановка для незаполненных полей. Во вьюмодели
// не должно попадать ни null, ни пустых связей — фронт рисует значение как есть.
const NotSpecified = "Не указано"

// nameRef — ссылка на связанную сущность. Бэкенд в разных разделах присылает
// связь то строкой, то вложенным объектом с name/short_name, то null.
type nameRef struct {
	value string
}

func (n *nameRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		n.value = s
		return nil
	}

	var obj struct {
		ShortName      string `json:"short_name"`
		ShortNameCamel string `json:"shortName"`
		Name           string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		switch {
		case obj.ShortName != "":
			n.value = obj.ShortName
		case obj.ShortNameCamel != "":
			n.value = obj.ShortNameCamel
		default:
			n.value = obj.Name
		}
		return nil
	}

	// null, число и прочее — значения нет
	n.value = ""
	return nil
}

// display возвращает извлечённое имя либо «Не указано».
func (n nameRef) display() string {
	if n.value == "" {
		return NotSpecified
	}
	return n.value
}

// --- Теплоисточники ---

// apiHeatSource — сырой DTO бэкенда (/hs), связи вложенные.
type apiHeatSource struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Owner             nameRef  `json:"owner"`
	Operator          nameRef  `json:"org"`
	Type              nameRef  `json:"type"`
	Period            nameRef  `json:"period"`
	OKS               nameRef  `json:"oks"`
	Address           string   `json:"address"`
	InstalledCapacity *float64 `json:"installed_capacity"`
	AvailableCapacity *float64 `json:"available_capacity"`
	PrimaryFuel       nameRef  `json:"primary_fuel"`
	SecondaryFuel     nameRef  `json:"secondary_fuel"`
	YearBuilt         *int     `json:"year_built"`
	Consumers         *int     `json:"consumers"`
}

// HeatSource — плоская вьюмодель теплоисточника для таблиц фронтенда.
type HeatSource struct {
	ID                int64  `json:"id"`
	SourceName        string `json:"source_name"`
	Owner             string `json:"owner"`
	Operator          string `json:"operator"`
	Type              string `json:"type"`
	OperationPeriod   string `json:"operation_period"`
	OKS               string `json:"oks"`
	Address           string `json:"address"`
	InstalledCapacity string `json:"installed_capacity"`
	AvailableCapacity string `json:"available_capacity"`
	PrimaryFuel       string `json:"primary_fuel"`
	SecondaryFuel     string `json:"secondary_fuel"`
	YearBuilt         string `json:"year_built"`
	Consumers         string `json:"consumers"`
}

// HeatSourceInput — тело создания/обновления теплоисточника.
type HeatSourceInput struct {
	Name              string   `json:"name"`
	OwnerID           int64    `json:"owner_id"`
	OrgID             int64    `json:"org_id"`
	TypeID            int64    `json:"type_id"`
	PeriodID          int64    `json:"period_id"`
	Address           string   `json:"address"`
	InstalledCapacity *float64 `json:"installed_capacity,omitempty"`
	AvailableCapacity *float64 `json:"available_capacity,omitempty"`
	PrimaryFuel       string   `json:"primary_fuel,omitempty"`
	SecondaryFuel     string   `json:"secondary_fuel,omitempty"`
	YearBuilt         *int     `json:"year_built,omitempty"`
	Consumers         *int     `json:"consumers,omitempty"`
}

// HeatSourceType — справочник типов теплоисточников (/hs-type).
type HeatSourceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// --- Отопительные периоды ---

// PeriodAddress — адрес дома в отопительном периоде.
type PeriodAddress struct {
	HouseNumber string `json:"house_number"`
	Street      string `json:"street"`
	City        string `json:"city"`
}

// HeatingPeriod — отопительный период (/hs-period). Даты приходят ISO-строками
// либо null и отдаются как есть, без нормализации.
type HeatingPeriod struct {
	ID                    int64         `json:"id"`
	Address               PeriodAddress `json:"address"`
	PlannedDisconnection  *string       `json:"planned_disconnection_date"`
	PlannedConnection     *string       `json:"planned_connection_date"`
	ActualDisconnection   *string       `json:"actual_disconnection_date"`
	ActualConnection      *string       `json:"actual_connection_date"`
	DisconnectionOrderRef *string       `json:"disconnection_order,omitempty"`
	ConnectionOrderRef    *string       `json:"connection_order,omitempty"`
}

// --- МКД и ОКС ---

type apiMKDBuilding struct {
	ID            int64   `json:"id"`
	Address       string  `json:"address"`
	ManagementOrg nameRef `json:"management_org"`
	HeatSource    nameRef `json:"hs"`
	Floors        *int    `json:"floors"`
	Apartments    *int    `json:"apartments"`
	YearBuilt     *int    `json:"year_built"`
}

// MKDBuilding — многоквартирный дом (/mkd).
type MKDBuilding struct {
	ID            int64  `json:"id"`
	Address       string `json:"address"`
	ManagementOrg string `json:"management_org"`
	HeatSource    string `json:"heat_source"`
	Floors        string `json:"floors"`
	Apartments    string `json:"apartments"`
	YearBuilt     string `json:"year_built"`
}

// OKS — объект капитального строительства (/oks).
type OKS struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// --- Инциденты ---

type apiIncident struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Type        nameRef `json:"type"`
	Status      nameRef `json:"status"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at"`
}

// Incident — инцидент (/incident, /edds/incidents).
type Incident struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Address     string `json:"address"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// --- Организации и мощности ---

type apiOrganization struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	INN       string `json:"inn"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// Organization — организация (/org).
type Organization struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	INN       string `json:"inn"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type apiFreeCapacity struct {
	ID        int64    `json:"id"`
	Source    nameRef  `json:"hs"`
	Org       nameRef  `json:"org"`
	Address   string   `json:"address"`
	Available *float64 `json:"available_capacity"`
}

// FreeCapacity — свободная мощность теплоисточника (/free-capacity).
type FreeCapacity struct {
	ID        int64  `json:"id"`
	Source    string `json:"source"`
	Org       string `json:"org"`
	Address   string `json:"address"`
	Available string `json:"available_capacity"`
}

// --- Графики включения отопления ---

// ScheduleEntry — запись графика включения отопления (/heating-schedule).
type ScheduleEntry struct {
	ID        int64   `json:"id"`
	District  string  `json:"district"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// --- Вспомогательные форматтеры ---

func formatFloat(v *float64) string {
	if v == nil {
		return NotSpecified
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return NotSpecified
	}
	return strconv.Itoa(*v)
}

func orNotSpecified(s string) string {
	if s == "" {
		return NotSpecified
	}
	return s
}
