package rgis

// Адаптеры: сырые DTO бэкенда → плоские вьюмодели. Каждое поле связи
// разворачивается независимо, без сквозной проверки согласованности —
// так делает и фронтенд.

func adaptHeatSource(raw apiHeatSource) HeatSource {
	return HeatSource{
		ID:                raw.ID,
		SourceName:        orNotSpecified(raw.Name),
		Owner:             raw.Owner.display(),
		Operator:          raw.Operator.display(),
		Type:              raw.Type.display(),
		OperationPeriod:   raw.Period.display(),
		OKS:               raw.OKS.display(),
		Address:           orNotSpecified(raw.Address),
		InstalledCapacity: formatFloat(raw.InstalledCapacity),
		AvailableCapacity: formatFloat(raw.AvailableCapacity),
		PrimaryFuel:       raw.PrimaryFuel.display(),
		SecondaryFuel:     raw.SecondaryFuel.display(),
		YearBuilt:         formatInt(raw.YearBuilt),
		Consumers:         formatInt(raw.Consumers),
	}
}

func adaptMKDBuilding(raw apiMKDBuilding) MKDBuilding {
	return MKDBuilding{
		ID:            raw.ID,
		Address:       orNotSpecified(raw.Address),
		ManagementOrg: raw.ManagementOrg.display(),
		HeatSource:    raw.HeatSource.display(),
		Floors:        formatInt(raw.Floors),
		Apartments:    formatInt(raw.Apartments),
		YearBuilt:     formatInt(raw.YearBuilt),
	}
}

func adaptIncident(raw apiIncident) Incident {
	created := ""
	if raw.CreatedAt != nil {
		created = *raw.CreatedAt
	}
	return Incident{
		ID:          raw.ID,
		Title:       orNotSpecified(raw.Title),
		Type:        raw.Type.display(),
		Status:      raw.Status.display(),
		Address:     orNotSpecified(raw.Address),
		Description: raw.Description,
		CreatedAt:   orNotSpecified(created),
	}
}

func adaptOrganization(raw apiOrganization) Organization {
	return Organization{
		ID:        raw.ID,
		Name:      orNotSpecified(raw.Name),
		ShortName: orNotSpecified(raw.ShortName),
		INN:       orNotSpecified(raw.INN),
		Address:   orNotSpecified(raw.Address),
		Phone:     orNotSpecified(raw.Phone),
	}
}

func adaptFreeCapacity(raw apiFreeCapacity) FreeCapacity {
	return FreeCapacity{
		ID:        raw.ID,
		Source:    raw.Source.display(),
		Org:       raw.Org.display(),
		Address:   orNotSpecified(raw.Address),
		Available: formatFloat(raw.Available),
	}
}

// Отопительные периоды и графики проходят без адаптации: даты остаются
// ISO-строками либо null, фронт решает сам.
func adaptHeatingPeriod(raw HeatingPeriod) HeatingPeriod { return raw }

func adaptHeatSourceType(raw HeatSourceType) HeatSourceType { return raw }

func adaptOKS(raw OKS) OKS { return raw }

func adaptScheduleEntry(raw ScheduleEntry) ScheduleEntry { return raw }
