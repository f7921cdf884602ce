package rgis

import (
	"net/url"
	"strconv"
)

// ListParams — параметры списочных запросов. Кодируются через url.Values,
// а не ручной конкатенацией &key=value, чтобы экранирование и порядок
// были гарантированы.
type ListParams struct {
	Page    int
	PerPage int
	Search  string

	// Дополнительные фильтры конкретного раздела (например, hs_type_id)
	Filters url.Values
}

// ParamsFromQuery собирает ListParams из query-строки запроса фронтенда.
// Нечисловые page/per_page молча игнорируются.
func ParamsFromQuery(q url.Values) ListParams {
	p := ListParams{Search: q.Get("search")}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("per_page")); err == nil && perPage > 0 {
		p.PerPage = perPage
	}

	return p
}

func (p ListParams) encode() string {
	q := url.Values{}

	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	for key, values := range p.Filters {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
