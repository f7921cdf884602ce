package rgis

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// List — нормализованный конверт любого списочного ответа. Бэкенд отдаёт
// то голый массив, то laravel-пагинацию {data, current_page, last_page, total};
// наружу всегда уходит одна и та же форма. Конверт собирается заново на каждый
// запрос и после возврата не мутируется.
type List[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// listPage — промежуточная страница с ещё не декодированными элементами.
type listPage struct {
	Items       []json.RawMessage
	CurrentPage int
	TotalPages  int
	TotalItems  int
}

// normalizeList приводит сырой ответ к единой странице.
// Неизвестная форма: при строгой политике — ErrMalformedResponse, при
// lenient — пустая страница и warn в лог. Исходный фронтенд делал то и другое
// в разных местах; здесь поведение одно и выбирается конфигурацией.
func (c *Client) normalizeList(raw json.RawMessage) (listPage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return listPage{
			Items:       items,
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  len(items),
		}, nil
	}

	var envelope struct {
		Data        []json.RawMessage `json:"data"`
		CurrentPage *int              `json:"current_page"`
		LastPage    *int              `json:"last_page"`
		Total       *int              `json:"total"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		page := listPage{
			Items:       envelope.Data,
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  len(envelope.Data),
		}
		if envelope.CurrentPage != nil {
			page.CurrentPage = *envelope.CurrentPage
		}
		if envelope.LastPage != nil {
			page.TotalPages = *envelope.LastPage
		}
		if envelope.Total != nil {
			page.TotalItems = *envelope.Total
		}
		return page, nil
	}

	if c.lenient {
		c.log.Warn("неизвестная форма списка, возвращаю пустой результат",
			slog.String("op", "rgis.normalizeList"),
		)
		return listPage{CurrentPage: 1, TotalPages: 1}, nil
	}

	return listPage{}, ErrMalformedResponse
}

// decodeList разворачивает страницу в типизированный конверт через адаптер.
func decodeList[T, V any](c *Client, raw json.RawMessage, adapt func(T) V) (*List[V], error) {
	page, err := c.normalizeList(raw)
	if err != nil {
		return nil, err
	}

	out := &List[V]{
		Items:       make([]V, 0, len(page.Items)),
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
	}

	for _, item := range page.Items {
		var dto T
		if err := json.Unmarshal(item, &dto); err != nil {
			return nil, fmt.Errorf("%w: элемент списка: %v", ErrMalformedResponse, err)
		}
		out.Items = append(out.Items, adapt(dto))
	}

	return out, nil
}

// decodeOne декодирует одиночную сущность (бэкенд иногда заворачивает её в {data}).
func decodeOne[T, V any](raw json.RawMessage, adapt func(T) V) (*V, error) {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		raw = wrapped.Data
	}

	var dto T
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	v := adapt(dto)
	return &v, nil
}
