package rgis

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrAuthRequired — токена нет локально, запрос в сеть не уходил.
	ErrAuthRequired = errors.New("требуется аутентификация")

	// ErrReauthRequired — бэкенд ответил 401, токен удалён.
	ErrReauthRequired = errors.New("требуется повторный вход")

	// ErrMalformedResponse — тело ответа не совпало ни с одной известной формой списка.
	ErrMalformedResponse = errors.New("неизвестная форма ответа")
)

// RequestError — любой другой не-2xx ответ бэкенда.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("запрос завершился со статусом %d", e.Status)
	}
	return fmt.Sprintf("запрос завершился со статусом %d: %s", e.Status, e.Message)
}

// parseAPIError собирает ошибку из тела ответа бэкенда.
// Laravel-бэкенд присылает {"message": "...", "errors": {"field": ["...","..."]}},
// причём значения в errors бывают и массивами, и скалярами.
func parseAPIError(status int, body []byte) *RequestError {
	var payload struct {
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return &RequestError{Status: status}
	}

	var lines []string
	if payload.Message != "" {
		lines = append(lines, payload.Message)
	}

	// Порядок полей фиксируем, чтобы сообщение было стабильным
	fields := make([]string, 0, len(payload.Errors))
	for field := range payload.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		raw := payload.Errors[field]

		var many []string
		if err := json.Unmarshal(raw, &many); err == nil {
			lines = append(lines, many...)
			continue
		}

		var one string
		if err := json.Unmarshal(raw, &one); err == nil {
			lines = append(lines, one)
		}
	}

	return &RequestError{Status: status, Message: strings.Join(lines, "\n")}
}
