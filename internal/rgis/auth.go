package rgis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// LoginResult — ответ POST /login.
type LoginResult struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message,omitempty"`
}

// Login выполняет вход и сохраняет токен с профилем в сессию.
// Единственный запрос клиента, уходящий без авторизации.
func (c *Client) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"login":    login,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("сериализация тела запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос /login: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("чтение ответа: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, raw)
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: пустой токен в ответе /login", ErrMalformedResponse)
	}

	if err := c.session.Save(result.Token, result.User); err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout удаляет локальную сессию. Запрос на бэкенд не уходит —
// токен перестаёт использоваться, сервер сам истечёт его по TTL.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// CheckPermission спрашивает у бэкенда, разрешён ли оператору slug.
// Кэширование — забота пакета permissions, клиент всегда ходит в сеть.
func (c *Client) CheckPermission(ctx context.Context, slug string) (bool, error) {
	raw, err := c.request(ctx, http.MethodGet, "/user/permission/"+url.PathEscape(slug), nil)
	if err != nil {
		return false, err
	}

	var result struct {
		Access bool `json:"access"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return result.Access, nil
}
