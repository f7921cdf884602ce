// Пакет rgis — HTTP-клиент к REST API РГИС ПРИО.
// Дашборд не ходит в базу: все данные берутся у upstream-бэкенда и
// приводятся к единому конверту списка и плоским вьюмоделям.
package rgis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"rgis-prio/internal/session"
)

// Client — авторизованный клиент РГИС ПРИО.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	session    *session.Store

	// lenient — политика normalizeList для неизвестной формы списка
	lenient bool
}

// New создаёт клиент. httpClient может быть nil — тогда используется
// клиент с таймаутом 30 секунд (без таймаута зависший бэкенд повесит запрос навсегда).
func New(baseURL string, httpClient *http.Client, sess *session.Store, lenient bool, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log.With(slog.String("component", "rgis_client")),
		session:    sess,
		lenient:    lenient,
	}
}

// request выполняет авторизованный JSON-запрос.
// Без токена в сессии запрос в сеть не уходит. 204 возвращает nil-тело.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	token, err := c.session.Token()
	if err != nil {
		return nil, ErrAuthRequired
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("сериализация тела запроса: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req)
}

// upload выполняет авторизованную multipart-загрузку файла одним полем.
func (c *Client) upload(ctx context.Context, endpoint, field, filename string, file io.Reader) (json.RawMessage, error) {
	token, err := c.session.Token()
	if err != nil {
		return nil, ErrAuthRequired
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("сборка multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("чтение файла для загрузки: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("сборка multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// do отправляет запрос и переводит ответ в результат либо ошибку таксономии.
// Ровно один исход на вызов, повторов нет.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Токен отвергнут — чистим сессию. Clear идемпотентен, параллельный
		// 401 второго запроса пройдёт тот же путь без вреда.
		if err := c.session.Clear(); err != nil {
			c.log.Error("не удалось очистить сессию после 401",
				slog.String("error", err.Error()),
			)
		}
		c.log.Warn("бэкенд отверг токен", slog.String("path", req.URL.Path))
		return nil, ErrReauthRequired
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("чтение ответа: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, raw)
		c.log.Warn("ошибка запроса к РГИС",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, apiErr
	}

	return raw, nil
}
