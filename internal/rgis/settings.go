package rgis

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Settings возвращает настройки дашборда (/settings) как есть:
// форма у бэкенда свободная, фронт разбирает сам.
func (c *Client) Settings(ctx context.Context) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, "/settings", nil)
}

// UploadLoginBackground загружает фоновое изображение страницы входа
// (/settings/background/login, поле img).
func (c *Client) UploadLoginBackground(ctx context.Context, filename string, img io.Reader) error {
	_, err := c.upload(ctx, "/settings/background/login", "img", filename, img)
	return err
}
