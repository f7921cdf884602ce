package rgis

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// HeatSources возвращает страницу теплоисточников (/hs).
func (c *Client) HeatSources(ctx context.Context, p ListParams) (*List[HeatSource], error) {
	raw, err := c.request(ctx, http.MethodGet, "/hs"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptHeatSource)
}

// HeatSource возвращает теплоисточник по id.
func (c *Client) HeatSource(ctx context.Context, id int64) (*HeatSource, error) {
	raw, err := c.request(ctx, http.MethodGet, "/hs/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptHeatSource)
}

// CreateHeatSource создаёт теплоисточник.
func (c *Client) CreateHeatSource(ctx context.Context, in HeatSourceInput) (*HeatSource, error) {
	raw, err := c.request(ctx, http.MethodPost, "/hs", in)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptHeatSource)
}

// UpdateHeatSource обновляет теплоисточник.
func (c *Client) UpdateHeatSource(ctx context.Context, id int64, in HeatSourceInput) (*HeatSource, error) {
	raw, err := c.request(ctx, http.MethodPut, "/hs/"+strconv.FormatInt(id, 10), in)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptHeatSource)
}

// DeleteHeatSource удаляет теплоисточник. Бэкенд отвечает 204.
func (c *Client) DeleteHeatSource(ctx context.Context, id int64) error {
	_, err := c.request(ctx, http.MethodDelete, "/hs/"+strconv.FormatInt(id, 10), nil)
	return err
}

// HeatSourceTypes возвращает справочник типов (/hs-type).
func (c *Client) HeatSourceTypes(ctx context.Context) (*List[HeatSourceType], error) {
	raw, err := c.request(ctx, http.MethodGet, "/hs-type", nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptHeatSourceType)
}

// ImportHeatSources загружает excel-файл импорта теплоисточников.
// Endpoint бэкенда так и называется — /hs/import/exel, с опечаткой.
func (c *Client) ImportHeatSources(ctx context.Context, filename string, file io.Reader) error {
	_, err := c.upload(ctx, "/hs/import/exel", "file", filename, file)
	return err
}
