package rgis

import (
	"context"
	"net/http"
	"strconv"
)

// Organizations возвращает страницу организаций (/org).
func (c *Client) Organizations(ctx context.Context, p ListParams) (*List[Organization], error) {
	raw, err := c.request(ctx, http.MethodGet, "/org"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptOrganization)
}

// Organization возвращает организацию по id.
func (c *Client) Organization(ctx context.Context, id int64) (*Organization, error) {
	raw, err := c.request(ctx, http.MethodGet, "/org/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptOrganization)
}

// FreeCapacities возвращает свободные мощности теплоисточников (/free-capacity).
func (c *Client) FreeCapacities(ctx context.Context, p ListParams) (*List[FreeCapacity], error) {
	raw, err := c.request(ctx, http.MethodGet, "/free-capacity"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptFreeCapacity)
}
