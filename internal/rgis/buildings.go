package rgis

import (
	"context"
	"net/http"
	"strconv"
)

// MKDBuildings возвращает страницу многоквартирных домов (/mkd).
func (c *Client) MKDBuildings(ctx context.Context, p ListParams) (*List[MKDBuilding], error) {
	raw, err := c.request(ctx, http.MethodGet, "/mkd"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptMKDBuilding)
}

// MKDBuilding возвращает дом по id.
func (c *Client) MKDBuilding(ctx context.Context, id int64) (*MKDBuilding, error) {
	raw, err := c.request(ctx, http.MethodGet, "/mkd/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptMKDBuilding)
}

// OKSList возвращает объекты капитального строительства (/oks).
func (c *Client) OKSList(ctx context.Context, p ListParams) (*List[OKS], error) {
	raw, err := c.request(ctx, http.MethodGet, "/oks"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptOKS)
}
