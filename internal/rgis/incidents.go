package rgis

import (
	"context"
	"net/http"
	"strconv"
)

// Incidents возвращает страницу инцидентов (/incident).
func (c *Client) Incidents(ctx context.Context, p ListParams) (*List[Incident], error) {
	raw, err := c.request(ctx, http.MethodGet, "/incident"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptIncident)
}

// Incident возвращает инцидент по id.
func (c *Client) Incident(ctx context.Context, id int64) (*Incident, error) {
	raw, err := c.request(ctx, http.MethodGet, "/incident/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptIncident)
}

// EDDSIncidents возвращает инциденты ЕДДС (/edds/incidents).
// Форма записей та же, что у /incident.
func (c *Client) EDDSIncidents(ctx context.Context, p ListParams) (*List[Incident], error) {
	raw, err := c.request(ctx, http.MethodGet, "/edds/incidents"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptIncident)
}
