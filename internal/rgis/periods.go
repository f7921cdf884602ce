package rgis

import (
	"context"
	"net/http"
	"strconv"
)

// HeatingPeriods возвращает страницу отопительных периодов (/hs-period).
func (c *Client) HeatingPeriods(ctx context.Context, p ListParams) (*List[HeatingPeriod], error) {
	raw, err := c.request(ctx, http.MethodGet, "/hs-period"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptHeatingPeriod)
}

// HeatingPeriod возвращает отопительный период по id.
func (c *Client) HeatingPeriod(ctx context.Context, id int64) (*HeatingPeriod, error) {
	raw, err := c.request(ctx, http.MethodGet, "/hs-period/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw, adaptHeatingPeriod)
}

// HeatingSchedule возвращает график включения отопления (/heating-schedule).
func (c *Client) HeatingSchedule(ctx context.Context, p ListParams) (*List[ScheduleEntry], error) {
	raw, err := c.request(ctx, http.MethodGet, "/heating-schedule"+p.encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(c, raw, adaptScheduleEntry)
}
