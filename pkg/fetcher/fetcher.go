package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// requestTimeout — жёсткий лимит на один запрос к внешнему API, без повторов
const requestTimeout = 5 * time.Second

// FetchError — любая неудача запроса к внешнему API: сеть, таймаут,
// не-2xx статус или битое тело ответа. В Host нет ни пути, ни ключей.
type FetchError struct {
	Op     string
	Host   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s ответил статусом %d", e.Op, e.Host, e.Status)
	}
	return fmt.Sprintf("%s: запрос к %s не удался: %v", e.Op, e.Host, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client — общий HTTP-клиент для всех внешних API
type Client struct {
	http *resty.Client
}

func New() *Client {
	return &Client{
		http: resty.New().
			SetTimeout(requestTimeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
	}
}

// GetJSON делает один GET и раскладывает JSON-ответ в out
func (c *Client) GetJSON(ctx context.Context, op, rawURL string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		ForceContentType("application/json").
		Get(rawURL)
	if err != nil {
		return &FetchError{Op: op, Host: hostOf(rawURL), Err: err}
	}
	if resp.IsError() {
		return &FetchError{
			Op:     op,
			Host:   hostOf(rawURL),
			Status: resp.StatusCode(),
			Err:    errors.Errorf("статус %s", resp.Status()),
		}
	}
	return nil
}

// hostOf оставляет от адреса только хост, чтобы API-ключи не утекали в логи
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<bad url>"
	}
	return u.Host
}
