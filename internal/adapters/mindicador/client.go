package mindicador

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"indicators/internal/domain"
)

const DefaultBaseURL = "https://mindicador.cl/api"

const (
	defaultRetryWaitTime    = 500 * time.Millisecond
	defaultRetryMaxWaitTime = 5 * time.Second
)

type Options struct {
	Timeout           time.Duration
	RetryCount        int
	RetryWaitTime     time.Duration
	RetryMaxWaitTime  time.Duration
	RequestsPerSecond float64
}

// Client reads yearly indicator series from the mindicador.cl public API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

type seriesResponse struct {
	Codigo string        `json:"codigo"`
	Nombre string        `json:"nombre"`
	Serie  []seriesPoint `json:"serie"`
}

type seriesPoint struct {
	Fecha string      `json:"fecha"`
	Valor json.Number `json:"valor"`
}

func NewClient(baseURL string, opts Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if opts.RetryWaitTime <= 0 {
		opts.RetryWaitTime = defaultRetryWaitTime
	}
	if opts.RetryMaxWaitTime <= 0 {
		opts.RetryMaxWaitTime = defaultRetryMaxWaitTime
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetRetryMaxWaitTime(opts.RetryMaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{http: client, limiter: rate.NewLimiter(limit, 1)}
}

// GetSeries returns the observations published for indicator during year.
// A year with no publications yields an empty series and no error.
func (c *Client) GetSeries(ctx context.Context, indicator string, year int) (domain.Series, error) {
	series := domain.Series{Indicator: indicator, Year: year}

	if err := c.limiter.Wait(ctx); err != nil {
		return series, classifyTransportError(err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"indicator": indicator,
			"year":      strconv.Itoa(year),
		}).
		Get("/{indicator}/{year}")
	if err != nil {
		return series, classifyTransportError(err)
	}
	if !resp.IsSuccess() {
		return series, classifyStatus(resp.StatusCode(), resp.Status())
	}

	var body seriesResponse
	if err = json.Unmarshal(resp.Bytes(), &body); err != nil {
		return series, validationError(fmt.Sprintf("failed to decode %s/%d response", indicator, year), err)
	}

	series.Observations = make([]domain.Observation, 0, len(body.Serie))
	for _, point := range body.Serie {
		obs, err := toObservation(point)
		if err != nil {
			return series, validationError(fmt.Sprintf("bad observation in %s/%d", indicator, year), err)
		}
		series.Observations = append(series.Observations, obs)
	}

	return series, nil
}

func (c *Client) Close() error {
	return c.http.Close()
}

func toObservation(point seriesPoint) (domain.Observation, error) {
	valor := point.Valor.String()
	if valor != "" {
		if _, err := decimal.NewFromString(valor); err != nil {
			return domain.Observation{}, fmt.Errorf("%w: valor %q: %v", domain.ErrInvalidObservation, valor, err)
		}
	}
	return domain.NewObservation(point.Fecha, valor)
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch code := r.StatusCode(); {
	case code >= http.StatusInternalServerError:
		return true
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return true
	default:
		return false
	}
}

func retryHook(r *resty.Response, err error) {
	if err == nil && r != nil {
		err = r.Err
	}
	entry := log.WithField("attempt", 0)
	if r != nil && r.Request != nil {
		entry = log.WithFields(log.Fields{"url": r.Request.URL, "attempt": r.Request.Attempt})
	}
	if err != nil {
		entry.WithError(err).Warn("retrying mindicador request")
		return
	}
	entry.WithField("status", r.StatusCode()).Warn("retrying mindicador request")
}
