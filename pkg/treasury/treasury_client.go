package treasury_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// YieldCurve maps a maturity in months to an annualized decimal yield.
type YieldCurve struct {
	Rates map[int]float64
}

// TenYear returns the 10-year point of the curve.
func (c YieldCurve) TenYear() (float64, bool) {
	rate, ok := c.Rates[120]
	return rate, ok
}

type Client struct {
	httpClient *http.Client

	mu sync.Mutex
	// lazy, in-memory cache of raw snapshot responses keyed by date
	snapshots map[string][]byte
}

func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
		snapshots:  map[string][]byte{},
	}
}

var curveKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

func maturityMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

func (c *Client) getSnapshot(ctx context.Context, date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	c.mu.Lock()
	cached, ok := c.snapshots[tStr]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0", tStr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	c.mu.Lock()
	c.snapshots[tStr] = responseBytes
	c.mu.Unlock()

	return responseBytes, nil
}

// RatesOnDay fetches the yield curve snapshot for the given date. When every
// point of the snapshot is null (holiday, weekend) it walks back a month and
// retries.
func (c *Client) RatesOnDay(ctx context.Context, date time.Time) (YieldCurve, error) {
	responseBytes, err := c.getSnapshot(ctx, date)
	if err != nil {
		return YieldCurve{}, err
	}

	responseBody := []map[string]interface{}{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return YieldCurve{}, err
	}

	out := map[int]float64{}
	oneNonNil := false

	for _, response := range responseBody {
		for k, v := range response {
			for _, field := range curveKeys {
				if k == field {
					months, err := maturityMonthsFromApi(k)
					if err != nil {
						return YieldCurve{}, err
					}
					if v != nil {
						rate, ok := v.(float64)
						if !ok {
							return YieldCurve{}, fmt.Errorf("unexpected type %T for %s", v, k)
						}
						oneNonNil = true
						out[months] = rate / 100
					}
				}
			}
		}
	}
	if !oneNonNil {
		return c.RatesOnDay(ctx, date.AddDate(0, -1, 0))
	}

	return YieldCurve{Rates: out}, nil
}
