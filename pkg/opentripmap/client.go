// Package opentripmap is a minimal client for the three OpenTripMap call
// shapes the enrichment flow needs: geoname lookup, radius search and
// per-place detail fetch.
package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.opentripmap.com/0.1/en/places"

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is one radius-search candidate.
type Place struct {
	XID  string `json:"xid"`
	Name string `json:"name"`
}

// PlaceDetail is the per-xid detail record. Only the fields the normalizer
// reads are mapped.
type PlaceDetail struct {
	XID   string    `json:"xid"`
	Name  string    `json:"name"`
	Point *GeoPoint `json:"point"`

	WikipediaExtracts struct {
		Text string `json:"text"`
	} `json:"wikipedia_extracts"`
	Info struct {
		Descr string `json:"descr"`
	} `json:"info"`
	Address struct {
		Road string `json:"road"`
		City string `json:"city"`
	} `json:"address"`
	Preview struct {
		Source string `json:"source"`
	} `json:"preview"`
	Image string `json:"image"`
}

type ClientInterface interface {
	Geoname(ctx context.Context, name string) (*GeoPoint, error)
	Radius(ctx context.Context, lat, lon float64, kinds string, radiusMeters, limit int) ([]Place, error)
	PlaceDetail(ctx context.Context, xid string) (*PlaceDetail, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient paces all calls through a token bucket (one call per 100ms,
// matching the provider's free-tier rate limit) and bounds each HTTP round
// trip with the client timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func (c *Client) Geoname(ctx context.Context, name string) (*GeoPoint, error) {
	params := url.Values{}
	params.Set("name", name)

	var out GeoPoint
	if err := c.getJSON(ctx, "/geoname", params, &out); err != nil {
		return nil, err
	}
	if out.Lat == 0 && out.Lon == 0 {
		return nil, fmt.Errorf("no coordinate for %q", name)
	}
	return &out, nil
}

func (c *Client) Radius(ctx context.Context, lat, lon float64, kinds string, radiusMeters, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("kinds", kinds)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	var out []Place
	if err := c.getJSON(ctx, "/radius", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PlaceDetail(ctx context.Context, xid string) (*PlaceDetail, error) {
	var out PlaceDetail
	if err := c.getJSON(ctx, "/xid/"+url.PathEscape(xid), url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON waits for a rate-limiter token, then performs the GET with up to
// two retries on transient failures. All three endpoints are idempotent
// reads, so retrying is safe.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	params.Set("apikey", c.apiKey)
	target := c.baseURL + path + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= 2; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 200 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		body, retryable, err := c.doOnce(ctx, target)
		if err != nil {
			lastErr = err
			if retryable {
				continue
			}
			return err
		}
		return json.Unmarshal(body, dest)
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, target string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("opentripmap: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, false, fmt.Errorf("opentripmap: status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	return body, false, err
}
