package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trending-videos/domain/dto"
	"trending-videos/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

// Config represents YouTube API configuration
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// TrendingClient fetches pages of the mostPopular chart from GET /videos.
type TrendingClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewTrendingClient(config *Config) *TrendingClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &TrendingClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
	}
}

// ListMostPopular performs one GET /videos call. The client's API key is
// used when req.Key is empty.
func (c *TrendingClient) ListMostPopular(ctx context.Context, req *dto.VideoListRequest) (*dto.VideoListResponse, error) {
	if req.Key == "" {
		withKey := *req
		withKey.Key = c.apiKey
		req = &withKey
	}
	values, err := query.Values(req)
	if err != nil {
		return nil, fmt.Errorf("encode videos query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build videos request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	log := logger.GetLogger().WithField("regionCode", req.RegionCode)
	if req.PageToken != nil {
		log = log.WithField("pageToken", *req.PageToken)
	}
	log.Debug("Requesting trending page")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request videos for region %s: %w", req.RegionCode, redactKey(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read videos response for region %s: %w", req.RegionCode, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			StatusCode: resp.StatusCode,
			RegionCode: req.RegionCode,
			RetryAfter: parseRetryAfter(resp.Header),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Error("Unexpected status from videos endpoint")
		return nil, &HTTPError{StatusCode: resp.StatusCode, RegionCode: req.RegionCode, Body: body}
	}

	var page dto.VideoListResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &DecodeError{RegionCode: req.RegionCode, Err: err}
	}
	log.WithField("items", len(page.Items)).Debug("Trending page received")
	return &page, nil
}

// redactKey strips the query string from transport errors so the API key
// never ends up in logs.
func redactKey(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if u, perr := url.Parse(uerr.URL); perr == nil {
			q := u.Query()
			if q.Has("key") {
				q.Set("key", "REDACTED")
				u.RawQuery = q.Encode()
				uerr.URL = u.String()
			}
		}
	}
	return err
}
