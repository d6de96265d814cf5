package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trending-videos/infrastructure/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// CategoryClient lists video categories through the generated YouTube Data API client.
type CategoryClient struct {
	service *youtube.Service
	timeout time.Duration
}

// NewCategoryClient creates a client in API key mode (read-only). BaseURL
// has the same form as for TrendingClient (".../youtube/v3").
func NewCategoryClient(ctx context.Context, config *Config) (*CategoryClient, error) {
	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(serviceEndpoint(config.BaseURL)))
	}
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &CategoryClient{service: service, timeout: config.Timeout}, nil
}

// ListCategories maps category id to title for a region.
func (c *CategoryClient) ListCategories(ctx context.Context, regionCode string) (map[string]string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.service.VideoCategories.List([]string{"snippet"}).
		RegionCode(regionCode).
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			if gerr.Code == http.StatusTooManyRequests {
				return nil, &RateLimitError{
					StatusCode: gerr.Code,
					RegionCode: regionCode,
					RetryAfter: parseRetryAfter(gerr.Header),
				}
			}
			return nil, &HTTPError{StatusCode: gerr.Code, RegionCode: regionCode, Body: []byte(gerr.Body)}
		}
		return nil, fmt.Errorf("failed to list video categories for region %s: %w", regionCode, err)
	}

	categories := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		categories[item.Id] = item.Snippet.Title
	}
	logger.GetLogger().
		WithField("regionCode", regionCode).
		WithField("categories", len(categories)).
		Debug("Video categories received")
	return categories, nil
}

// serviceEndpoint turns ".../youtube/v3" into the root the generated client
// resolves "youtube/v3/..." against.
func serviceEndpoint(baseURL string) string {
	root := strings.TrimSuffix(strings.TrimRight(baseURL, "/"), "/youtube/v3")
	return root + "/"
}
