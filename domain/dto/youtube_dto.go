package dto

import "trending-videos/domain/model"

const (
	// VideoParts is the `part` selector used for trending requests.
	VideoParts = "id,statistics,snippet"
	// ChartMostPopular selects the trending chart.
	ChartMostPopular = "mostPopular"
	// MaxPageSize is the largest page the videos endpoint serves.
	MaxPageSize = 50
)

// VideoListRequest is the query of one GET /videos call. Field tags are
// consumed by go-querystring.
type VideoListRequest struct {
	Part       string  `url:"part"`
	Chart      string  `url:"chart"`
	Key        string  `url:"key"`
	RegionCode string  `url:"regionCode"`
	MaxResults int64   `url:"maxResults"`
	PageToken  *string `url:"pageToken,omitempty"`
}

// NewTrendingRequest builds the request for one page of a region's chart.
// A nil token requests the first page.
func NewTrendingRequest(regionCode string, maxResults int64, pageToken *string) *VideoListRequest {
	return &VideoListRequest{
		Part:       VideoParts,
		Chart:      ChartMostPopular,
		RegionCode: regionCode,
		MaxResults: maxResults,
		PageToken:  pageToken,
	}
}

// VideoListResponse is the decoded body of GET /videos.
// NextPageToken is nil when the field is absent; an empty string is still a token.
type VideoListResponse struct {
	Kind          string               `json:"kind"`
	ETag          string               `json:"etag"`
	NextPageToken *string              `json:"nextPageToken"`
	PrevPageToken *string              `json:"prevPageToken"`
	PageInfo      PageInfo             `json:"pageInfo"`
	Items         []model.RawVideoItem `json:"items"`
}

// PageInfo represents pagination information
type PageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}
