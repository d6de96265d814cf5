package repository

import (
	"context"

	"trending-videos/domain/dto"
)

// IYouTube is the read side of the YouTube Data API used by the exporter.
type IYouTube interface {
	// ListMostPopular fetches one page of a region's trending chart.
	ListMostPopular(ctx context.Context, req *dto.VideoListRequest) (*dto.VideoListResponse, error)
}

// IVideoCategories resolves category ids to titles for a region.
type IVideoCategories interface {
	ListCategories(ctx context.Context, regionCode string) (map[string]string, error)
}
