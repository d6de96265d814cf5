package repository

import (
	"context"
	"time"

	"trending-videos/domain/model"
)

// ITrendingFile persists one run of one region to the output directory.
type ITrendingFile interface {
	// WriteVideos writes the header and the already quoted rows, replacing any previous file.
	WriteVideos(regionCode string, date time.Time, rows [][]string) (string, error)
	WriteCategories(regionCode string, date time.Time, categories map[string]string) (string, error)
}

// ITrendingStore is an optional database sink for exported records.
type ITrendingStore interface {
	// SaveRegion replaces the rows stored for (trendingDate, regionCode).
	SaveRegion(ctx context.Context, regionCode, trendingDate string, records []model.VideoRecord) error
}
