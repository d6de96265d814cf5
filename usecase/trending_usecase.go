package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"trending-videos/domain/dto"
	"trending-videos/domain/model"
	"trending-videos/domain/repository"
	"trending-videos/infrastructure/logger"
	"trending-videos/infrastructure/utils"
)

// ITrendingUsecase exports the trending chart of each region to the output directory.
type ITrendingUsecase interface {
	// FetchRegion follows continuation tokens and returns every item of the region in API order.
	FetchRegion(ctx context.Context, regionCode string) ([]model.RawVideoItem, error)
	// ExportRegion fetches, transforms and writes one region.
	ExportRegion(ctx context.Context, regionCode string) error
	// Run exports the regions one after another and stops at the first error.
	Run(ctx context.Context, regionCodes []string) error
}

var _ ITrendingUsecase = (*TrendingUsecase)(nil)

type TrendingUsecase struct {
	youtubeRepo repository.IYouTube
	files       repository.ITrendingFile
	categories  repository.IVideoCategories // optional
	store       repository.ITrendingStore   // optional
	pageSize    int64
	maxPages    int
	now         func() time.Time
	progress    io.Writer
}

// NewTrendingUsecase creates the exporter. maxPages <= 0 disables the page cap.
func NewTrendingUsecase(youtubeRepo repository.IYouTube, files repository.ITrendingFile, pageSize int64, maxPages int) *TrendingUsecase {
	if pageSize <= 0 || pageSize > dto.MaxPageSize {
		pageSize = dto.MaxPageSize
	}
	return &TrendingUsecase{
		youtubeRepo: youtubeRepo,
		files:       files,
		pageSize:    pageSize,
		maxPages:    maxPages,
		now:         utils.GetCurrentTime,
		progress:    io.Discard,
	}
}

// WithCategories enables the per-region category catalog (fluent)
func (u *TrendingUsecase) WithCategories(categories repository.IVideoCategories) *TrendingUsecase {
	u.categories = categories
	return u
}

// WithStore enables the database sink (fluent)
func (u *TrendingUsecase) WithStore(store repository.ITrendingStore) *TrendingUsecase {
	u.store = store
	return u
}

// WithClock overrides the source of the trending date (fluent)
func (u *TrendingUsecase) WithClock(now func() time.Time) *TrendingUsecase {
	u.now = now
	return u
}

// WithProgress sets where the Starting/Completed lines are printed (fluent)
func (u *TrendingUsecase) WithProgress(w io.Writer) *TrendingUsecase {
	u.progress = w
	return u
}

func (u *TrendingUsecase) FetchRegion(ctx context.Context, regionCode string) ([]model.RawVideoItem, error) {
	var (
		items     []model.RawVideoItem
		pageToken *string
	)
	for page := 0; ; page++ {
		if u.maxPages > 0 && page >= u.maxPages {
			logger.GetLogger().
				WithField("regionCode", regionCode).
				WithField("maxPages", u.maxPages).
				WithField("items", len(items)).
				Warn("Page limit reached with a continuation token left; keeping items fetched so far")
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := u.youtubeRepo.ListMostPopular(ctx, dto.NewTrendingRequest(regionCode, u.pageSize, pageToken))
		if err != nil {
			return nil, err
		}
		items = append(items, resp.Items...)

		// Only an absent token ends the chart; an empty string is still followed.
		if resp.NextPageToken == nil {
			break
		}
		pageToken = resp.NextPageToken
	}
	return items, nil
}

func (u *TrendingUsecase) ExportRegion(ctx context.Context, regionCode string) error {
	items, err := u.FetchRegion(ctx, regionCode)
	if err != nil {
		return err
	}

	runDate := u.now()
	trendingDate := utils.FormatTrendingDate(runDate)
	records := make([]model.VideoRecord, 0, len(items))
	rows := make([][]string, 0, len(items))
	for i := range items {
		rec, err := TransformVideo(&items[i], trendingDate)
		if err != nil {
			return fmt.Errorf("region %s item %d: %w", regionCode, i, err)
		}
		records = append(records, rec)
		rows = append(rows, QuoteRecord(rec))
	}

	fmt.Fprintf(u.progress, "write data of country %s to file: Starting\n", regionCode)
	path, err := u.files.WriteVideos(regionCode, runDate, rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(u.progress, "write data of country %s to file: Completed\n", regionCode)
	logger.GetLogger().
		WithField("regionCode", regionCode).
		WithField("rows", len(rows)).
		WithField("path", path).
		Info("Trending videos written")

	if u.store != nil {
		if err := u.store.SaveRegion(ctx, regionCode, trendingDate, records); err != nil {
			return fmt.Errorf("store region %s: %w", regionCode, err)
		}
	}

	if u.categories != nil {
		categories, err := u.categories.ListCategories(ctx, regionCode)
		if err != nil {
			return err
		}
		catPath, err := u.files.WriteCategories(regionCode, runDate, categories)
		if err != nil {
			return err
		}
		logger.GetLogger().WithField("regionCode", regionCode).WithField("path", catPath).Info("Video categories written")
	}
	return nil
}

func (u *TrendingUsecase) Run(ctx context.Context, regionCodes []string) error {
	for _, regionCode := range regionCodes {
		if err := u.ExportRegion(ctx, regionCode); err != nil {
			return err
		}
	}
	logger.GetLogger().WithField("regions", len(regionCodes)).Info("Trending export finished")
	return nil
}
