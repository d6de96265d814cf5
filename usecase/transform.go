package usecase

import (
	"errors"
	"fmt"
	"strings"

	"trending-videos/domain/model"
)

// ErrMissingSection is returned when an item has no snippet or statistics
// record. Missing leaf fields are defaulted instead.
var ErrMissingSection = errors.New("video item is missing a required section")

var cellReplacer = strings.NewReplacer("\n", " ", `"`, " ")

// TransformVideo flattens one API item into a VideoRecord stamped with trendingDate.
func TransformVideo(item *model.RawVideoItem, trendingDate string) (model.VideoRecord, error) {
	if item.Snippet == nil {
		return model.VideoRecord{}, fmt.Errorf("%w: video %q has no snippet", ErrMissingSection, item.ID)
	}
	if item.Statistics == nil {
		return model.VideoRecord{}, fmt.Errorf("%w: video %q has no statistics", ErrMissingSection, item.ID)
	}
	snippet, stats := item.Snippet, item.Statistics

	rec := model.VideoRecord{
		VideoID:       item.ID,
		PublishedTime: snippet.PublishedAt,
		TrendingDate:  trendingDate,
		ChannelID:     snippet.ChannelID,
		ChannelTitle:  snippet.ChannelTitle,
		VideoTitle:    snippet.Title,
		CategoryID:    snippet.CategoryID,
		ThumbnailLink: snippet.Thumbnails["default"].URL,
		ViewCount:     countOrZero(stats.ViewCount),
		LikeCount:     optionalCount(stats.LikeCount),
		DislikeCount:  optionalCount(stats.DislikeCount),
		FavoriteCount: countOrZero(stats.FavoriteCount),
		CommentCount:  optionalCount(stats.CommentCount),
		Tags:          strings.Join(snippet.Tags, "|"),
		Description:   snippet.Description,
	}
	rec.RatingDisable = rec.LikeCount == nil && rec.DislikeCount == nil
	rec.CommentDisable = rec.CommentCount == nil
	return rec, nil
}

// QuoteCell replaces newlines and double quotes with a space and wraps the
// result in double quotes.
func QuoteCell(v string) string {
	return `"` + cellReplacer.Replace(v) + `"`
}

// QuoteRecord returns the record as quoted cells in header order.
func QuoteRecord(rec model.VideoRecord) []string {
	values := rec.Values()
	for i, v := range values {
		values[i] = QuoteCell(v)
	}
	return values
}

func countOrZero(c *model.Count) string {
	if c == nil {
		return "0"
	}
	return c.String()
}

func optionalCount(c *model.Count) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
