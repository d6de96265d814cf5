package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"trending-videos/domain/model"
	"trending-videos/domain/repository"
	"trending-videos/infrastructure/logger"
)

var trendingColumns = []string{
	"trending_date", "region_code", "position",
	"video_id", "published_time", "channel_id", "channel_title", "video_title",
	"category_id", "thumbnail_link", "view_count", "like_count", "dislike_count",
	"favorite_count", "comment_count", "rating_disable", "comment_disable",
	"tags", "description",
}

// EnsureTrendingSchema creates the trending_videos table if not exists
func EnsureTrendingSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS trending_videos (
        trending_date TEXT NOT NULL,
        region_code TEXT NOT NULL,
        position INTEGER NOT NULL,
        video_id TEXT NOT NULL,
        published_time TEXT NOT NULL,
        channel_id TEXT NOT NULL,
        channel_title TEXT NOT NULL,
        video_title TEXT NOT NULL,
        category_id TEXT,
        thumbnail_link TEXT NOT NULL,
        view_count TEXT NOT NULL,
        like_count TEXT,
        dislike_count TEXT,
        favorite_count TEXT NOT NULL,
        comment_count TEXT,
        rating_disable BOOLEAN NOT NULL,
        comment_disable BOOLEAN NOT NULL,
        tags TEXT NOT NULL,
        description TEXT NOT NULL,
        PRIMARY KEY (trending_date, region_code, position)
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create trending_videos table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_trending_videos_video_id ON trending_videos(video_id)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_trending_videos_video_id")
	}
	return nil
}

// TrendingRepository stores exported records in PostgreSQL.
type TrendingRepository struct{ db *sql.DB }

func NewTrendingRepository(db *sql.DB) *TrendingRepository {
	return &TrendingRepository{db: db}
}

// NewTrendingStore picks the repository matching driver.
func NewTrendingStore(db *sql.DB, driver string) (repository.ITrendingStore, error) {
	switch driver {
	case DriverPostgres:
		return NewTrendingRepository(db), nil
	case DriverSQLServer:
		return NewTrendingRepositoryMSSQL(db), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// SaveRegion replaces the rows of (trendingDate, regionCode) in one transaction.
func (r *TrendingRepository) SaveRegion(ctx context.Context, regionCode, trendingDate string, records []model.VideoRecord) error {
	placeholders := make([]string, len(trendingColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return saveRegion(ctx, r.db, saveQueries{
		deleteRegion: `DELETE FROM trending_videos WHERE trending_date=$1 AND region_code=$2`,
		insertRecord: fmt.Sprintf(`INSERT INTO trending_videos(%s) VALUES (%s)`,
			strings.Join(trendingColumns, ", "), strings.Join(placeholders, ",")),
	}, regionCode, trendingDate, records)
}

type saveQueries struct {
	deleteRegion string
	insertRecord string
}

func saveRegion(ctx context.Context, db *sql.DB, q saveQueries, regionCode, trendingDate string, records []model.VideoRecord) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, q.deleteRegion, trendingDate, regionCode); err != nil {
		return fmt.Errorf("clear trending rows for %s: %w", regionCode, err)
	}

	stmt, err := tx.PrepareContext(ctx, q.insertRecord)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		if _, err = stmt.ExecContext(ctx, recordArgs(trendingDate, regionCode, i, &records[i])...); err != nil {
			return fmt.Errorf("insert trending row %d for %s: %w", i, regionCode, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	logger.GetLogger().
		WithField("regionCode", regionCode).
		WithField("rows", len(records)).
		Info("Trending rows stored")
	return nil
}

func recordArgs(trendingDate, regionCode string, position int, rec *model.VideoRecord) []interface{} {
	return []interface{}{
		trendingDate, regionCode, position,
		rec.VideoID, rec.PublishedTime, rec.ChannelID, rec.ChannelTitle, rec.VideoTitle,
		nullString(rec.CategoryID), rec.ThumbnailLink, rec.ViewCount,
		nullString(rec.LikeCount), nullString(rec.DislikeCount),
		rec.FavoriteCount, nullString(rec.CommentCount),
		rec.RatingDisable, rec.CommentDisable,
		rec.Tags, rec.Description,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
