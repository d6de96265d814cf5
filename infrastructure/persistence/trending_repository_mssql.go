package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"trending-videos/domain/model"
)

// EnsureTrendingSchemaMSSQL creates dbo.trending_videos when missing.
func EnsureTrendingSchemaMSSQL(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ddl := `IF OBJECT_ID(N'dbo.trending_videos', N'U') IS NULL
BEGIN
CREATE TABLE dbo.[trending_videos] (
  trending_date NVARCHAR(16) NOT NULL,
  region_code NVARCHAR(16) NOT NULL,
  position INT NOT NULL,
  video_id NVARCHAR(64) NOT NULL,
  published_time NVARCHAR(64) NOT NULL,
  channel_id NVARCHAR(64) NOT NULL,
  channel_title NVARCHAR(400) NOT NULL,
  video_title NVARCHAR(400) NOT NULL,
  category_id NVARCHAR(16) NULL,
  thumbnail_link NVARCHAR(2048) NOT NULL,
  view_count NVARCHAR(32) NOT NULL,
  like_count NVARCHAR(32) NULL,
  dislike_count NVARCHAR(32) NULL,
  favorite_count NVARCHAR(32) NOT NULL,
  comment_count NVARCHAR(32) NULL,
  rating_disable BIT NOT NULL,
  comment_disable BIT NOT NULL,
  tags NVARCHAR(MAX) NOT NULL,
  description NVARCHAR(MAX) NOT NULL,
  CONSTRAINT PK_trending_videos PRIMARY KEY (trending_date, region_code, position)
)
END`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure dbo.trending_videos: %w", err)
	}
	return nil
}

// TrendingRepositoryMSSQL stores exported records in SQL Server/Azure SQL using database/sql.
type TrendingRepositoryMSSQL struct{ db *sql.DB }

func NewTrendingRepositoryMSSQL(db *sql.DB) *TrendingRepositoryMSSQL {
	return &TrendingRepositoryMSSQL{db: db}
}

func (r *TrendingRepositoryMSSQL) SaveRegion(ctx context.Context, regionCode, trendingDate string, records []model.VideoRecord) error {
	placeholders := make([]string, len(trendingColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("@p%d", i+1)
	}
	return saveRegion(ctx, r.db, saveQueries{
		deleteRegion: `DELETE FROM dbo.[trending_videos] WHERE trending_date=@p1 AND region_code=@p2`,
		insertRecord: fmt.Sprintf(`INSERT INTO dbo.[trending_videos](%s) VALUES (%s)`,
			strings.Join(trendingColumns, ", "), strings.Join(placeholders, ",")),
	}, regionCode, trendingDate, records)
}
