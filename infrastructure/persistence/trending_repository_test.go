package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"trending-videos/domain/model"
)

func strPtr(s string) *string { return &s }

func sampleRecords() []model.VideoRecord {
	return []model.VideoRecord{
		{
			VideoID: "vid1", TrendingDate: "24.07.03", CategoryID: strPtr("10"),
			ViewCount: "100", LikeCount: strPtr("5"), FavoriteCount: "0", CommentCount: strPtr("2"),
			Tags: "a|b",
		},
		{
			VideoID: "vid2", TrendingDate: "24.07.03",
			ViewCount: "0", FavoriteCount: "0", RatingDisable: true, CommentDisable: true,
		},
	}
}

func rowArgs(position int, rec model.VideoRecord) []driver.Value {
	args := recordArgs("24.07.03", "US", position, &rec)
	out := make([]driver.Value, len(args))
	for i := range args {
		out[i] = args[i]
	}
	return out
}

func TestTrendingRepository_SaveRegion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	records := sampleRecords()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM trending_videos WHERE trending_date=$1 AND region_code=$2`)).
		WithArgs("24.07.03", "US").
		WillReturnResult(sqlmock.NewResult(0, 3))
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO trending_videos(trending_date, region_code, position, video_id`))
	prep.ExpectExec().WithArgs(rowArgs(0, records[0])...).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(rowArgs(1, records[1])...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewTrendingRepository(db).SaveRegion(context.Background(), "US", "24.07.03", records)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTrendingRepository_SaveRegion_RollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	records := sampleRecords()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM trending_videos`).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(`INSERT INTO trending_videos`)
	prep.ExpectExec().WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewTrendingRepository(db).SaveRegion(context.Background(), "US", "24.07.03", records)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTrendingRepositoryMSSQL_SaveRegion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	records := sampleRecords()[:1]
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM dbo.[trending_videos] WHERE trending_date=@p1 AND region_code=@p2`)).
		WithArgs("24.07.03", "US").
		WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO dbo.[trending_videos](`) + `.*` + regexp.QuoteMeta(`VALUES (@p1,@p2,@p3`))
	prep.ExpectExec().WithArgs(rowArgs(0, records[0])...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewTrendingRepositoryMSSQL(db).SaveRegion(context.Background(), "US", "24.07.03", records)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureTrendingSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS trending_videos`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_trending_videos_video_id`).WillReturnError(errors.New("ignored"))

	require.NoError(t, EnsureTrendingSchema(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureTrendingSchemaMSSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`IF OBJECT_ID(N'dbo.trending_videos', N'U') IS NULL`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureTrendingSchemaMSSQL(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewTrendingStore(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pg, err := NewTrendingStore(db, DriverPostgres)
	require.NoError(t, err)
	require.IsType(t, &TrendingRepository{}, pg)

	ms, err := NewTrendingStore(db, DriverSQLServer)
	require.NoError(t, err)
	require.IsType(t, &TrendingRepositoryMSSQL{}, ms)

	_, err = NewTrendingStore(db, "mysql")
	require.Error(t, err)
}
