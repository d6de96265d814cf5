package model

// NoneValue is written for values the API did not return.
const NoneValue = "None"

// VideoRecordHeader is the header row of every exported videos file.
var VideoRecordHeader = []string{
	"video_id",
	"published_time",
	"trending_date",
	"channel_id",
	"channel_title",
	"video_title",
	"category_id",
	"thumbnail_link",
	"view_count",
	"like_count",
	"dislike_count",
	"favorite_count",
	"comment_count",
	"rating_disable",
	"comment_disable",
	"tags",
	"description",
}

// VideoRecord is the flattened, fixed-shape row derived from one RawVideoItem.
// Nil pointers are values the API did not return.
type VideoRecord struct {
	VideoID        string
	PublishedTime  string
	TrendingDate   string
	ChannelID      string
	ChannelTitle   string
	VideoTitle     string
	CategoryID     *string
	ThumbnailLink  string
	ViewCount      string
	LikeCount      *string
	DislikeCount   *string
	FavoriteCount  string
	CommentCount   *string
	RatingDisable  bool
	CommentDisable bool
	Tags           string
	Description    string
}

// Values returns the record stringified in VideoRecordHeader order, in the
// rendering used by existing trending datasets: absent values are "None" and
// flags are "True" or "False".
func (r VideoRecord) Values() []string {
	return []string{
		r.VideoID,
		r.PublishedTime,
		r.TrendingDate,
		r.ChannelID,
		r.ChannelTitle,
		r.VideoTitle,
		deref(r.CategoryID),
		r.ThumbnailLink,
		r.ViewCount,
		deref(r.LikeCount),
		deref(r.DislikeCount),
		r.FavoriteCount,
		deref(r.CommentCount),
		formatFlag(r.RatingDisable),
		formatFlag(r.CommentDisable),
		r.Tags,
		r.Description,
	}
}

func deref(s *string) string {
	if s == nil {
		return NoneValue
	}
	return *s
}

func formatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
