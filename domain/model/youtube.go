package model

import "encoding/json"

// RawVideoItem is one element of the `items` array returned by the
// videos endpoint. Sub-records are pointers so that a missing `snippet`
// or `statistics` can be told apart from an empty one.
type RawVideoItem struct {
	Kind       string           `json:"kind"`
	ETag       string           `json:"etag"`
	ID         string           `json:"id"`
	Snippet    *VideoSnippet    `json:"snippet"`
	Statistics *VideoStatistics `json:"statistics"`
}

// VideoSnippet holds the descriptive part of a video.
type VideoSnippet struct {
	PublishedAt  string               `json:"publishedAt"`
	ChannelID    string               `json:"channelId"`
	ChannelTitle string               `json:"channelTitle"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
	Tags         []string             `json:"tags"`
	CategoryID   *string              `json:"categoryId"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VideoStatistics holds the counters of a video. A nil counter means the
// API did not return it (e.g. ratings or comments disabled by the owner).
type VideoStatistics struct {
	ViewCount     *Count `json:"viewCount"`
	LikeCount     *Count `json:"likeCount"`
	DislikeCount  *Count `json:"dislikeCount"`
	FavoriteCount *Count `json:"favoriteCount"`
	CommentCount  *Count `json:"commentCount"`
}

// Count is a statistics counter kept verbatim. The API encodes counters
// as decimal strings; plain JSON numbers are accepted as well.
type Count string

func (c *Count) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count(n.String())
	return nil
}

func (c *Count) String() string {
	if c == nil {
		return ""
	}
	return string(*c)
}
