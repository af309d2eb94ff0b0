package instagramrepo

import (
	"context"
	"encoding/json"
)

const DefaultBaseURL = "https://graph.instagram.com/v21.0"

// MediaFields is the field set requested for each media item.
const MediaFields = "id,caption,media_url,permalink,thumbnail_url,media_type"

const MediaLimit = 12

type Repo interface {
	// RecentMedia returns the raw media listing document of the configured account.
	RecentMedia(ctx context.Context) (json.RawMessage, error)
}
