package feedsvc

import (
	"context"
	"encoding/json"
	"log/slog"

	instagramrepo "github.com/stefa-ie/buecheria-library-app/repository/instagram"
)

// Empty is returned whenever the upstream feed cannot be used.
var Empty = json.RawMessage(`{"data":[]}`)

type Service interface {
	// Feed never fails: errors are logged and Empty is returned.
	Feed(ctx context.Context) json.RawMessage
}

type service struct {
	r          instagramrepo.Repo
	configured bool
	log        *slog.Logger
}

// New returns a feed service. When configured is false the upstream API is
// never called.
func New(r instagramrepo.Repo, configured bool, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{r: r, configured: configured, log: log}
}

func (s *service) Feed(ctx context.Context) json.RawMessage {
	if !s.configured || s.r == nil {
		return Empty
	}
	body, err := s.r.RecentMedia(ctx)
	if err != nil {
		s.log.Warn("instagram feed unavailable", "err", err)
		return Empty
	}
	return body
}
