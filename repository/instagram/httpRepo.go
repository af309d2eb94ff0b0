package instagramrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxBody caps how much of the upstream response is read.
const maxBody = 4 << 20

type httpRepo struct {
	token   string
	userID  string
	baseURL string
	client  *http.Client
}

func NewHTTP(token, userID string, client *http.Client) Repo {
	return NewHTTPWithBase(DefaultBaseURL, token, userID, client)
}

func NewHTTPWithBase(baseURL, token, userID string, client *http.Client) Repo {
	if client == nil {
		client = &http.Client{}
	}
	return &httpRepo{
		token:   token,
		userID:  userID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (r *httpRepo) RecentMedia(ctx context.Context) (json.RawMessage, error) {
	if r.token == "" || r.userID == "" {
		return nil, errors.New("instagram: credentials not configured")
	}

	q := url.Values{}
	q.Set("fields", MediaFields)
	q.Set("limit", strconv.Itoa(MediaLimit))
	q.Set("access_token", r.token)
	u := fmt.Sprintf("%s/%s/media?%s", r.baseURL, url.PathEscape(r.userID), q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("instagram media request failed: %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("instagram: malformed response: %w", err)
	}
	if obj == nil {
		return nil, errors.New("instagram: response is not an object")
	}
	return json.RawMessage(b), nil
}
