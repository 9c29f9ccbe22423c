// Package store implements the ContentStore interface.
// Lessons come either from the course API or from lesson files on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gaurav-prasanna/lessonmd/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "lessonmd/1.0 (https://github.com/gaurav-prasanna/lessonmd)"
)

// ErrLessonNotFound is returned when the store has no lesson for a reference.
var ErrLessonNotFound = errors.New("lesson not found")

// HTTPStore loads lessons from the course API (GET {BaseURL}/lessons/{id}).
type HTTPStore struct {
	BaseURL string
	Token   string
	client  *http.Client
}

// NewHTTPStore creates an HTTPStore. A zero timeout uses the default.
func NewHTTPStore(baseURL, token string, timeout time.Duration) *HTTPStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPStore{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lesson fetches the lesson with the given id.
func (s *HTTPStore) Lesson(ctx context.Context, ref string) (*core.Lesson, error) {
	lessonURL := s.BaseURL + "/lessons/" + url.PathEscape(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lessonURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", lessonURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("lesson %s: %w", ref, ErrLessonNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d for %s: %s", resp.StatusCode, lessonURL, strings.TrimSpace(string(body)))
	}

	var lesson core.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lesson); err != nil {
		return nil, fmt.Errorf("decoding lesson %s: %w", ref, err)
	}
	lesson.Source = lessonURL
	return &lesson, nil
}
