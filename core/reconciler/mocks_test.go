package reconciler

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
)

// memoryStore is an ArticleStore kept in memory
type memoryStore struct {
	records []domain.Article
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryStore) Load(ctx context.Context) ([]domain.Article, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]domain.Article, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memoryStore) Save(ctx context.Context, records []domain.Article) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = make([]domain.Article, len(records))
	copy(m.records, records)
	return nil
}

func (m *memoryStore) Path() string {
	return "memory.xlsx"
}

// staticCandidates returns the same candidates on every call
type staticCandidates struct {
	articles []domain.Article
	err      error
	calls    int
}

func (s *staticCandidates) FetchCandidates(ctx context.Context) ([]domain.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Article, len(s.articles))
	copy(out, s.articles)
	return out, nil
}

// mapContent serves page text by URL; unknown URLs return ""
type mapContent struct {
	pages   map[string]string
	fetched []string
}

func (m *mapContent) GetFullContent(ctx context.Context, url string) string {
	m.fetched = append(m.fetched, url)
	return m.pages[url]
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.getFunc(ctx, url)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

// memoryBackend is a map-backed Cache
type memoryBackend struct {
	items map[string][]byte
}

func (m *memoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.items[key]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.items[key] = value
	return nil
}

func (m *memoryBackend) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}

// nopLogger is a mock implementation of the Logger interface
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{}) {}
func (nopLogger) Warn(msg string, fields map[string]interface{}) {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
