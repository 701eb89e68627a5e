package fetcher

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
)

// mockSessionProvider hands out a mockSession or an error
type mockSessionProvider struct {
	openFunc func(ctx context.Context, creds domain.Credentials) (interfaces.Session, error)
}

func (m *mockSessionProvider) Open(ctx context.Context, creds domain.Credentials) (interfaces.Session, error) {
	return m.openFunc(ctx, creds)
}

// mockSession serves fixed markup for every URL
type mockSession struct {
	navigateFunc func(ctx context.Context, url string) (interfaces.Document, error)
	closed       int
	visited      []string
}

func (m *mockSession) Navigate(ctx context.Context, url string) (interfaces.Document, error) {
	m.visited = append(m.visited, url)
	return m.navigateFunc(ctx, url)
}

func (m *mockSession) Close() error {
	m.closed++
	return nil
}

func sessionServing(markup, pageURL string) *mockSession {
	return &mockSession{
		navigateFunc: func(ctx context.Context, url string) (interfaces.Document, error) {
			return newTestDocument(markup, pageURL), nil
		},
	}
}

func providerFor(session interfaces.Session) *mockSessionProvider {
	return &mockSessionProvider{
		openFunc: func(ctx context.Context, creds domain.Credentials) (interfaces.Session, error) {
			return session, nil
		},
	}
}

// testDocument adapts goquery to the Document interface
type testDocument struct {
	testNode
	url string
}

func newTestDocument(markup, pageURL string) *testDocument {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		panic(err)
	}
	return &testDocument{testNode: testNode{sel: doc.Selection}, url: pageURL}
}

func (d *testDocument) URL() string { return d.url }

type testNode struct {
	sel *goquery.Selection
}

func (n testNode) First(selector string) (interfaces.Element, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return testNode{sel: found}, true
}

func (n testNode) All(selector string) []interfaces.Element {
	var out []interfaces.Element
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, testNode{sel: s})
	})
	return out
}

func (n testNode) Text() string {
	return strings.Join(strings.Fields(n.sel.Text()), " ")
}

func (n testNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// memoryBackend is a map-backed Cache
type memoryBackend struct {
	items map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{items: map[string][]byte{}}
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

// logEntry records one logger call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry for assertions
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"debug", msg, fields})
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"info", msg, fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"warn", msg, fields})
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"error", msg, fields})
}

func (l *recordingLogger) count(level string) int {
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
