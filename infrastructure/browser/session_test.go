package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

const signInPage = `<html><body>
<div id="loginFormWrapper">
  <form action="/login" method="post">
    <input type="hidden" name="csrf" value="token-123">
    <input id="username" name="user">
    <input id="password" type="password">
    <button id="gSignInButton" type="submit">Sign in</button>
  </form>
</div>
</body></html>`

const articlePage = `<html><body>
<h1 data-en-heading="AI in Radiology">AI in Radiology</h1>
<div class="p-xsmall">Research | Insight | March 5, 2024</div>
<a href="/articles/ai">Read</a>
</body></html>`

type siteOptions struct {
	signIn       string
	delay        time.Duration
	emptyLanding bool

	mu     sync.Mutex
	posted map[string]string
}

func (o *siteOptions) field(name string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.posted[name]
}

func newSite(t *testing.T, opts *siteOptions) *httptest.Server {
	t.Helper()
	if opts.signIn == "" {
		opts.signIn = signInPage
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/signin", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(opts.signIn))
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		r.ParseForm()
		opts.mu.Lock()
		opts.posted = map[string]string{}
		for k := range r.PostForm {
			opts.posted[k] = r.PostForm.Get(k)
		}
		opts.mu.Unlock()
		if r.PostForm.Get("user") != "alice" || r.PostForm.Get("password") != "secret" {
			w.Write([]byte(signInPage))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
		if opts.emptyLanding {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/home", http.StatusFound)
	})
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Welcome</body></html>"))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "ok" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		w.Write([]byte(articlePage))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(opts.delay)
		w.Write([]byte("<html><body>late</body></html>"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestProvider(server *httptest.Server, elementTimeout time.Duration) *Provider {
	return NewProvider(Config{
		SignInURL:      server.URL + "/signin",
		UserAgent:      "test-agent",
		LoginTimeout:   2 * time.Second,
		ElementTimeout: elementTimeout,
	}, nopLogger{})
}

var alice = domain.Credentials{Username: "alice", Password: "secret"}

func TestProvider_OpenAndNavigate(t *testing.T) {
	opts := &siteOptions{}
	server := newSite(t, opts)
	provider := newTestProvider(server, 2*time.Second)

	session, err := provider.Open(context.Background(), alice)
	require.NoError(t, err)
	defer session.Close()

	assert.Equal(t, "token-123", opts.field("csrf"), "hidden inputs should be posted")
	assert.Equal(t, "alice", opts.field("user"), "username posts under its name attribute")
	assert.Equal(t, "secret", opts.field("password"), "password falls back to its id")

	doc, err := session.Navigate(context.Background(), server.URL+"/article")
	require.NoError(t, err)

	heading, ok := doc.First("h1")
	require.True(t, ok)
	title, ok := heading.Attr("data-en-heading")
	assert.True(t, ok)
	assert.Equal(t, "AI in Radiology", title)

	meta, ok := doc.First(".p-xsmall")
	require.True(t, ok)
	assert.Equal(t, "Research | Insight | March 5, 2024", meta.Text())
}

func TestProvider_Open_EmptyLandingPage(t *testing.T) {
	server := newSite(t, &siteOptions{emptyLanding: true})
	provider := newTestProvider(server, time.Second)

	session, err := provider.Open(context.Background(), alice)
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Navigate(context.Background(), server.URL+"/article")
	assert.NoError(t, err)
}

func TestProvider_Open_RejectedCredentials(t *testing.T) {
	server := newSite(t, &siteOptions{})
	provider := newTestProvider(server, time.Second)

	_, err := provider.Open(context.Background(), domain.Credentials{Username: "alice", Password: "wrong"})

	assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
}

func TestProvider_Open_MissingControls(t *testing.T) {
	page := strings.Replace(signInPage, `id="gSignInButton"`, `id="other"`, 1)
	server := newSite(t, &siteOptions{signIn: page})
	provider := newTestProvider(server, time.Second)

	_, err := provider.Open(context.Background(), alice)

	require.True(t, apperrors.IsAuthentication(err), "got %v", err)
	assert.Contains(t, err.Error(), "#gSignInButton")
}

func TestProvider_Open_IncompleteCredentials(t *testing.T) {
	provider := NewProvider(Config{SignInURL: "http://127.0.0.1:1/signin"}, nopLogger{})

	_, err := provider.Open(context.Background(), domain.Credentials{Username: "alice"})

	assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
}

func TestProvider_Open_SignInPageUnreachable(t *testing.T) {
	server := newSite(t, &siteOptions{})
	url := server.URL
	server.Close()

	provider := NewProvider(Config{SignInURL: url + "/signin", LoginTimeout: time.Second}, nopLogger{})
	_, err := provider.Open(context.Background(), alice)

	assert.True(t, apperrors.IsAuthentication(err), "got %v", err)
}

func TestSession_Navigate_NotFound(t *testing.T) {
	server := newSite(t, &siteOptions{})
	session, err := newTestProvider(server, time.Second).Open(context.Background(), alice)
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Navigate(context.Background(), server.URL+"/missing")

	assert.True(t, apperrors.IsNotFound(err), "got %v", err)
}

func TestSession_Navigate_Timeout(t *testing.T) {
	server := newSite(t, &siteOptions{delay: 300 * time.Millisecond})
	session, err := newTestProvider(server, 50*time.Millisecond).Open(context.Background(), alice)
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Navigate(context.Background(), server.URL+"/slow")

	assert.True(t, apperrors.IsTimeout(err), "got %v", err)
}

func TestSession_Navigate_AfterClose(t *testing.T) {
	server := newSite(t, &siteOptions{})
	session, err := newTestProvider(server, time.Second).Open(context.Background(), alice)
	require.NoError(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())

	_, err = session.Navigate(context.Background(), server.URL+"/article")
	assert.Error(t, err)
}

func TestSession_Navigate_CancelledContext(t *testing.T) {
	server := newSite(t, &siteOptions{})
	session, err := newTestProvider(server, time.Second).Open(context.Background(), alice)
	require.NoError(t, err)
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = session.Navigate(ctx, server.URL+"/article")
	assert.ErrorIs(t, err, context.Canceled)
}
