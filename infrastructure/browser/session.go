// ABOUTME: Colly-backed browsing sessions that sign in with a form post
// ABOUTME: Cookies from the sign-in flow carry over to every later navigation

package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
)

// LoginSelectors locate the sign-in controls
type LoginSelectors struct {
	Wrapper  string
	Username string
	Password string
	Submit   string
}

// DefaultLoginSelectors returns the selectors of the source's sign-in page
func DefaultLoginSelectors() LoginSelectors {
	return LoginSelectors{
		Wrapper:  "#loginFormWrapper",
		Username: "#username",
		Password: "#password",
		Submit:   "#gSignInButton",
	}
}

// Config holds session settings
type Config struct {
	SignInURL      string
	UserAgent      string
	LoginTimeout   time.Duration
	ElementTimeout time.Duration
	Login          LoginSelectors
}

// Provider opens signed-in sessions
type Provider struct {
	cfg    Config
	logger interfaces.Logger
}

// NewProvider creates a session provider. Zero timeouts default to 30s.
func NewProvider(cfg Config, logger interfaces.Logger) *Provider {
	if cfg.LoginTimeout <= 0 {
		cfg.LoginTimeout = 30 * time.Second
	}
	if cfg.ElementTimeout <= 0 {
		cfg.ElementTimeout = 30 * time.Second
	}
	if cfg.Login == (LoginSelectors{}) {
		cfg.Login = DefaultLoginSelectors()
	}
	return &Provider{cfg: cfg, logger: logger}
}

// Open loads the sign-in page, checks the sign-in controls are present and
// posts the enclosing form with the credentials filled in.
func (p *Provider) Open(ctx context.Context, creds domain.Credentials) (interfaces.Session, error) {
	if !creds.IsComplete() {
		return nil, &apperrors.AuthenticationError{Reason: "username and password are required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, &apperrors.AuthenticationError{Reason: "cancelled", Err: err}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	c := colly.NewCollector(
		colly.UserAgent(p.cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.WithTransport(transport)
	c.SetRequestTimeout(p.cfg.LoginTimeout)

	s := &Session{
		collector: c,
		transport: transport,
		logger:    p.logger,
	}
	c.OnResponse(func(r *colly.Response) {
		s.last = r
	})
	c.OnError(func(r *colly.Response, err error) {
		s.last = r
	})

	signIn, err := s.load(func() error { return c.Visit(p.cfg.SignInURL) }, p.cfg.SignInURL)
	if err != nil {
		s.Close()
		return nil, &apperrors.AuthenticationError{Reason: "sign-in page unavailable", Err: err}
	}

	form, err := p.loginForm(signIn, creds)
	if err != nil {
		s.Close()
		return nil, err
	}

	p.logger.Debug("Submitting sign-in form", map[string]interface{}{
		"action":   form.action,
		"username": creds.Username,
	})

	landing, err := s.load(func() error { return c.Post(form.action, form.fields) }, form.action)
	if err != nil {
		s.Close()
		return nil, &apperrors.AuthenticationError{Reason: "sign-in request failed", Err: err}
	}
	if landing.has(p.cfg.Login.Wrapper) && landing.has(p.cfg.Login.Password) {
		s.Close()
		return nil, &apperrors.AuthenticationError{Reason: "credentials rejected"}
	}

	c.SetRequestTimeout(p.cfg.ElementTimeout)
	return s, nil
}

type loginForm struct {
	action string
	fields map[string]string
}

// loginForm fills the form around the sign-in controls, keeping its
// hidden inputs.
func (p *Provider) loginForm(doc *Document, creds domain.Credentials) (*loginForm, error) {
	sel := p.cfg.Login
	for _, required := range []string{sel.Wrapper, sel.Username, sel.Password, sel.Submit} {
		if !doc.has(required) {
			return nil, &apperrors.AuthenticationError{Reason: "sign-in page is missing " + required}
		}
	}

	username := doc.sel.Find(sel.Username).First()
	password := doc.sel.Find(sel.Password).First()

	form := username.Closest("form")
	if form.Length() == 0 {
		form = doc.sel.Find(sel.Wrapper).Find("form").First()
	}
	if form.Length() == 0 {
		return nil, &apperrors.AuthenticationError{Reason: "sign-in controls are not inside a form"}
	}

	fields := make(map[string]string)
	form.Find("input[type=hidden]").Each(func(_ int, in *goquery.Selection) {
		if name, ok := in.Attr("name"); ok && name != "" {
			fields[name] = in.AttrOr("value", "")
		}
	})
	fields[fieldName(username, "username")] = creds.Username
	fields[fieldName(password, "password")] = creds.Password

	submit := doc.sel.Find(sel.Submit).First()
	if name, ok := submit.Attr("name"); ok && name != "" {
		fields[name] = submit.AttrOr("value", "")
	}

	action := strings.TrimSpace(form.AttrOr("action", ""))
	return &loginForm{action: resolve(doc.URL(), action), fields: fields}, nil
}

// fieldName prefers the input's name, then its id
func fieldName(in *goquery.Selection, fallback string) string {
	if name, ok := in.Attr("name"); ok && name != "" {
		return name
	}
	if id, ok := in.Attr("id"); ok && id != "" {
		return id
	}
	return fallback
}

// resolve makes ref absolute against base; an empty ref posts back to base
func resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return b.ResolveReference(r).String()
}

// Session is a signed-in browsing context
type Session struct {
	collector *colly.Collector
	transport *http.Transport
	logger    interfaces.Logger
	last      *colly.Response
	closed    bool
}

// Navigate loads pageURL. A 404 is a NotFoundError and an expired wait is a
// TimeoutError.
func (s *Session) Navigate(ctx context.Context, pageURL string) (interfaces.Document, error) {
	if s.closed {
		return nil, errors.New("session is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.load(func() error { return s.collector.Visit(pageURL) }, pageURL)
	if err != nil {
		switch {
		case apperrors.StatusCode(err) == http.StatusNotFound:
			return nil, &apperrors.NotFoundError{Resource: "page", ID: pageURL}
		case isTimeout(err):
			return nil, &apperrors.TimeoutError{Operation: "navigate", URL: pageURL}
		default:
			return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
		}
	}

	s.logger.Debug("Loaded page", map[string]interface{}{
		"url":         pageURL,
		"final_url":   doc.URL(),
		"status_code": s.last.StatusCode,
	})
	return doc, nil
}

// Close releases idle connections. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.transport.CloseIdleConnections()
	return nil
}

// load runs one collector request and parses what came back
func (s *Session) load(request func() error, target string) (*Document, error) {
	s.last = nil
	err := request()
	resp := s.last

	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, &apperrors.FetchError{URL: target, StatusCode: status, Err: err}
	}
	if resp == nil {
		return nil, &apperrors.FetchError{URL: target, Err: errors.New("no response")}
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return NewDocument(finalURL, bytes.NewReader(resp.Body))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
