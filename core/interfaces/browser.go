// ABOUTME: Browsing interfaces for authenticated page access
// ABOUTME: Element lookups return found/absent results instead of errors

package interfaces

import (
	"context"

	"github.com/xiajiun/article-scraping/core/domain"
)

// SessionProvider opens authenticated browsing sessions
type SessionProvider interface {
	// Open signs in with the given credentials. It fails with an
	// AuthenticationError when the sign-in controls are missing or a wait
	// times out.
	Open(ctx context.Context, creds domain.Credentials) (Session, error)
}

// Session is an authenticated browsing context. It must be closed on every
// exit path.
type Session interface {
	// Navigate loads a page. It fails with NotFoundError or TimeoutError.
	Navigate(ctx context.Context, url string) (Document, error)

	// Close releases the browsing context
	Close() error
}

// Node is anything that can be searched with a selector
type Node interface {
	// First returns the first match for selector, or false if none exists
	First(selector string) (Element, bool)

	// All returns every match for selector in document order
	All(selector string) []Element
}

// Document is a loaded, queryable page
type Document interface {
	Node

	// URL is the final location of the page after redirects
	URL() string
}

// Element is a single node of a Document
type Element interface {
	Node

	// Text returns the visible text with whitespace collapsed
	Text() string

	// Attr returns an attribute value and whether it is present
	Attr(name string) (string, bool)
}
