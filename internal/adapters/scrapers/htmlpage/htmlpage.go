// Package htmlpage downloads upstream HTML pages and extracts their tables.
//
// Pages are decoded through the charset they declare, so sources that still
// serve windows-1251 come out as UTF-8 text.
package htmlpage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// defaultTimeout bounds a single page request when no client is supplied.
const defaultTimeout = 30 * time.Second

// Fetcher retrieves and parses HTML documents.
type Fetcher struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithRateLimit throttles requests to perSecond with a burst of one.
func WithRateLimit(perSecond float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewFetcher creates a new page fetcher.
func NewFetcher(options ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// Fetch downloads pageURL and parses it. Transport failures and non-2xx answers
// wrap apperrors.ErrFetch; undecodable bodies wrap apperrors.ErrParse.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: waiting to request %s: %w", apperrors.ErrFetch, pageURL, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", apperrors.ErrFetch, err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", apperrors.ErrFetch, pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", apperrors.ErrFetch, pageURL, resp.StatusCode)
	}
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", apperrors.ErrParse, pageURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", apperrors.ErrParse, pageURL, err)
	}
	return doc, nil
}

// TableRows returns the trimmed <td> texts of every row of the first table
// matching selector, without the header row. A missing table wraps
// apperrors.ErrParse; a header-only table yields no rows.
func TableRows(doc *goquery.Document, selector string) ([][]string, error) {
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no element matches %q", apperrors.ErrParse, selector)
	}
	var rows [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		rows = append(rows, tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		}))
	})
	return rows, nil
}
