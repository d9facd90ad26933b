// Package finmarket reads currency rate archives from finmarket.ru.
package finmarket

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/htmlpage"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/core/ports/scrapers"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/shopspring/decimal"
)

const (
	tableSelector = "table.karramba"
	rowDateLayout = "02.01.2006"

	// archiveID selects the central bank rate archive page.
	archiveID = "10148"
)

// Client fetches per-currency rate archives.
type Client struct {
	pages   *htmlpage.Fetcher
	baseURL *url.URL
}

var _ scrapers.CurrencyHistoryFetcher = (*Client)(nil)

// NewClient creates a client for the archive page at baseURL.
func NewClient(pages *htmlpage.Fetcher, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid history source URL %q: %w", baseURL, err)
	}
	return &Client{pages: pages, baseURL: u}, nil
}

// HistoryURL builds the archive request for code over [start, end].
func (c *Client) HistoryURL(code int, start, end time.Time) string {
	q := url.Values{}
	q.Set("id", archiveID)
	q.Set("pv", "1")
	q.Set("cur", strconv.Itoa(code))
	q.Set("bd", strconv.Itoa(start.Day()))
	q.Set("bm", strconv.Itoa(int(start.Month())))
	q.Set("by", strconv.Itoa(start.Year()))
	q.Set("ed", strconv.Itoa(end.Day()))
	q.Set("em", strconv.Itoa(int(end.Month())))
	q.Set("ey", strconv.Itoa(end.Year()))
	q.Set("x", "11")
	q.Set("y", "8")

	u := *c.baseURL
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchHistory returns the archive rows for code in page order. Rows with an
// unparseable date or value are skipped and counted.
func (c *Client) FetchHistory(ctx context.Context, code int, start, end time.Time) ([]domain.RawPoint, error) {
	logger := logctx.FromContext(ctx)
	pageURL := c.HistoryURL(code, start, end)

	doc, err := c.pages.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	rows, err := htmlpage.TableRows(doc, tableSelector)
	if err != nil {
		return nil, err
	}

	points := make([]domain.RawPoint, 0, len(rows))
	var malformed int
	for _, cells := range rows {
		p, ok := parseRow(cells)
		if !ok {
			malformed++
			continue
		}
		points = append(points, p)
	}

	if malformed > 0 {
		logger.Warn("Skipped malformed history rows", slog.Int("code", code), slog.Int("rows", malformed))
	}
	logger.Debug("History table parsed", slog.Int("code", code), slog.Int("points", len(points)))
	return points, nil
}

// parseRow reads the date from the first cell and the rate from the third.
func parseRow(cells []string) (domain.RawPoint, bool) {
	if len(cells) < 3 {
		return domain.RawPoint{}, false
	}
	date, err := time.Parse(rowDateLayout, cells[0])
	if err != nil {
		return domain.RawPoint{}, false
	}
	value, err := parseValue(cells[2])
	if err != nil {
		return domain.RawPoint{}, false
	}
	return domain.RawPoint{Date: date, Value: value}, true
}

// parseValue accepts "1 234,5678" style numbers with a comma decimal separator.
func parseValue(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
