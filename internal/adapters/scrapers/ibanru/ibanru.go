// Package ibanru reads the country to currency table published on iban.ru.
package ibanru

import (
	"context"
	"log/slog"

	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/htmlpage"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/core/ports/scrapers"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
)

const tableSelector = "table.table-bordered"

// Client fetches the currency code table.
type Client struct {
	pages   *htmlpage.Fetcher
	pageURL string
}

var _ scrapers.CountryMappingFetcher = (*Client)(nil)

// NewClient creates a client reading the table at pageURL.
func NewClient(pages *htmlpage.Fetcher, pageURL string) *Client {
	return &Client{pages: pages, pageURL: pageURL}
}

// FetchMapping groups countries by the Russian currency name in the second column.
// Currencies outside knownCurrencyNames and rows with fewer than two cells are
// skipped and counted.
func (c *Client) FetchMapping(ctx context.Context, knownCurrencyNames map[string]struct{}) (domain.CountriesByCurrency, error) {
	logger := logctx.FromContext(ctx)

	doc, err := c.pages.Fetch(ctx, c.pageURL)
	if err != nil {
		return nil, err
	}
	rows, err := htmlpage.TableRows(doc, tableSelector)
	if err != nil {
		return nil, err
	}

	mapping := make(domain.CountriesByCurrency)
	seen := make(map[[2]string]struct{})
	var malformed, untracked int
	for _, cells := range rows {
		if len(cells) < 2 || cells[0] == "" || cells[1] == "" {
			malformed++
			continue
		}
		country, currency := cells[0], cells[1]
		if _, ok := knownCurrencyNames[currency]; !ok {
			untracked++
			continue
		}
		key := [2]string{currency, country}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		mapping[currency] = append(mapping[currency], country)
	}

	if malformed > 0 {
		logger.Warn("Skipped malformed country rows", slog.Int("rows", malformed), slog.String("url", c.pageURL))
	}
	logger.Debug("Country table parsed",
		slog.Int("rows", len(rows)),
		slog.Int("currencies", len(mapping)),
		slog.Int("untracked", untracked))
	return mapping, nil
}
