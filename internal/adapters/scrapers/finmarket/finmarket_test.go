package finmarket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/finmarket"
	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/htmlpage"
	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const archivePage = `<html><head><meta charset="windows-1251"></head><body>
<table class="karramba">
<tr><th>Дата</th><th>Кол-во</th><th>Курс</th><th>Изменение</th></tr>
<tr><td>10.01.2023</td><td>1</td><td>68,8665</td><td>+0,1</td></tr>
<tr><td>11.01.2023</td><td>1</td><td>69,1100</td><td>+0,2</td></tr>
<tr><td>нет данных</td><td>1</td><td>69,2</td><td></td></tr>
<tr><td>12.01.2023</td><td>100</td><td>1 234,5</td><td></td></tr>
<tr><td>13.01.2023</td><td>1</td><td>н/д</td><td></td></tr>
</table>
</body></html>`

const headerOnlyPage = `<html><body><table class="karramba">
<tr><th>Дата</th><th>Кол-во</th><th>Курс</th><th>Изменение</th></tr>
</table></body></html>`

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHistoryURL(t *testing.T) {
	client, err := finmarket.NewClient(htmlpage.NewFetcher(), "https://www.finmarket.ru/currency/rates/")
	require.NoError(t, err)

	raw := client.HistoryURL(52148, day(2023, 1, 10), day(2024, 2, 5))
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "www.finmarket.ru", u.Host)
	assert.Equal(t, "/currency/rates/", u.Path)
	q := u.Query()
	for key, want := range map[string]string{
		"id": "10148", "pv": "1", "cur": "52148",
		"bd": "10", "bm": "1", "by": "2023",
		"ed": "5", "em": "2", "ey": "2024",
	} {
		assert.Equal(t, want, q.Get(key), "query parameter %s", key)
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := finmarket.NewClient(htmlpage.NewFetcher(), "://bad")
	assert.Error(t, err)
}

func TestFetchHistory(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String(archivePage)
	require.NoError(t, err)

	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	client, err := finmarket.NewClient(htmlpage.NewFetcher(), srv.URL)
	require.NoError(t, err)

	points, err := client.FetchHistory(context.Background(), 52148, day(2023, 1, 10), day(2023, 1, 13))
	require.NoError(t, err)

	want := []domain.RawPoint{
		{Date: day(2023, 1, 10), Value: 68.8665},
		{Date: day(2023, 1, 11), Value: 69.11},
		{Date: day(2023, 1, 12), Value: 1234.5},
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("FetchHistory mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "52148", gotQuery.Get("cur"))
	assert.Equal(t, "13", gotQuery.Get("ed"))
}

func TestFetchHistory_HeaderOnlyIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(headerOnlyPage))
	}))
	defer srv.Close()

	client, err := finmarket.NewClient(htmlpage.NewFetcher(), srv.URL)
	require.NoError(t, err)

	points, err := client.FetchHistory(context.Background(), 52148, day(2023, 1, 10), day(2023, 1, 13))
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestFetchHistory_MissingTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>no archive</body></html>"))
	}))
	defer srv.Close()

	client, err := finmarket.NewClient(htmlpage.NewFetcher(), srv.URL)
	require.NoError(t, err)

	_, err = client.FetchHistory(context.Background(), 52148, day(2023, 1, 10), day(2023, 1, 13))
	assert.ErrorIs(t, err, apperrors.ErrParse)
}
