// Package scraper reads crop prices from an HTML price board.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"farmbot/entities"
)

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

var ErrNoTable = errors.New("no price table found")

type Scraper struct {
	url      string
	maxBytes int64
	httpc    *http.Client
}

func New(url string) *Scraper {
	return &Scraper{url: url, maxBytes: 1_500_000, httpc: &http.Client{Timeout: 20 * time.Second}}
}

// Fetch downloads the board and parses its first table. District and date are
// left for the caller.
func (s *Scraper) Fetch(ctx context.Context) ([]entities.MarketPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price board: status %d", resp.StatusCode)
	}
	if resp.ContentLength > s.maxBytes {
		return nil, fmt.Errorf("price board too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(b))
}

// Parse reads crop, price and change cells from the rows of the first table.
// Header rows and rows without a crop or price are skipped.
func Parse(r io.Reader) ([]entities.MarketPrice, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var out []entities.MarketPrice
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.Join(strings.Fields(td.Text()), " "))
		})
		if len(cells) < 2 || cells[0] == "" || cells[1] == "" {
			return
		}
		change := "0%"
		if len(cells) > 2 && cells[2] != "" {
			change = cells[2]
		}
		out = append(out, entities.MarketPrice{
			Crop:       cells[0],
			PricePerKg: cells[1],
			Change:     change,
			Trend:      Trend(change),
		})
	})
	return out, nil
}

// Trend classifies a change such as "+15%", "-8%" or "0%".
func Trend(change string) string {
	s := strings.TrimSpace(change)
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	switch {
	case err != nil:
		return TrendStable
	case v > 0:
		return TrendUp
	case v < 0:
		return TrendDown
	}
	return TrendStable
}
