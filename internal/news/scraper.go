package news

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/models"
)

const (
	// cardContainerSelector matches the current article card layout.
	cardContainerSelector = `div[class*="gap-4 border-gray-300 bg-default p-4"]`

	// flexContainerSelector matches the older flex-column layout still
	// served on some pages.
	flexContainerSelector = `div[class*="flex flex-col border-gray-300"]`

	// DefaultMaxArticles caps how many card-layout articles are parsed.
	DefaultMaxArticles = 8
)

// backgroundImagePattern extracts the URL from an inline
// background-image style.
var backgroundImagePattern = regexp.MustCompile(`url\((.*?)\)`)

// ScrapeArticles parses rendered news page HTML into article records.
// The layout is detected from the container class signature: the card
// layout is preferred, the flex layout is the legacy fallback. A
// container that cannot be parsed is skipped; parsing never aborts the
// page.
func ScrapeArticles(html string, maxArticles int, logger arbor.ILogger) ([]models.ArticleRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse news page: %w", err)
	}

	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}

	articles := []models.ArticleRecord{}

	cards := doc.Find(cardContainerSelector)
	if cards.Length() > 0 {
		cards.EachWithBreak(func(i int, s *goquery.Selection) bool {
			if i >= maxArticles {
				return false
			}
			rec, err := parseCard(s)
			if err != nil {
				if logger != nil {
					logger.Debug().
						Int("container", i).
						Err(err).
						Msg("Skipping article container")
				}
				return true
			}
			articles = append(articles, rec)
			return true
		})
		return articles, nil
	}

	doc.Find(flexContainerSelector).Each(func(i int, s *goquery.Selection) {
		articles = append(articles, parseFlex(s))
	})

	return articles, nil
}

// parseCard extracts an article from a card-layout container. The
// title link is required; everything else degrades to empty strings.
func parseCard(s *goquery.Selection) (models.ArticleRecord, error) {
	link := s.Find("h3 a").First()
	if link.Length() == 0 {
		return models.ArticleRecord{}, fmt.Errorf("missing title link")
	}

	timestamp, source := splitTimestampSource(
		strings.TrimSpace(s.Find(`div[class*="text-faded"]`).First().Text()),
	)

	return models.ArticleRecord{
		Title:       strings.TrimSpace(link.Text()),
		URL:         link.AttrOr("href", ""),
		ImageURL:    s.Find("img").First().AttrOr("src", ""),
		Description: strings.TrimSpace(s.Find(`p[class*="overflow-auto"]`).First().Text()),
		Timestamp:   timestamp,
		Source:      source,
	}, nil
}

// parseFlex extracts an article from a legacy flex-layout container.
// Every element is optional, so parsing cannot fail.
func parseFlex(s *goquery.Selection) models.ArticleRecord {
	timestamp, source := splitTimestampSource(
		strings.TrimSpace(s.Find(`div[class*="text-faded"]`).First().Text()),
	)

	return models.ArticleRecord{
		Title:     strings.TrimSpace(s.Find(`h3[class*="text-xl font-bold"]`).First().Text()),
		URL:       s.Find("a").First().AttrOr("href", ""),
		ImageURL:  backgroundImageURL(s.Find(`div[class*="group relative block"]`).First().AttrOr("style", "")),
		Timestamp: timestamp,
		Source:    source,
	}
}

// splitTimestampSource splits a "2 hours ago - Reuters" style line into
// its parts. Only a single separator is trusted; lines with none or
// several become the timestamp wholesale with an empty source.
func splitTimestampSource(meta string) (timestamp, source string) {
	parts := strings.Split(meta, " - ")
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(meta), ""
}

// backgroundImageURL pulls the URL out of an inline background-image
// style, stripping surrounding quotes.
func backgroundImageURL(style string) string {
	m := backgroundImagePattern.FindStringSubmatch(style)
	if len(m) < 2 {
		return ""
	}
	return strings.Trim(m[1], `'"`)
}
