package interfaces

import (
	"context"

	"github.com/ternarybob/scrynt/internal/models"
)

// PageRenderer loads a URL in a browser and returns the rendered HTML
// after client-side scripts have populated the page.
type PageRenderer interface {
	RenderHTML(ctx context.Context, url string) (string, error)
}

// NewsProvider returns the latest scraped articles, serving cached
// results where possible.
type NewsProvider interface {
	Latest(ctx context.Context) []models.ArticleRecord
}
