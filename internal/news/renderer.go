package news

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/common"
)

// articleMarkerSelector is the element the renderer waits for before
// capturing the page; it appears once client-side scripts have
// populated the article list.
const articleMarkerSelector = `div[class*="gap-4 border-gray-300"]`

// DefaultRenderTimeout bounds a single page render.
const DefaultRenderTimeout = 60 * time.Second

// Renderer loads pages in headless Chrome so client-rendered content is
// present in the captured HTML. Each render uses a fresh allocator and
// browser context, torn down on every exit path.
type Renderer struct {
	logger    arbor.ILogger
	userAgent string
	timeout   time.Duration
	headless  bool
}

// NewRenderer creates a page renderer from news configuration.
func NewRenderer(cfg common.NewsConfig, userAgent string, logger arbor.ILogger) *Renderer {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}

	return &Renderer{
		logger:    logger,
		userAgent: userAgent,
		timeout:   timeout,
		headless:  cfg.Headless,
	}
}

// RenderHTML navigates to the URL, waits for the article list to become
// visible, and returns the full page HTML.
func (r *Renderer) RenderHTML(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.userAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	renderCtx, cancel := context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	if r.logger != nil {
		r.logger.Debug().
			Str("url", url).
			Dur("timeout", r.timeout).
			Msg("Rendering news page")
	}

	var html string
	err := chromedp.Run(renderCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(articleMarkerSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}

	return html, nil
}
