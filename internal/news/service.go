package news

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/common"
	"github.com/ternarybob/scrynt/internal/interfaces"
	"github.com/ternarybob/scrynt/internal/models"
)

// DefaultCacheTTL is how long a scraped article list stays fresh.
const DefaultCacheTTL = 6 * time.Hour

// Service serves the latest news articles with a TTL cache. A fetch
// that fails or comes back empty never evicts previously cached
// articles; stale data beats no data.
type Service struct {
	renderer    interfaces.PageRenderer
	logger      arbor.ILogger
	url         string
	maxArticles int
	ttl         time.Duration

	// mu guards articles and fetchedAt only. It is never held across a
	// fetch, so concurrent expired reads may each fetch; the last
	// writer wins.
	mu        sync.Mutex
	articles  []models.ArticleRecord
	fetchedAt time.Time
}

// NewService creates a news service from configuration.
func NewService(renderer interfaces.PageRenderer, cfg common.NewsConfig, logger arbor.ILogger) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Service{
		renderer:    renderer,
		logger:      logger,
		url:         cfg.URL,
		maxArticles: cfg.MaxArticles,
		ttl:         ttl,
	}
}

// Latest returns the current article list: cached when fresh, freshly
// scraped when expired, and the stale cache (or an empty list) when the
// fetch fails or yields nothing.
func (s *Service) Latest(ctx context.Context) []models.ArticleRecord {
	s.mu.Lock()
	if s.articles != nil && time.Since(s.fetchedAt) < s.ttl {
		cached := s.articles
		s.mu.Unlock()

		s.logger.Debug().
			Int("articles", len(cached)).
			Msg("Serving cached news articles")
		return cached
	}
	stale := s.articles
	s.mu.Unlock()

	articles, err := s.fetch(ctx)
	if err != nil || len(articles) == 0 {
		if err != nil {
			s.logger.Warn().
				Err(err).
				Msg("News fetch failed")
		} else {
			s.logger.Warn().Msg("News fetch returned no articles")
		}

		if stale != nil {
			s.logger.Warn().
				Int("articles", len(stale)).
				Msg("Falling back to stale news cache")
			return stale
		}
		return []models.ArticleRecord{}
	}

	s.mu.Lock()
	s.articles = articles
	s.fetchedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info().
		Int("articles", len(articles)).
		Msg("News cache refreshed")

	return articles
}

func (s *Service) fetch(ctx context.Context) ([]models.ArticleRecord, error) {
	html, err := s.renderer.RenderHTML(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return ScrapeArticles(html, s.maxArticles, s.logger)
}
