package app

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/common"
	"github.com/ternarybob/scrynt/internal/handlers"
	"github.com/ternarybob/scrynt/internal/news"
	"github.com/ternarybob/scrynt/internal/provider"
	"github.com/ternarybob/scrynt/internal/screener"
)

// App wires the application dependencies together.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Provider    *provider.Client
	Store       *screener.Store
	Renderer    *news.Renderer
	NewsService *news.Service

	StocksHandler *handlers.StocksHandler
	NewsHandler   *handlers.NewsHandler
	APIHandler    *handlers.APIHandler
}

// New constructs the application graph from configuration.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	timeout := config.Provider.RequestTimeout
	if timeout <= 0 {
		timeout = provider.DefaultTimeout
	}

	client := provider.NewClient(config.Provider.ScreenerURL,
		provider.WithUserAgent(config.Provider.UserAgent),
		provider.WithRateLimit(config.Provider.RateLimit),
		provider.WithHTTPClient(&http.Client{Timeout: timeout}),
		provider.WithLogger(logger),
	)

	store := screener.NewStore(client, logger)

	renderer := news.NewRenderer(config.News, config.Provider.UserAgent, logger)
	newsService := news.NewService(renderer, config.News, logger)

	a := &App{
		Config:      config,
		Logger:      logger,
		Provider:    client,
		Store:       store,
		Renderer:    renderer,
		NewsService: newsService,

		StocksHandler: handlers.NewStocksHandler(store, logger),
		NewsHandler:   handlers.NewNewsHandler(newsService, logger),
		APIHandler:    handlers.NewAPIHandler(logger),
	}

	logger.Info().Msg("Application initialized")

	return a, nil
}

// Close releases application resources. Renderer contexts are created
// per fetch, so there is nothing long-lived to tear down yet.
func (a *App) Close() error {
	a.Logger.Info().Msg("Application closed")
	return nil
}
