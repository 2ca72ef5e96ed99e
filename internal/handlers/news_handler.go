package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/interfaces"
	"github.com/ternarybob/scrynt/internal/models"
)

// NewsHandler serves the news endpoints.
type NewsHandler struct {
	news   interfaces.NewsProvider
	logger arbor.ILogger
}

// NewNewsHandler creates a news handler.
func NewNewsHandler(news interfaces.NewsProvider, logger arbor.ILogger) *NewsHandler {
	return &NewsHandler{
		news:   news,
		logger: logger,
	}
}

// NewsResponse is the article list envelope.
type NewsResponse struct {
	Data  []models.ArticleRecord `json:"data"`
	Count int                    `json:"count"`
}

// LatestHandler handles GET /api/news/latest.
func (h *NewsHandler) LatestHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	articles := h.news.Latest(r.Context())
	if articles == nil {
		articles = []models.ArticleRecord{}
	}

	WriteJSON(w, http.StatusOK, NewsResponse{
		Data:  articles,
		Count: len(articles),
	})
}
