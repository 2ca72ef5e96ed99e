package models

// ArticleRecord is one scraped news article. Missing elements are
// represented as empty strings rather than errors.
type ArticleRecord struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
}
