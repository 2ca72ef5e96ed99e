package news

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardContainer(n int) string {
	return fmt.Sprintf(`
<div class="gap-4 border-gray-300 bg-default p-4">
  <img src="https://img.example.com/%d.jpg">
  <h3><a href="https://example.com/article-%d">Article %d</a></h3>
  <p class="overflow-auto">Description %d</p>
  <div class="text-faded">%d hours ago - Source %d</div>
</div>`, n, n, n, n, n, n)
}

func cardPage(containers ...string) string {
	return "<html><body><main>" + strings.Join(containers, "\n") + "</main></body></html>"
}

func TestScrapeArticles_CardLayout(t *testing.T) {
	html := cardPage(cardContainer(1), cardContainer(2))

	articles, err := ScrapeArticles(html, 8, nil)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Article 1", first.Title)
	assert.Equal(t, "https://example.com/article-1", first.URL)
	assert.Equal(t, "https://img.example.com/1.jpg", first.ImageURL)
	assert.Equal(t, "Description 1", first.Description)
	assert.Equal(t, "1 hours ago", first.Timestamp)
	assert.Equal(t, "Source 1", first.Source)
}

func TestScrapeArticles_CapsAtMaxArticles(t *testing.T) {
	containers := make([]string, 10)
	for i := range containers {
		containers[i] = cardContainer(i + 1)
	}

	articles, err := ScrapeArticles(cardPage(containers...), 8, nil)
	require.NoError(t, err)

	require.Len(t, articles, 8)
	assert.Equal(t, "Article 1", articles[0].Title)
	assert.Equal(t, "Article 8", articles[7].Title)
}

func TestScrapeArticles_MalformedContainerSkipped(t *testing.T) {
	malformed := `
<div class="gap-4 border-gray-300 bg-default p-4">
  <p class="overflow-auto">No title link here</p>
</div>`

	html := cardPage(cardContainer(1), cardContainer(2), malformed, cardContainer(4))

	articles, err := ScrapeArticles(html, 8, nil)
	require.NoError(t, err)

	require.Len(t, articles, 3)
	assert.Equal(t, "Article 1", articles[0].Title)
	assert.Equal(t, "Article 2", articles[1].Title)
	assert.Equal(t, "Article 4", articles[2].Title)
}

func TestScrapeArticles_MissingOptionalElements(t *testing.T) {
	html := cardPage(`
<div class="gap-4 border-gray-300 bg-default p-4">
  <h3><a href="https://example.com/bare">Bare Article</a></h3>
</div>`)

	articles, err := ScrapeArticles(html, 8, nil)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Bare Article", articles[0].Title)
	assert.Equal(t, "", articles[0].ImageURL)
	assert.Equal(t, "", articles[0].Description)
	assert.Equal(t, "", articles[0].Timestamp)
	assert.Equal(t, "", articles[0].Source)
}

func TestScrapeArticles_FlexLayout(t *testing.T) {
	html := `<html><body>
<div class="flex flex-col border-gray-300 p-3">
  <a href="https://example.com/legacy-1">
    <div class="group relative block" style="background-image: url('https://img.example.com/legacy-1.jpg')"></div>
  </a>
  <h3 class="text-xl font-bold">Legacy Article</h3>
  <div class="text-faded">3 days ago - Barron's</div>
</div>
</body></html>`

	articles, err := ScrapeArticles(html, 8, nil)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Legacy Article", articles[0].Title)
	assert.Equal(t, "https://example.com/legacy-1", articles[0].URL)
	assert.Equal(t, "https://img.example.com/legacy-1.jpg", articles[0].ImageURL)
	assert.Equal(t, "3 days ago", articles[0].Timestamp)
	assert.Equal(t, "Barron's", articles[0].Source)
}

func TestScrapeArticles_NoContainers(t *testing.T) {
	articles, err := ScrapeArticles("<html><body><p>nothing here</p></body></html>", 8, nil)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestSplitTimestampSource(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantTimestamp string
		wantSource    string
	}{
		{"both parts", "2 hours ago - Reuters", "2 hours ago", "Reuters"},
		{"no separator", "2 hours ago", "2 hours ago", ""},
		{"empty", "", "", ""},
		{"multiple separators keep whole line", "1 day ago - Some - Outlet", "1 day ago - Some - Outlet", ""},
		{"hyphen without spaces not split", "pre-market update", "pre-market update", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timestamp, source := splitTimestampSource(tt.input)
			assert.Equal(t, tt.wantTimestamp, timestamp)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestBackgroundImageURL(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{"single quotes", `background-image: url('https://x.com/a.jpg')`, "https://x.com/a.jpg"},
		{"double quotes", `background-image: url("https://x.com/a.jpg")`, "https://x.com/a.jpg"},
		{"no quotes", `background-image: url(https://x.com/a.jpg)`, "https://x.com/a.jpg"},
		{"no url", `color: red`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backgroundImageURL(tt.style))
		})
	}
}
