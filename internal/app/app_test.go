package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/scrynt/internal/common"
)

func TestNew_UsesConfiguredRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data":{"data":{"AAPL":{"price":189.5}}}}`))
	}))
	defer srv.Close()

	config := common.NewDefaultConfig()
	config.Provider.ScreenerURL = srv.URL
	config.Provider.RateLimit = 100
	config.Provider.RequestTimeout = 20 * time.Millisecond

	application, err := New(config, common.GetLogger())
	require.NoError(t, err)

	_, err = application.Provider.Fetch(context.Background())
	assert.Error(t, err)

	config.Provider.RequestTimeout = 5 * time.Second

	application, err = New(config, common.GetLogger())
	require.NoError(t, err)

	records, err := application.Provider.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
