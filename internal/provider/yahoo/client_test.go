package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScanner/internal/provider"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, UserAgent: "scanner-test", Timeout: 2 * time.Second})
}

func TestFetchDailyCloses(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/NVDA", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "3mo", r.URL.Query().Get("range"))
		assert.Equal(t, "scanner-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		// out of order, with a null close
		_, _ = w.Write([]byte(`{"chart":{"result":[{"timestamp":[300,100,200,400],
			"indicators":{"quote":[{"close":[3.5,1.25,null,4]}]}}],"error":null}}`))
	})

	closes, err := c.FetchDailyCloses(context.Background(), "NVDA", 90)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25, 3.5, 4}, closes)
}

func TestFetchDailyClosesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})

	_, err := c.FetchDailyCloses(context.Background(), "NOPE", 90)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not Found")
	assert.NotErrorIs(t, err, provider.ErrNoData)
}

func TestFetchDailyClosesServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchDailyCloses(context.Background(), "NVDA", 90)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchDailyClosesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chart":{"result":[{"timestamp":[1,2],"indicators":{"quote":[{"close":[null,null]}]}}],"error":null}}`))
	})

	_, err := c.FetchDailyCloses(context.Background(), "NVDA", 90)
	assert.ErrorIs(t, err, provider.ErrNoData)
}

func TestFetchDailyClosesHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchDailyCloses(ctx, "NVDA", 90)
	assert.Error(t, err)
}

func TestRangeFor(t *testing.T) {
	tests := map[int]string{
		1:    "5d",
		30:   "1mo",
		31:   "3mo",
		90:   "3mo",
		91:   "6mo",
		365:  "1y",
		700:  "2y",
		1000: "5y",
		3650: "10y",
	}
	for days, want := range tests {
		assert.Equal(t, want, RangeFor(days), "days=%d", days)
	}
}
