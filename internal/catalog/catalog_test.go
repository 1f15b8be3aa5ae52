package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaiadaMuhammed/AYN/pkg/httpclient"
)

const feedJSON = `[
  {"id":1,"title":"Leather Jacket","description":"Classic biker jacket","price":200,"discountPercentage":10,"rating":4.5,"stock":5,"brand":"AYN","category":"Men's Fashion","thumbnail":"t1.jpg","images":["1.jpg"],"tags":["black","winter"]},
  {"id":2,"title":"Summer Dress","description":"Light cotton dress","price":80,"discountPercentage":0,"rating":4.8,"stock":12,"brand":"Maiada","category":"Women's Fashion","thumbnail":"t2.jpg","images":["2.jpg"],"tags":["red"],"sizes":["S","M","L"]},
  {"id":3,"title":"Running Shoes","description":"Lightweight trainers","price":120,"discountPercentage":25,"rating":4.1,"stock":0,"brand":"AYN","category":"Men's Fashion","thumbnail":"t3.jpg","images":["3.jpg"],"tags":["white"]}
]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAccessor(t *testing.T, handler http.HandlerFunc) (*Accessor, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(cfg),
		httpclient.DefaultCircuitBreakerConfig("catalog-feed-test-"+t.Name()),
		testLogger(),
	)
	return New(client, srv.URL, testLogger()), srv
}

func loadedAccessor(t *testing.T) *Accessor {
	t.Helper()
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedJSON))
	})
	require.NoError(t, a.Load(context.Background()))
	return a
}

func TestLoadIsIdempotent(t *testing.T) {
	var calls int32
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(feedJSON))
	})

	ctx := context.Background()
	require.NoError(t, a.Load(ctx))
	require.NoError(t, a.Load(ctx))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Len(t, a.All(), 3)
	assert.NoError(t, a.Err())
}

func TestRefreshRefetches(t *testing.T) {
	var calls int32
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(feedJSON))
	})

	ctx := context.Background()
	require.NoError(t, a.Load(ctx))
	require.NoError(t, a.Refresh(ctx))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLoadFailureYieldsEmptySnapshotAndErrorState(t *testing.T) {
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := a.Load(context.Background())
	require.Error(t, err)

	assert.Empty(t, a.All())
	assert.Error(t, a.Err())
	assert.Error(t, a.Ready(context.Background()))
}

func TestLoadMalformedFeed(t *testing.T) {
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not an array"))
	})

	require.Error(t, a.Load(context.Background()))
	assert.Empty(t, a.All())
}

func TestByID(t *testing.T) {
	a := loadedAccessor(t)

	p, ok := a.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Summer Dress", p.Title)

	_, ok = a.ByID(99)
	assert.False(t, ok)
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	a := loadedAccessor(t)

	assert.Len(t, a.ByCategory("men's fashion"), 2)
	assert.Len(t, a.ByCategory("MEN'S FASHION"), 2)
	assert.Empty(t, a.ByCategory("electronics"))
}

func TestByCategorySlug(t *testing.T) {
	a := loadedAccessor(t)

	assert.Len(t, a.ByCategory("men-s-fashion"), 2)
}

func TestSearchMatchesTitleDescriptionBrand(t *testing.T) {
	a := loadedAccessor(t)

	assert.Len(t, a.Search("JACKET"), 1)  // title
	assert.Len(t, a.Search("cotton"), 1)  // description
	assert.Len(t, a.Search("maiada"), 1)  // brand
	assert.Len(t, a.Search("AYN"), 2)     // brand, union across fields
	assert.Empty(t, a.Search("nonsense"))
}

func TestCategoriesUniqueInFeedOrder(t *testing.T) {
	a := loadedAccessor(t)

	cats := a.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Men's Fashion", cats[0].Name)
	assert.Equal(t, "men-s-fashion", cats[0].Slug)
	assert.Equal(t, "Women's Fashion", cats[1].Name)
}

func TestReadyBeforeLoad(t *testing.T) {
	a, _ := newTestAccessor(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Error(t, a.Ready(context.Background()))
}
