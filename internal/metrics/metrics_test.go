package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/bid-packages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bid-packages/"+id, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/bid-packages/{id}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestDomainCountersRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "test")

	m.BidsSubmitted.Inc()
	m.PackagesAwarded.Inc()
	m.InvitesCreated.Add(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BidsSubmitted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.InvitesCreated))

	n, err := testutil.GatherAndCount(reg, "test_bids_submitted_total", "test_bid_packages_awarded_total", "test_invites_created_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMiddlewareLabelsUnmatchedRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {})

	for _, p := range []string{"/wp-admin", "/.env", "/random/123"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestsTotal))
}
