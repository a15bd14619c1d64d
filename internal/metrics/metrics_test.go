package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveLoad(nil)
	m.ObserveLoad(errors.New("boom"))
	m.ObserveLoad(errors.New("boom"))
	m.ObserveView(SurfaceHTML)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.views.WithLabelValues(SurfaceHTML)))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `postlist_loads_total{result="failure"} 2`)
	assert.Contains(t, string(body), `postlist_views_total{surface="html"} 1`)
}
