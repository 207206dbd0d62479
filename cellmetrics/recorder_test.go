package cellmetrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/celljam/celljam/cellmetrics"
	"github.com/celljam/celljam/cells"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsNotificationRounds(t *testing.T) {
	r := cellmetrics.NewRecorder()
	a := cells.New(1)
	r.Watch("a", a)

	a.SetValue(2)
	a.SetValue(2) // suppressed, no round
	a.SetValue(3)

	expected := strings.NewReader(`
# HELP cells_notifications_total Notification rounds observed per watched cell.
# TYPE cells_notifications_total counter
cells_notifications_total{cell="a"} 2
# HELP cells_watched Cells currently watched by this recorder.
# TYPE cells_watched gauge
cells_watched 1
`)
	err := testutil.GatherAndCompare(r.Registry(), expected,
		"cells_notifications_total", "cells_watched")
	require.NoError(t, err)
}

func TestRecorderDetachStopsCounting(t *testing.T) {
	r := cellmetrics.NewRecorder()
	a := cells.New(1)
	detach := r.Watch("a", a)

	a.SetValue(2)
	detach()
	a.SetValue(3)

	expected := strings.NewReader(`
# HELP cells_notifications_total Notification rounds observed per watched cell.
# TYPE cells_notifications_total counter
cells_notifications_total{cell="a"} 1
# HELP cells_watched Cells currently watched by this recorder.
# TYPE cells_watched gauge
cells_watched 0
`)
	err := testutil.GatherAndCompare(r.Registry(), expected,
		"cells_notifications_total", "cells_watched")
	require.NoError(t, err)

	// a second detach must not drive the gauge negative
	detach()
	gauge := strings.NewReader(`
# HELP cells_watched Cells currently watched by this recorder.
# TYPE cells_watched gauge
cells_watched 0
`)
	err = testutil.GatherAndCompare(r.Registry(), gauge, "cells_watched")
	require.NoError(t, err)
}

func TestRecorderWatchesInvalidationNotJustWrites(t *testing.T) {
	r := cellmetrics.NewRecorder()
	a := cells.New(1)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) * 2
	})
	require.Equal(t, 2, b.Value())
	r.Watch("b", b)

	// the invalidation round and the changed recompute round both count
	a.SetValue(5)
	require.Equal(t, 10, b.Value())

	expected := strings.NewReader(`
# HELP cells_notifications_total Notification rounds observed per watched cell.
# TYPE cells_notifications_total counter
cells_notifications_total{cell="b"} 2
`)
	err := testutil.GatherAndCompare(r.Registry(), expected, "cells_notifications_total")
	require.NoError(t, err)
}

func TestRecorderHandlerServesExposition(t *testing.T) {
	r := cellmetrics.NewRecorder()
	a := cells.New(1)
	r.Watch("a", a)
	a.SetValue(2)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cells_notifications_total{cell="a"} 1`)
	assert.Contains(t, rec.Body.String(), "cells_watched 1")
}
