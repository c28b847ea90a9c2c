package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Attempts(t *testing.T) {
	r := NewRegistry()

	r.AttemptStarted("notifications", KindForeground)
	r.AttemptStarted("notifications", KindRetry)
	r.AttemptStarted("notifications", KindRetry)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.attempts.WithLabelValues("notifications", KindForeground)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.attempts.WithLabelValues("notifications", KindRetry)))
}

func TestRegistry_ResultsAndDuration(t *testing.T) {
	r := NewRegistry()

	r.AttemptFinished("applications", OutcomeSuccess, 20*time.Millisecond)
	r.AttemptFinished("applications", OutcomeFailure, 30*time.Millisecond)
	r.AttemptFinished("applications", OutcomeDiscarded, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.results.WithLabelValues("applications", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.results.WithLabelValues("applications", OutcomeDiscarded)))
	// discarded attempts are not timed
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRegistry_RetryCountAndDrafts(t *testing.T) {
	r := NewRegistry()

	r.RetryCount("notifications", 2)
	r.RetryCount("notifications", 0)
	r.DraftWritten(true)
	r.DraftWritten(false)
	r.DraftWritten(true)

	assert.Equal(t, 0.0, testutil.ToFloat64(r.retries.WithLabelValues("notifications")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.draftWrites.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.draftWrites.WithLabelValues("error")))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.AttemptStarted("internships", KindSilent)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `intern_match_sync_attempts_total{kind="silent",session="internships"} 1`))
}

func TestNop(t *testing.T) {
	n := Nop()
	n.AttemptStarted("x", KindSilent)
	n.AttemptFinished("x", OutcomeSuccess, time.Second)
	n.RetryCount("x", 1)
	n.DraftWritten(false)
}
