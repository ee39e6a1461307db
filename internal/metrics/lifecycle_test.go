package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctrack/internal/model"
)

func TestLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := NewLifecycle(reg)
	require.NoError(t, err)

	l.Registered(model.DocTypeProposal, model.BranchAdmin)
	l.Registered(model.DocTypeProposal, model.BranchAdmin)
	l.Transitioned(model.StatusRejected)
	l.Searched(true)
	l.Searched(false)
	l.Searched(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(l.registered.WithLabelValues("PISHNEHAD", "ADMIN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.transitions.WithLabelValues("REJECTED")))
	assert.Equal(t, 2.0, testutil.ToFloat64(l.searches.WithLabelValues("miss")))
}

func TestLifecycle_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewLifecycle(reg)
	require.NoError(t, err)

	_, err = NewLifecycle(reg)
	assert.Error(t, err)
}

func TestLifecycle_NilIsNoop(t *testing.T) {
	var l *Lifecycle
	assert.NotPanics(t, func() {
		l.Registered(model.DocTypeLetter, model.BranchAdmin)
		l.Transitioned(model.StatusApproved)
		l.Searched(true)
	})
}
