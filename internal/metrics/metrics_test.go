package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-savings/internal/domain"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "rate limit error", Outcome(domain.ErrRateLimitNotMet))
	require.Equal(t, "external failure", Outcome(fmt.Errorf("%w: down", domain.ErrExternalFailure)))
	require.Equal(t, "internal", Outcome(errors.New("boom")))
}

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(operations.WithLabelValues("deposit", "ok"))

	ObserveOperation("deposit", nil)

	require.Equal(t, before+1, testutil.ToFloat64(operations.WithLabelValues("deposit", "ok")))
}

func TestGauges(t *testing.T) {
	SetTotalValueLocked(40)
	require.Equal(t, float64(40), testutil.ToFloat64(totalValueLocked))

	SetTotalShareUnits(7)
	require.Equal(t, float64(7), testutil.ToFloat64(totalShareUnits))
}
