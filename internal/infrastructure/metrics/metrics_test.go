package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMustRegister_Idempotent(t *testing.T) {
	require.NotPanics(t, func() {
		MustRegister()
		MustRegister()
	})
}

func TestObserveRequest(t *testing.T) {
	before := testutil.CollectAndCount(httpRequestsTotal)
	ObserveRequest(http.MethodGet, "/api/v1/merchant", http.StatusOK, 5*time.Millisecond)
	after := testutil.CollectAndCount(httpRequestsTotal)
	require.GreaterOrEqual(t, after, before)

	count := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/merchant", "200"))
	require.GreaterOrEqual(t, count, float64(1))
}

func TestDomainCounters(t *testing.T) {
	IncCouponClaim("claimed")
	require.GreaterOrEqual(t, testutil.ToFloat64(couponClaimsTotal.WithLabelValues("claimed")), float64(1))

	IncEntitlementDenial("coupon")
	require.GreaterOrEqual(t, testutil.ToFloat64(entitlementDenialsTotal.WithLabelValues("coupon")), float64(1))

	IncPaymentOrder("prepared")
	require.GreaterOrEqual(t, testutil.ToFloat64(paymentOrdersTotal.WithLabelValues("prepared")), float64(1))
}
