package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	couponClaimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_claims_total",
			Help: "Coupon claim attempts by outcome (claimed/duplicate/error).",
		},
		[]string{"outcome"},
	)

	entitlementDenialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlement_denials_total",
			Help: "Publish attempts rejected by role quota, per resource.",
		},
		[]string{"resource"},
	)

	paymentOrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_orders_total",
			Help: "Payment orders by outcome (prepared/rejected).",
		},
		[]string{"outcome"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal, httpRequestDuration,
			couponClaimsTotal, entitlementDenialsTotal,
			paymentOrdersTotal,
		)
	})
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncCouponClaim(outcome string) {
	couponClaimsTotal.WithLabelValues(outcome).Inc()
}

func IncEntitlementDenial(resource string) {
	entitlementDenialsTotal.WithLabelValues(resource).Inc()
}

func IncPaymentOrder(outcome string) {
	paymentOrdersTotal.WithLabelValues(outcome).Inc()
}
