package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CartCreatedTotal counts carts opened through the service.
	CartCreatedTotal prometheus.Counter
	// CartItemsAddedTotal counts line items added or replaced.
	CartItemsAddedTotal prometheus.Counter
	// CartCheckoutTotal counts completed checkouts.
	CartCheckoutTotal prometheus.Counter
	// CartDiscountMinorUnits accumulates minor units saved by discount conditions.
	CartDiscountMinorUnits prometheus.Counter
	// CartCheckoutAmount records checkout totals in minor units.
	CartCheckoutAmount prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CartCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_created_total",
			Help:      "Number of carts created.",
		})
		CartItemsAddedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Number of line items added or replaced in carts.",
		})
		CartCheckoutTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_checkout_total",
			Help:      "Number of completed checkouts.",
		})
		CartDiscountMinorUnits = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_discount_minor_units_total",
			Help:      "Minor currency units saved by discount conditions at checkout.",
		})
		CartCheckoutAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_checkout_amount_minor_units",
			Help:      "Distribution of checkout totals in minor currency units.",
			Buckets:   prometheus.ExponentialBuckets(1000, 4, 10),
		})
		mustRegister(reg, CartCreatedTotal, CartItemsAddedTotal, CartCheckoutTotal, CartDiscountMinorUnits, CartCheckoutAmount)
	})
}
