package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharma_orders_created_total",
		Help: "Total number of orders created.",
	})

	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pharma_order_status_changes_total",
		Help: "Status updates applied to orders, by new status.",
	},
		[]string{"status"},
	)

	OrderLifecycleEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pharma_order_lifecycle_entries_total",
		Help: "History entries appended to orders, by kind.",
	},
		[]string{"kind"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pharma_operation_errors_total",
		Help: "Errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ExchangeRateFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharma_exchange_rate_fallbacks_total",
		Help: "Times the built-in exchange rate table was used.",
	})
)
