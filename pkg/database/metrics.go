package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	connectionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_pool_connections_created_total",
			Help: "Total number of connections created by the driver pool",
		},
		[]string{"service"},
	)

	connectionsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_pool_connections_closed_total",
			Help: "Total number of connections closed by the driver pool",
		},
		[]string{"service"},
	)

	checkoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_pool_checkout_failures_total",
			Help: "Total number of failed connection checkouts",
		},
		[]string{"service"},
	)

	connectionsInUse = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_pool_connections_in_use",
			Help: "Number of connections currently checked out",
		},
		[]string{"service"},
	)
)

// NewPoolStatsMonitor returns a PoolMonitor that exports driver connection
// pool activity as Prometheus metrics.
func NewPoolStatsMonitor(service string) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				connectionsCreated.WithLabelValues(service).Inc()
			case event.ConnectionClosed:
				connectionsClosed.WithLabelValues(service).Inc()
			case event.GetSucceeded:
				connectionsInUse.WithLabelValues(service).Inc()
			case event.GetFailed:
				checkoutFailures.WithLabelValues(service).Inc()
			case event.ConnectionReturned:
				connectionsInUse.WithLabelValues(service).Dec()
			}
		},
	}
}
