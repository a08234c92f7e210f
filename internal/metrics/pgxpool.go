package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterPgxPoolMetrics exposes certificate-store connection pool
// statistics as Prometheus gauges. Call at most once per process.
func RegisterPgxPoolMetrics(pool *pgxpool.Pool) {
	prometheus.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "connector_certdb_acquired_conns",
			Help: "Number of currently acquired cert database connections",
		}, func() float64 {
			return float64(pool.Stat().AcquiredConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "connector_certdb_max_conns",
			Help: "Maximum number of cert database connections",
		}, func() float64 {
			return float64(pool.Stat().MaxConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "connector_certdb_total_conns",
			Help: "Total number of cert database connections",
		}, func() float64 {
			return float64(pool.Stat().TotalConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "connector_certdb_idle_conns",
			Help: "Number of idle cert database connections",
		}, func() float64 {
			return float64(pool.Stat().IdleConns())
		}),
	)
}
