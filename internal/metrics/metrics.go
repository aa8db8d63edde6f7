package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var (
	usersMetricsOnce sync.Once

	usersListTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_list_total",
			Help: "Total number of user listing attempts",
		},
		[]string{"status"},
	)
)

func RegisterUsersMetrics() {
	usersMetricsOnce.Do(func() {
		prometheus.MustRegister(usersListTotal)
	})
}

func IncUsersList(status string) {
	RegisterUsersMetrics()
	usersListTotal.WithLabelValues(status).Inc()
}
