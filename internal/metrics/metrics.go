package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов платежа
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancalc_calculations_total",
			Help: "Количество расчетов ежемесячного платежа",
		},
		[]string{"source", "status"},
	)

	// CalculationErrors счетчик отказов валидации по полям
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancalc_calculation_errors_total",
			Help: "Количество отказов в расчете",
		},
		[]string{"field"},
	)

	// CacheLookups счетчик обращений к кэшу результатов
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancalc_cache_lookups_total",
			Help: "Обращения к кэшу результатов",
		},
		[]string{"result"},
	)

	// HTTPRequests счетчик HTTP запросов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loancalc_http_requests_total",
			Help: "HTTP запросы",
		},
		[]string{"route", "code"},
	)

	// HTTPDuration длительность HTTP запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loancalc_http_request_duration_seconds",
			Help:    "Длительность HTTP запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
