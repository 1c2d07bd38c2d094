package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	availabilityDuration prometheus.Histogram
	slotsReturned        prometheus.Histogram
	slotCache            *prometheus.CounterVec
	bookings             *prometheus.CounterVec
}

// New registra os coletores em reg. Cada teste pode usar um registry próprio.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "corte_digital",
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por rota e status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "corte_digital",
			Name:      "http_request_duration_seconds",
			Help:      "Latência das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		availabilityDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "corte_digital",
			Name:      "availability_duration_seconds",
			Help:      "Tempo total do cálculo de horários livres.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "corte_digital",
			Name:      "availability_slots_returned",
			Help:      "Quantidade de horários devolvidos por consulta.",
			Buckets:   []float64{0, 1, 5, 10, 20, 40, 80},
		}),
		slotCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "corte_digital",
			Name:      "slot_cache_total",
			Help:      "Acessos ao cache de horários (hit, miss, error).",
		}, []string{"result"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "corte_digital",
			Name:      "bookings_total",
			Help:      "Tentativas de agendamento por resultado.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.availabilityDuration,
		m.slotsReturned,
		m.slotCache,
		m.bookings,
	)

	return m
}

// Nop devolve coletores não registrados, para testes e ferramentas.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveAvailability(d time.Duration, slots int) {
	m.availabilityDuration.Observe(d.Seconds())
	m.slotsReturned.Observe(float64(slots))
}

func (m *Metrics) SlotCache(result string) {
	m.slotCache.WithLabelValues(result).Inc()
}

func (m *Metrics) Booking(result string) {
	m.bookings.WithLabelValues(result).Inc()
}

// Middleware mede cada requisição usando a rota registrada (não o path
// cru) para não explodir a cardinalidade.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
