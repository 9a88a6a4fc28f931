package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_completed_total",
			Help: "Assessments that reached results, by survey type and classification",
		},
		[]string{"survey_type", "classification"},
	)

	SaveOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_save_total",
			Help: "Background saves to the survey API, by outcome",
		},
		[]string{"survey_type", "outcome"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survey_upstream_duration_seconds",
			Help:    "Latency of calls to the survey API",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"endpoint", "status"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AssessmentsCompleted)
		prometheus.MustRegister(SaveOutcomes)
		prometheus.MustRegister(UpstreamDuration)
	})
}

// Classification labels used by AssessmentsCompleted.
const (
	ClassTwiceExceptional = "twice_exceptional"
	ClassDisabilityOnly   = "disability_only"
)

func ObserveCompleted(surveyType string, talented bool) {
	class := ClassDisabilityOnly
	if talented {
		class = ClassTwiceExceptional
	}
	AssessmentsCompleted.WithLabelValues(surveyType, class).Inc()
}

func ObserveSave(surveyType, outcome string) {
	SaveOutcomes.WithLabelValues(surveyType, outcome).Inc()
}

// ObserveUpstream records one upstream call. status is 0 on transport errors.
func ObserveUpstream(endpoint string, status int, start time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamDuration.WithLabelValues(endpoint, label).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
