package metrics

// Gin middleware exporting per-route HTTP metrics. Loosely based on
// https://github.com/zsais/go-gin-prometheus, trimmed to the vectors we
// actually chart.

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMetricsPath = "/metrics"

// durations are observed in milliseconds
var durationBuckets = []float64{
	25, 50, 75, 100, 150, 200, 300, 400, 500,
	750, 1000, 1500, 2000,
	3000, 5000, 7500, 10000, 15000, 30000, 60000,
}

type Logger interface {
	Errorf(format string, v ...interface{})
}

type defaultLogger struct{}

func (defaultLogger) Errorf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// RequestCounterURLLabelMappingFn controls the cardinality of the "url"
// label. Map parameterized routes ("/user/alice") to their template
// ("/user/:name") here, or every value becomes its own time series.
type RequestCounterURLLabelMappingFn func(c *gin.Context) string

type Prometheus struct {
	reqCnt       *prometheus.CounterVec
	reqDur       *prometheus.HistogramVec
	reqSz, resSz *prometheus.SummaryVec

	metricsPath   string
	listenAddress string

	ReqCntURLLabelMappingFn RequestCounterURLLabelMappingFn

	logger Logger
}

type NewPrometheusOptions struct {
	Subsystem               string
	MetricsPath             string
	ReqCntURLLabelMappingFn RequestCounterURLLabelMappingFn
	Logger                  Logger
}

func NewPrometheus(options NewPrometheusOptions) *Prometheus {
	p := &Prometheus{
		metricsPath:             options.MetricsPath,
		ReqCntURLLabelMappingFn: options.ReqCntURLLabelMappingFn,
		logger:                  options.Logger,
	}
	if p.metricsPath == "" {
		p.metricsPath = defaultMetricsPath
	}
	if p.ReqCntURLLabelMappingFn == nil {
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
	}
	if p.logger == nil {
		p.logger = defaultLogger{}
	}

	p.registerMetrics(options.Subsystem)

	return p
}

// SetListenAddress serves /metrics on a separate address instead of the
// application engine. Keeps scrapes out of the access log.
func (p *Prometheus) SetListenAddress(address string) {
	p.listenAddress = address
}

// Use adds the middleware to a gin engine and mounts the exposition
// endpoint, either on the engine itself or on the dedicated listener.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.handlerFunc())

	if p.listenAddress == "" {
		e.GET(p.metricsPath, gin.WrapH(promhttp.Handler()))
		return
	}

	mr := gin.New()
	mr.GET(p.metricsPath, gin.WrapH(promhttp.Handler()))
	go func() {
		if err := mr.Run(p.listenAddress); err != nil {
			p.logger.Errorf("metrics listener exited, err=%v", err)
		}
	}()
}

func (p *Prometheus) registerMetrics(subsystem string) {
	labels := []string{"code", "method", "url"}

	p.reqCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "req_total",
		Help:      "How many HTTP requests processed, partitioned by status code, method and route.",
	}, labels)
	p.reqDur = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Subsystem: subsystem,
		Name:      "req_dur_ms",
		Help:      "The HTTP request latencies in milliseconds.",
		Buckets:   durationBuckets,
	}, labels)
	p.reqSz = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Subsystem: subsystem,
		Name:      "req_sz_bytes",
		Help:      "The HTTP request sizes in bytes.",
	}, labels)
	p.resSz = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Subsystem: subsystem,
		Name:      "resp_sz_bytes",
		Help:      "The HTTP response sizes in bytes.",
	}, labels)

	for _, c := range []prometheus.Collector{p.reqCnt, p.reqDur, p.reqSz, p.resSz} {
		if err := prometheus.Register(c); err != nil {
			p.logger.Errorf("metric could not be registered in Prometheus, err=%v", err)
		}
	}
}

func (p *Prometheus) handlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == p.metricsPath {
			c.Next()
			return
		}

		start := time.Now()
		reqSz := approximateRequestSize(c.Request)

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		url := p.ReqCntURLLabelMappingFn(c)

		p.reqDur.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		p.reqCnt.WithLabelValues(status, c.Request.Method, url).Inc()
		p.reqSz.WithLabelValues(status, c.Request.Method, url).Observe(float64(reqSz))
		p.resSz.WithLabelValues(status, c.Request.Method, url).Observe(float64(c.Writer.Size()))
	}
}
