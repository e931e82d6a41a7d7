package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dutctl",
			Subsystem: "dispatch",
			Name:      "commands_total",
			Help:      "Commands handled, by message type and response status.",
		},
		[]string{"type", "status"},
	)
	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dutctl",
			Subsystem: "dispatch",
			Name:      "command_duration_seconds",
			Help:      "Command handling duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"type"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dutctl",
			Subsystem: "dispatch",
			Name:      "decode_failures_total",
			Help:      "Inbound datagrams rejected by the codec.",
		},
		[]string{"outcome"},
	)
	configWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dutctl",
			Subsystem: "confgen",
			Name:      "documents_total",
			Help:      "Configuration documents written, by daemon role.",
		},
		[]string{"role", "append"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dutctl",
			Subsystem: "admin",
			Name:      "requests_total",
			Help:      "Admin HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(commands, commandDuration, decodeFailures, configWrites, httpRequests)
	})
}

// RecordCommand counts one handled command.
func RecordCommand(msgType string, status int, duration time.Duration) {
	RegisterMetrics()
	commands.WithLabelValues(msgType, strconv.Itoa(status)).Inc()
	commandDuration.WithLabelValues(msgType).Observe(duration.Seconds())
}

// RecordDecodeFailure counts a rejected datagram. outcome is "nack" when a
// reply pair was sent and "dropped" otherwise.
func RecordDecodeFailure(outcome string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(outcome).Inc()
}

func RecordDocument(role string, appended bool) {
	RegisterMetrics()
	configWrites.WithLabelValues(role, strconv.FormatBool(appended)).Inc()
}

func RecordHTTPRequest(method, path string, status int) {
	RegisterMetrics()
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
