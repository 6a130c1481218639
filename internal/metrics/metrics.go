package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records account transitions, authorization decisions and HTTP traffic.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	transitions  *prometheus.CounterVec
	decisions    *prometheus.CounterVec
	rateLimited  *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "avo_account_transitions_total",
		Help: "Account lifecycle transitions by outcome.",
	}, []string{"transition", "outcome"})
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "avo_authz_decisions_total",
		Help: "Policy decisions by resource, action and result.",
	}, []string{"resource", "action", "decision"})
	rateLimited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "avo_rate_limited_total",
		Help: "Requests rejected by the auth rate limiter.",
	}, []string{"policy", "scope"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "avo_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(transitions, decisions, rateLimited, httpDuration)
	return &Metrics{
		transitions:  transitions,
		decisions:    decisions,
		rateLimited:  rateLimited,
		httpDuration: httpDuration,
	}
}

// Transition counts one account state change attempt
func (m *Metrics) Transition(name string, err error) {
	if m == nil || m.transitions == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.transitions.WithLabelValues(normalizeLabel(name), outcome).Inc()
}

// Decision counts one policy decision
func (m *Metrics) Decision(resource, action, decision string) {
	if m == nil || m.decisions == nil {
		return
	}
	m.decisions.WithLabelValues(normalizeLabel(resource), normalizeLabel(action), normalizeLabel(decision)).Inc()
}

// RateLimited counts one rejected request
func (m *Metrics) RateLimited(policy, scope string) {
	if m == nil || m.rateLimited == nil {
		return
	}
	m.rateLimited.WithLabelValues(normalizeLabel(policy), normalizeLabel(scope)).Inc()
}

// ObserveRequest records the latency of one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
