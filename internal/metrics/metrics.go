// Package metrics records deployment metrics in Prometheus text format for
// node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pmc"

// Recorder collects the metrics of one deployment run.
type Recorder struct {
	reg *prometheus.Registry

	stepDuration   *prometheus.GaugeVec
	stepFailures   *prometheus.CounterVec
	faucetRequests *prometheus.CounterVec
	entries        prometheus.Gauge
	collisions     prometheus.Gauge
	ignored        prometheus.Gauge
	success        prometheus.Gauge
	finished       prometheus.Gauge
}

// NewRecorder returns a Recorder whose series carry network and run_id labels.
func NewRecorder(network, runID string) *Recorder {
	labels := prometheus.Labels{"network": network, "run_id": runID}

	r := &Recorder{
		reg: prometheus.NewRegistry(),
		stepDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_step_duration_seconds",
			Help:        "Wall time of each deployment step.",
			ConstLabels: labels,
		}, []string{"step"}),
		stepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "deploy_step_failures_total",
			Help:        "Deployment steps that returned an error.",
			ConstLabels: labels,
		}, []string{"step"}),
		faucetRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "faucet_requests_total",
			Help:        "Faucet funding requests by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_config_entries",
			Help:        "Entries in the written deployment config.",
			ConstLabels: labels,
		}),
		collisions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_key_collisions",
			Help:        "Configuration keys assigned more than once.",
			ConstLabels: labels,
		}),
		ignored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_ignored_changes",
			Help:        "Object changes that produced no entry.",
			ConstLabels: labels,
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_success",
			Help:        "1 if the last deployment succeeded, 0 otherwise.",
			ConstLabels: labels,
		}),
		finished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "deploy_last_run_timestamp_seconds",
			Help:        "Unix time the deployment finished.",
			ConstLabels: labels,
		}),
	}

	r.reg.MustRegister(
		r.stepDuration, r.stepFailures, r.faucetRequests,
		r.entries, r.collisions, r.ignored, r.success, r.finished,
	)
	return r
}

// ObserveStep records the duration and outcome of a pipeline step.
func (r *Recorder) ObserveStep(step string, d time.Duration, err error) {
	r.stepDuration.WithLabelValues(step).Set(d.Seconds())
	if err != nil {
		r.stepFailures.WithLabelValues(step).Inc()
	}
}

// FaucetRequest counts one funding attempt.
func (r *Recorder) FaucetRequest(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.faucetRequests.WithLabelValues(result).Inc()
}

// Classified records the classification summary.
func (r *Recorder) Classified(entries, collisions, ignored int) {
	r.entries.Set(float64(entries))
	r.collisions.Set(float64(collisions))
	r.ignored.Set(float64(ignored))
}

// Finish records the overall outcome at time now.
func (r *Recorder) Finish(now time.Time, err error) {
	if err == nil {
		r.success.Set(1)
	} else {
		r.success.Set(0)
	}
	r.finished.Set(float64(now.Unix()))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
