// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/counterprogram/program"
)

const namespace = "counter"

type metrics struct {
	increments prometheus.Counter
	decrements prometheus.Counter
	updates    prometheus.Counter
	resets     prometheus.Counter
	rejected   prometheus.Counter

	execute metric.Averager
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	execute, err := metric.NewAverager(
		namespace+"_execute",
		"time spent executing an instruction against a counter",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		execute: execute,
		increments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "increments",
			Help:      "number of increment instructions applied",
		}),
		decrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decrements",
			Help:      "number of decrement instructions applied",
		}),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates",
			Help:      "number of update instructions applied",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets",
			Help:      "number of reset instructions applied",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected",
			Help:      "number of calls rejected without mutation",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.increments),
		r.Register(m.decrements),
		r.Register(m.updates),
		r.Register(m.resets),
		r.Register(m.rejected),
	)
	return r, m, errs.Err
}

// applied records a successful call. [tag] is the instruction discriminant.
func (m *metrics) applied(tag uint8) {
	switch tag {
	case program.IncrementID:
		m.increments.Inc()
	case program.DecrementID:
		m.decrements.Inc()
	case program.UpdateID:
		m.updates.Inc()
	case program.ResetID:
		m.resets.Inc()
	}
}
