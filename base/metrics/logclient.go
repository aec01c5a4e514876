package metrics

import (
	"github.com/x-xyz/auctionindexer/base/log"
)

// logClient stands in for statsd when no agent is configured
type logClient struct{}

func (logClient) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(log.Fields{"kind": kind, "key": name, "val": value, "tags": tags}).Debug("metric")
	return nil
}

func (lc logClient) Gauge(name string, value float64, tags []string, _ float64) error {
	return lc.emit("gauge", name, value, tags)
}

func (lc logClient) Count(name string, value int64, tags []string, _ float64) error {
	return lc.emit("count", name, value, tags)
}

func (lc logClient) Histogram(name string, value float64, tags []string, _ float64) error {
	return lc.emit("histogram", name, value, tags)
}

func (lc logClient) TimeInMilliseconds(name string, value float64, tags []string, _ float64) error {
	return lc.emit("timing_ms", name, value, tags)
}
