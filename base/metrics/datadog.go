package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/auctionindexer/base/log"
)

const (
	ddClientsSize    = 8 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	ddPort = 8125

	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// ddClientsIdx is used for accessing ddClients by round robin scheduling
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClients dials the datadog agent. Without datadog_host every metric is
// written to the debug log instead.
func initClients() {
	host := viper.GetString("datadog_host")
	ddClients = make([]statsCli, ddClientsSize)
	if host == "" {
		for i := range ddClients {
			ddClients[i] = logClient{}
		}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, ddPort)
	for i := range ddClients {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = cli
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
}

func client() statsCli {
	initOnce.Do(initClients)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}
