/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"time"

	"github.com/x-xyz/auctionindexer/base/env"
	"github.com/x-xyz/auctionindexer/base/log"
)

const rate = 1.0

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type impl struct {
	pkgName string
	ddTags  []string
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &impl{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + env.EnvName(),
			"app:" + env.AppName(),
		},
	}
}

func (m *impl) tags(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Warn("tag length needs to be multiple of 2, dropping tags")
		return m.ddTags
	}
	res := make([]string, 0, len(m.ddTags)+len(tags)/2)
	res = append(res, m.ddTags...)
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

func (m *impl) key(key string) string {
	return m.pkgName + "." + key
}

func (m *impl) report(fn, key string, val interface{}, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
	}
}

// BumpAvg bumps the average for the given key.
func (m *impl) BumpAvg(key string, val float64, tags ...string) {
	m.report("BumpAvg", key, val, client().Gauge(m.key(key), val, m.tags(tags), rate))
}

// BumpSum bumps the sum for the given key.
func (m *impl) BumpSum(key string, val float64, tags ...string) {
	m.report("BumpSum", key, val, client().Count(m.key(key), int64(val), m.tags(tags), rate))
}

// BumpHistogram bumps the histogram for the given key.
func (m *impl) BumpHistogram(key string, val float64, tags ...string) {
	m.report("BumpHistogram", key, val, client().Histogram(m.key(key), val, m.tags(tags), rate))
}

// BumpTime starts a timer, End() records the elapsed milliseconds:
//
//     defer met.BumpTime("tick.time").End()
func (m *impl) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{m: m, start: time.Now(), key: m.key(key), tags: m.tags(tags)}
}

type timeTracker struct {
	m     *impl
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.m.report("BumpTime", t.key, d, client().TimeInMilliseconds(t.key, d, t.tags, rate))
}
