package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	req := require.New(t)
	m := &impl{pkgName: "crawler", ddTags: []string{"host:"}}

	req.Equal([]string{"host:", "chain:bsc", "kind:Bid"}, m.tags([]string{"chain", "bsc", "kind", "Bid"}))
	req.Equal([]string{"host:"}, m.tags([]string{"odd"}))
	req.Equal("crawler.tick.time", m.key("tick.time"))
}

func TestBumpWithoutAgent(t *testing.T) {
	m := New("test")
	m.BumpSum("events", 1, "kind", "List")
	m.BumpAvg("lastBlock", 10)
	m.BumpHistogram("batch", 3)
	m.BumpTime("tick.time").End()
}
