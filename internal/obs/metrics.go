package obs

import (
	"sort"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// Counters keeps running totals in memory. A histogram observation adds
// to name_sum and name_count.
type Counters struct {
	mu sync.Mutex
	m  map[string]float64
}

func (c *Counters) Counter(name string, value float64, labels ...Label) {
	c.add(seriesKey(name, labels), value)
}

func (c *Counters) Histogram(name string, value float64, labels ...Label) {
	c.add(seriesKey(name+"_sum", labels), value)
	c.add(seriesKey(name+"_count", labels), 1)
}

func (c *Counters) add(key string, v float64) {
	c.mu.Lock()
	if c.m == nil {
		c.m = make(map[string]float64)
	}
	c.m[key] += v
	c.mu.Unlock()
}

// Snapshot returns a copy of every series.
func (c *Counters) Snapshot() map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]float64, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	return out
}

// seriesKey renders name{k="v",...} with labels sorted by key.
func seriesKey(name string, labels []Label) string {
	if len(labels) == 0 {
		return name
	}
	ls := append([]Label(nil), labels...)
	sort.Slice(ls, func(i, j int) bool { return ls[i].Key < ls[j].Key })
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(l.Key + `="` + l.Value + `"`)
	}
	b.WriteByte('}')
	return b.String()
}
