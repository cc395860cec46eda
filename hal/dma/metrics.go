package dma

import (
	"github.com/rcrowley/go-metrics"

	"github.com/ardnew/softmac/hal"
)

// stats aggregates the registry's metrics instruments. Instruments are
// registered once in the default go-metrics registry and shared by all
// Registry instances in the process.
type stats struct {
	push     metrics.Counter
	complete metrics.Counter
	abort    metrics.Counter
	rejected metrics.Counter

	freeDepth metrics.Gauge
	progDepth [hal.NumChannels]metrics.Gauge
	lliActive [hal.NumChannels]metrics.Gauge
}

func newStats() *stats {
	s := &stats{
		push:      metrics.GetOrRegisterCounter("dma.push", nil),
		complete:  metrics.GetOrRegisterCounter("dma.complete", nil),
		abort:     metrics.GetOrRegisterCounter("dma.abort", nil),
		rejected:  metrics.GetOrRegisterCounter("dma.rejected", nil),
		freeDepth: metrics.GetOrRegisterGauge("dma.free.depth", nil),
	}
	for ch := hal.Channel(0); ch < hal.NumChannels; ch++ {
		s.progDepth[ch] = metrics.GetOrRegisterGauge("dma.prog."+ch.String()+".depth", nil)
		s.lliActive[ch] = metrics.GetOrRegisterGauge("dma.lli."+ch.String()+".active", nil)
	}
	return s
}

// updateGaugesLocked publishes the current queue depths. Caller holds the
// registry lock.
func (r *Registry) updateGaugesLocked() {
	r.stats.freeDepth.Update(int64(r.free.depth()))
	for ch := hal.Channel(0); ch < hal.NumChannels; ch++ {
		r.stats.progDepth[ch].Update(int64(r.prog[ch].depth()))
		r.stats.lliActive[ch].Update(int64(r.lliCnt[ch]))
	}
}
