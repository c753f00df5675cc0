package treap

import "sync/atomic"

// Metrics counts the work a set has done. Counters are atomic so that a
// snapshot can be taken while another goroutine holds a SyncSet's write lock.
type Metrics struct {
	adds           atomic.Int64
	rejectedAdds   atomic.Int64
	removes        atomic.Int64
	rejectedRemove atomic.Int64
	splits         atomic.Int64
	merges         atomic.Int64
	released       atomic.Int64
}

func (m *Metrics) incAdd() { m.adds.Add(1) }
func (m *Metrics) incRejectedAdd() { m.rejectedAdds.Add(1) }
func (m *Metrics) incRemove() { m.removes.Add(1) }
func (m *Metrics) incRejectedRemove() { m.rejectedRemove.Add(1) }
func (m *Metrics) incReleased() { m.released.Add(1) }

func (m *Metrics) addStructural(splits, merges int64) {
	m.splits.Add(splits)
	m.merges.Add(merges)
}

// Stats is a point-in-time copy of a set's counters together with its
// current shape.
type Stats struct {
	Len             int
	Height          int
	Adds            int64
	RejectedAdds    int64
	Removes         int64
	RejectedRemoves int64
	Splits          int64
	Merges          int64
	ReleasedNodes   int64
}

func (m *Metrics) snapshot() Stats {
	return Stats{
		Adds:            m.adds.Load(),
		RejectedAdds:    m.rejectedAdds.Load(),
		Removes:         m.removes.Load(),
		RejectedRemoves: m.rejectedRemove.Load(),
		Splits:          m.splits.Load(),
		Merges:          m.merges.Load(),
		ReleasedNodes:   m.released.Load(),
	}
}
