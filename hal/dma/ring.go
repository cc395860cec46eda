package dma

// ring is a fixed-capacity FIFO of descriptor slot indexes. Descriptors
// live in the registry's arena; only their indexes circulate between the
// free pool and the progress queues, so a slot can never be linked into
// two queues through aliased pointers.
type ring struct {
	slots []uint16
	head  int
	count int
}

func newRing(capacity int) ring {
	return ring{slots: make([]uint16, capacity)}
}

func (r *ring) depth() int { return r.count }

func (r *ring) empty() bool { return r.count == 0 }

// push appends idx at the tail. Returns false when the ring is full.
func (r *ring) push(idx uint16) bool {
	if r.count == len(r.slots) {
		return false
	}
	r.slots[(r.head+r.count)%len(r.slots)] = idx
	r.count++
	return true
}

// pop removes and returns the head index.
func (r *ring) pop() (uint16, bool) {
	if r.count == 0 {
		return 0, false
	}
	idx := r.slots[r.head]
	r.head = (r.head + 1) % len(r.slots)
	r.count--
	return idx, true
}

// peek returns the head index without removing it.
func (r *ring) peek() (uint16, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.slots[r.head], true
}

// tail returns the most recently pushed index.
func (r *ring) tail() (uint16, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.slots[(r.head+r.count-1)%len(r.slots)], true
}
