package descalloc

import (
	"fmt"
	"sort"
	"sync"
)

// freeRange is a coalescable [Start, Start+Count) range of slots.
type freeRange struct {
	Start uint32
	Count uint32
}

// GPUHeap implements the table-model GpuDescriptorAllocator: a single
// shader-visible heap whose size is fixed at creation, managed by a
// free-list allocator. Free merges with adjacent neighbors so the heap
// does not fragment under steady alloc/free churn across frames.
type GPUHeap struct {
	mu       sync.Mutex
	capacity uint32
	free     []freeRange // sorted by Start, no two entries adjacent or overlapping
}

// NewGPUHeap creates a free-list allocator over a single heap of the
// given slot capacity.
func NewGPUHeap(capacity uint32) *GPUHeap {
	return &GPUHeap{
		capacity: capacity,
		free:     []freeRange{{Start: 0, Count: capacity}},
	}
}

// Alloc finds the first free range with enough room for count
// contiguous slots (first-fit) and returns its starting slot.
func (h *GPUHeap) Alloc(count uint32) (uint32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if count == 0 {
		return 0, ErrInvalidCount
	}
	for i, r := range h.free {
		if r.Count < count {
			continue
		}
		start := r.Start
		if r.Count == count {
			h.free = append(h.free[:i], h.free[i+1:]...)
		} else {
			h.free[i] = freeRange{Start: r.Start + count, Count: r.Count - count}
		}
		return start, nil
	}
	return 0, fmt.Errorf("descalloc: gpu heap exhausted (%d slots requested): %w", count, ErrOutOfSlots)
}

// Free returns a previously allocated [start, start+count) range to the
// free list, coalescing with any adjacent free ranges.
func (h *GPUHeap) Free(start, count uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.free = append(h.free, freeRange{Start: start, Count: count})
	sort.Slice(h.free, func(i, j int) bool { return h.free[i].Start < h.free[j].Start })

	merged := h.free[:1]
	for _, r := range h.free[1:] {
		last := &merged[len(merged)-1]
		if last.Start+last.Count == r.Start {
			last.Count += r.Count
		} else {
			merged = append(merged, r)
		}
	}
	h.free = merged
}

// Capacity returns the total slot count of the heap.
func (h *GPUHeap) Capacity() uint32 {
	return h.capacity
}

// FreeSlots returns the total number of currently free slots.
func (h *GPUHeap) FreeSlots() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	var total uint32
	for _, r := range h.free {
		total += r.Count
	}
	return total
}
