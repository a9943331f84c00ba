package descalloc

import (
	"fmt"
	"sync"
)

// PageAllocator creates a new fixed-capacity page of CPU-visible
// descriptor storage, sized at least pageCapacity slots. Backends supply
// this to create native descriptor heaps on demand.
type PageAllocator func(pageCapacity uint32) (PageHandle, error)

// PageHandle identifies a single heap page to its owning backend
// (typically wraps a native descriptor heap object).
type PageHandle interface{}

// Allocation is a slot range within one page of a CPUHeap.
type Allocation struct {
	Page  PageHandle
	Start uint32
	Count uint32

	page  *cpuPage
	block Block
}

// CPUHeap implements the table-model CpuDescriptorAllocator: paging +
// buddy. Each page owns a fixed-size descriptor heap and a buddy
// allocator over [0, pageCapacity). Allocation probes a hint page, walks
// pages on miss, and appends a new page on exhaustion. Free looks up the
// owning page and, once the allocator has more than keepFreePages
// entirely-idle pages, drops the oldest idle one.
type CPUHeap struct {
	mu sync.Mutex

	newPage      PageAllocator
	pageCapacity uint32
	minSlots     uint32
	keepFree     int

	pages    []*cpuPage
	lastHint int
}

type cpuPage struct {
	handle PageHandle
	buddy  *BuddyAllocator
	idle   bool
}

// CPUHeapConfig configures a CPUHeap.
type CPUHeapConfig struct {
	// PageCapacity is the slot count of each page (power of 2).
	PageCapacity uint32

	// MinSlots is the smallest allocatable unit within a page (power of 2).
	MinSlots uint32

	// KeepFreePages is the number of entirely-idle pages retained before
	// pages start being dropped on free.
	KeepFreePages int

	// NewPage creates a new native heap page of the given capacity.
	NewPage PageAllocator
}

// NewCPUHeap creates a paged, buddy-backed CPU descriptor allocator.
func NewCPUHeap(cfg CPUHeapConfig) (*CPUHeap, error) {
	if cfg.NewPage == nil {
		return nil, fmt.Errorf("descalloc: CPUHeapConfig.NewPage is required")
	}
	if cfg.PageCapacity == 0 {
		cfg.PageCapacity = 256
	}
	if cfg.MinSlots == 0 {
		cfg.MinSlots = 1
	}
	return &CPUHeap{
		newPage:      cfg.NewPage,
		pageCapacity: cfg.PageCapacity,
		minSlots:     cfg.MinSlots,
		keepFree:     cfg.KeepFreePages,
	}, nil
}

// Alloc allocates count contiguous slots, probing the most recently used
// page first, then walking the remaining pages, then appending a new
// page if none has room.
func (h *CPUHeap) Alloc(count uint32) (Allocation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pages) > 0 {
		hint := h.lastHint
		if hint >= 0 && hint < len(h.pages) {
			if alloc, ok := h.tryAlloc(h.pages[hint], count); ok {
				return alloc, nil
			}
		}
		for _, p := range h.pages {
			if p == h.hintPage() {
				continue
			}
			if alloc, ok := h.tryAlloc(p, count); ok {
				return alloc, nil
			}
		}
	}

	page, err := h.newPage(h.pageCapacity)
	if err != nil {
		return Allocation{}, fmt.Errorf("descalloc: failed to create descriptor heap page: %w", err)
	}
	buddy, err := NewBuddyAllocator(h.pageCapacity, h.minSlots)
	if err != nil {
		return Allocation{}, err
	}
	p := &cpuPage{handle: page, buddy: buddy}
	h.pages = append(h.pages, p)
	if alloc, ok := h.tryAlloc(p, count); ok {
		return alloc, nil
	}
	return Allocation{}, ErrOutOfSlots
}

func (h *CPUHeap) hintPage() *cpuPage {
	if h.lastHint >= 0 && h.lastHint < len(h.pages) {
		return h.pages[h.lastHint]
	}
	return nil
}

func (h *CPUHeap) tryAlloc(p *cpuPage, count uint32) (Allocation, bool) {
	block, err := p.buddy.Alloc(count)
	if err != nil {
		return Allocation{}, false
	}
	p.idle = false
	for i, pg := range h.pages {
		if pg == p {
			h.lastHint = i
			break
		}
	}
	return Allocation{
		Page:  p.handle,
		Start: block.Start,
		Count: block.Count,
		page:  p,
		block: block,
	}, true
}

// Free releases an allocation back to its owning page. If freeing it
// leaves more than keepFreePages pages entirely idle, the oldest such
// page is dropped and its handle returned via evicted (nil if none was
// dropped) so the caller can release the underlying native heap.
func (h *CPUHeap) Free(alloc Allocation) (evicted PageHandle, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p := alloc.page
	if p == nil {
		return nil, ErrDoubleFree
	}
	if err := p.buddy.Free(alloc.block); err != nil {
		return nil, err
	}
	if p.buddy.IsEmpty() {
		p.idle = true
	}

	idleCount := 0
	for _, pg := range h.pages {
		if pg.idle {
			idleCount++
		}
	}
	if idleCount <= h.keepFree {
		return nil, nil
	}

	for i, pg := range h.pages {
		if pg.idle {
			h.pages = append(h.pages[:i], h.pages[i+1:]...)
			h.lastHint = 0
			return pg.handle, nil
		}
	}
	return nil, nil
}

// PageCount returns the current number of pages.
func (h *CPUHeap) PageCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pages)
}
