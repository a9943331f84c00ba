package descalloc

import "testing"

type fakePage struct{ id int }

func newFakePageAllocator() (PageAllocator, *int) {
	n := 0
	return func(_ uint32) (PageHandle, error) {
		n++
		return &fakePage{id: n}, nil
	}, &n
}

func TestCPUHeapAllocatesWithinPage(t *testing.T) {
	newPage, pagesCreated := newFakePageAllocator()
	h, err := NewCPUHeap(CPUHeapConfig{PageCapacity: 16, MinSlots: 1, NewPage: newPage})
	if err != nil {
		t.Fatalf("NewCPUHeap: %v", err)
	}

	a1, err := h.Alloc(4)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	a2, err := h.Alloc(4)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if a1.Page != a2.Page {
		t.Fatalf("expected both allocations to share the first page")
	}
	if *pagesCreated != 1 {
		t.Fatalf("expected exactly one page created, got %d", *pagesCreated)
	}
}

func TestCPUHeapGrowsOnExhaustion(t *testing.T) {
	newPage, pagesCreated := newFakePageAllocator()
	h, _ := NewCPUHeap(CPUHeapConfig{PageCapacity: 4, MinSlots: 1, NewPage: newPage})

	if _, err := h.Alloc(4); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if _, err := h.Alloc(4); err != nil {
		t.Fatalf("Alloc triggering new page: %v", err)
	}
	if *pagesCreated != 2 {
		t.Fatalf("expected 2 pages after exhausting the first, got %d", *pagesCreated)
	}
}

func TestCPUHeapDropsIdlePagesBeyondWatermark(t *testing.T) {
	newPage, pagesCreated := newFakePageAllocator()
	h, _ := NewCPUHeap(CPUHeapConfig{PageCapacity: 4, MinSlots: 1, KeepFreePages: 1, NewPage: newPage})

	a1, _ := h.Alloc(4)
	a2, _ := h.Alloc(4)
	if *pagesCreated != 2 {
		t.Fatalf("expected 2 pages, got %d", *pagesCreated)
	}

	if _, err := h.Free(a1); err != nil {
		t.Fatalf("Free a1: %v", err)
	}
	evicted, err := h.Free(a2)
	if err != nil {
		t.Fatalf("Free a2: %v", err)
	}
	if evicted == nil {
		t.Fatalf("expected an idle page to be evicted once both pages are empty")
	}
	if h.PageCount() != 1 {
		t.Fatalf("expected 1 page remaining, got %d", h.PageCount())
	}
}
