package descalloc

import "testing"

func TestGPUHeapAllocFree(t *testing.T) {
	h := NewGPUHeap(64)

	a, err := h.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	b, err := h.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct offsets")
	}
	if got := h.FreeSlots(); got != 32 {
		t.Fatalf("expected 32 free slots, got %d", got)
	}

	h.Free(a, 16)
	h.Free(b, 16)
	if got := h.FreeSlots(); got != 64 {
		t.Fatalf("expected all slots free after releasing both allocations, got %d", got)
	}
}

func TestGPUHeapCoalescesAdjacentFreeRanges(t *testing.T) {
	h := NewGPUHeap(32)

	a, _ := h.Alloc(8)
	b, _ := h.Alloc(8)
	c, _ := h.Alloc(8)

	h.Free(a, 8)
	h.Free(c, 8)
	h.Free(b, 8)

	whole, err := h.Alloc(32)
	if err != nil {
		t.Fatalf("expected coalesced free ranges to satisfy a full-capacity request: %v", err)
	}
	if whole != 0 {
		t.Fatalf("expected offset 0, got %d", whole)
	}
}

func TestGPUHeapExhausted(t *testing.T) {
	h := NewGPUHeap(8)
	if _, err := h.Alloc(8); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if _, err := h.Alloc(1); err == nil {
		t.Fatalf("expected heap exhausted error")
	}
}
