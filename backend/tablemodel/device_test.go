// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"testing"

	"github.com/gfxkit/gfxkit/backend/tablemodel/d3d12"
	"github.com/gfxkit/gfxkit/descalloc"
)

func newTestDescriptorHeap(capacity uint32, incrementSize uint32) *DescriptorHeap {
	return &DescriptorHeap{
		cpuStart:      d3d12.D3D12_CPU_DESCRIPTOR_HANDLE{Ptr: 0x1000},
		gpuStart:      d3d12.D3D12_GPU_DESCRIPTOR_HANDLE{Ptr: 0x2000},
		incrementSize: incrementSize,
		capacity:      capacity,
		slots:         descalloc.NewGPUHeap(capacity),
	}
}

func TestDescriptorHeapAllocateReturnsSequentialHandles(t *testing.T) {
	h := newTestDescriptorHeap(16, 32)

	first, err := h.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if first.Ptr != 0x1000 {
		t.Errorf("expected first handle at heap start, got %#x", first.Ptr)
	}

	second, err := h.Allocate(2)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second.Ptr != 0x1000+32 {
		t.Errorf("expected second allocation right after the first, got %#x", second.Ptr)
	}
}

func TestDescriptorHeapHandleToIndexRoundTrips(t *testing.T) {
	h := newTestDescriptorHeap(16, 32)

	handle, err := h.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if idx := h.HandleToIndex(handle); idx != 0 {
		t.Errorf("expected index 0 for first allocation, got %d", idx)
	}

	handle2, err := h.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if idx := h.HandleToIndex(handle2); idx != 1 {
		t.Errorf("expected index 1 for second allocation, got %d", idx)
	}
}

func TestDescriptorHeapFreeRecyclesSlots(t *testing.T) {
	h := newTestDescriptorHeap(2, 32)

	first, err := h.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := h.Allocate(1); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := h.Allocate(1); err == nil {
		t.Fatal("expected heap exhausted before any Free")
	}

	h.Free(h.HandleToIndex(first), 1)

	reused, err := h.Allocate(1)
	if err != nil {
		t.Fatalf("expected Allocate to succeed after Free: %v", err)
	}
	if reused.Ptr != first.Ptr {
		t.Errorf("expected freed slot to be reused, got %#x want %#x", reused.Ptr, first.Ptr)
	}
}

func TestDescriptorHeapAllocateGPUReturnsMatchingOffsets(t *testing.T) {
	h := newTestDescriptorHeap(16, 32)

	cpu, gpu, err := h.AllocateGPU(1)
	if err != nil {
		t.Fatalf("AllocateGPU: %v", err)
	}
	if cpu.Ptr != 0x1000 || gpu.Ptr != 0x2000 {
		t.Errorf("expected first CPU/GPU handles at heap starts, got cpu=%#x gpu=%#x", cpu.Ptr, gpu.Ptr)
	}

	cpu2, gpu2, err := h.AllocateGPU(1)
	if err != nil {
		t.Fatalf("AllocateGPU: %v", err)
	}
	if cpu2.Ptr != 0x1000+32 || gpu2.Ptr != 0x2000+32 {
		t.Errorf("expected second CPU/GPU handles offset by one increment, got cpu=%#x gpu=%#x", cpu2.Ptr, gpu2.Ptr)
	}
}
