// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/gfxkit/gfxkit/types"
	"github.com/gfxkit/gfxkit/backend"
	"github.com/gfxkit/gfxkit/backend/tablemodel/d3d12"
)

// -----------------------------------------------------------------------------
// Buffer Implementation
// -----------------------------------------------------------------------------

// Buffer implements hal.Buffer for DirectX 12.
type Buffer struct {
	raw           *d3d12.ID3D12Resource
	size          uint64
	usage         types.BufferUsage
	heapType      d3d12.D3D12_HEAP_TYPE
	gpuVA         uint64 // GPU virtual address for binding
	device        *Device
	mappedPointer unsafe.Pointer // Non-nil if buffer is currently mapped
}

// Destroy releases the buffer resources.
func (b *Buffer) Destroy() {
	if b.raw != nil {
		// Unmap if still mapped
		if b.mappedPointer != nil {
			b.raw.Unmap(0, nil)
			b.mappedPointer = nil
		}
		b.raw.Release()
		b.raw = nil
	}
}

// Map maps the buffer memory for CPU access.
// Only valid for buffers with MapRead or MapWrite usage.
func (b *Buffer) Map(offset, size uint64) (unsafe.Pointer, error) {
	if b.mappedPointer != nil {
		return nil, fmt.Errorf("dx12: buffer is already mapped")
	}

	if b.heapType != d3d12.D3D12_HEAP_TYPE_UPLOAD && b.heapType != d3d12.D3D12_HEAP_TYPE_READBACK {
		return nil, fmt.Errorf("dx12: buffer is not mappable (heap type: %d)", b.heapType)
	}

	// For read-back buffers, specify the range to read
	var readRange *d3d12.D3D12_RANGE
	if b.heapType == d3d12.D3D12_HEAP_TYPE_READBACK {
		readRange = &d3d12.D3D12_RANGE{
			Begin: uintptr(offset),
			End:   uintptr(offset + size),
		}
	} else {
		// Upload buffers: range of 0 means we won't read
		readRange = &d3d12.D3D12_RANGE{Begin: 0, End: 0}
	}

	ptr, err := b.raw.Map(0, readRange)
	if err != nil {
		return nil, fmt.Errorf("dx12: buffer Map failed: %w", err)
	}

	b.mappedPointer = ptr
	// Return pointer offset by the requested offset
	return unsafe.Pointer(uintptr(ptr) + uintptr(offset)), nil
}

// Unmap unmaps the buffer memory.
func (b *Buffer) Unmap(offset, size uint64) {
	if b.mappedPointer == nil {
		return
	}

	// For upload buffers, specify the written range
	var writtenRange *d3d12.D3D12_RANGE
	if b.heapType == d3d12.D3D12_HEAP_TYPE_UPLOAD {
		writtenRange = &d3d12.D3D12_RANGE{
			Begin: uintptr(offset),
			End:   uintptr(offset + size),
		}
	}
	// For read-back buffers, pass nil (no writes)

	b.raw.Unmap(0, writtenRange)
	b.mappedPointer = nil
}

// Raw returns the underlying D3D12 resource.
func (b *Buffer) Raw() *d3d12.ID3D12Resource {
	return b.raw
}

// GPUVirtualAddress returns the GPU virtual address for this buffer.
func (b *Buffer) GPUVirtualAddress() uint64 {
	return b.gpuVA
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return b.size
}

// NativeHandle returns the GPU virtual address, used by the bind bridge to
// populate root descriptors and descriptor tables.
func (b *Buffer) NativeHandle() uint64 {
	return b.gpuVA
}

// -----------------------------------------------------------------------------
// Texture Implementation
// -----------------------------------------------------------------------------

// Texture implements hal.Texture for DirectX 12.
type Texture struct {
	raw        *d3d12.ID3D12Resource
	format     types.TextureFormat
	dimension  types.TextureDimension
	size       hal.Extent3D
	mipLevels  uint32
	samples    uint32
	usage      types.TextureUsage
	device     *Device
	isExternal bool // True for swapchain images (not owned)
}

// Destroy releases the texture resources.
func (t *Texture) Destroy() {
	if t.raw != nil && !t.isExternal {
		t.raw.Release()
		t.raw = nil
	}
}

// Raw returns the underlying D3D12 resource.
func (t *Texture) Raw() *d3d12.ID3D12Resource {
	return t.raw
}

// Format returns the texture format.
func (t *Texture) Format() types.TextureFormat {
	return t.format
}

// Dimension returns the texture dimension.
func (t *Texture) Dimension() types.TextureDimension {
	return t.dimension
}

// -----------------------------------------------------------------------------
// TextureView Implementation
// -----------------------------------------------------------------------------

// TextureView implements hal.TextureView for DirectX 12.
type TextureView struct {
	texture      *Texture
	format       types.TextureFormat
	dimension    types.TextureViewDimension
	baseMip      uint32
	mipCount     uint32
	baseLayer    uint32
	layerCount   uint32
	device       *Device
	srvHandle    d3d12.D3D12_CPU_DESCRIPTOR_HANDLE // Shader resource view (for sampling)
	rtvHandle    d3d12.D3D12_CPU_DESCRIPTOR_HANDLE // Render target view
	dsvHandle    d3d12.D3D12_CPU_DESCRIPTOR_HANDLE // Depth stencil view
	hasSRV       bool
	hasRTV       bool
	hasDSV       bool
	srvHeapIndex uint32
	rtvHeapIndex uint32
	dsvHeapIndex uint32

	// ownsHeapSlots is false for the lightweight view CreateTextureView
	// hands back for a swapchain back buffer: that view borrows the back
	// buffer's own RTV handle (tracked and recycled by Surface instead),
	// so Destroy must not free a heap slot it never allocated.
	ownsHeapSlots bool
}

// Destroy releases the texture view resources, recycling every heap
// slot it holds back to its owning descriptor heap.
func (v *TextureView) Destroy() {
	if v.ownsHeapSlots && v.device != nil {
		if v.hasSRV && v.device.viewHeap != nil {
			v.device.viewHeap.Free(v.srvHeapIndex, 1)
		}
		if v.hasRTV && v.device.rtvHeap != nil {
			v.device.rtvHeap.Free(v.rtvHeapIndex, 1)
		}
		if v.hasDSV && v.device.dsvHeap != nil {
			v.device.dsvHeap.Free(v.dsvHeapIndex, 1)
		}
	}
	v.hasSRV = false
	v.hasRTV = false
	v.hasDSV = false
	v.device = nil
}

// Texture returns the parent texture.
func (v *TextureView) Texture() *Texture {
	return v.texture
}

// RTVHandle returns the render target view descriptor handle.
func (v *TextureView) RTVHandle() d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	return v.rtvHandle
}

// DSVHandle returns the depth stencil view descriptor handle.
func (v *TextureView) DSVHandle() d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	return v.dsvHandle
}

// SRVHandle returns the shader resource view descriptor handle.
func (v *TextureView) SRVHandle() d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	return v.srvHandle
}

// HasRTV returns true if this view has a render target view.
func (v *TextureView) HasRTV() bool {
	return v.hasRTV
}

// HasDSV returns true if this view has a depth stencil view.
func (v *TextureView) HasDSV() bool {
	return v.hasDSV
}

// HasSRV returns true if this view has a shader resource view.
func (v *TextureView) HasSRV() bool {
	return v.hasSRV
}

// NativeHandle returns the CPU descriptor handle backing this view's
// shader-visible binding, used by the bind bridge.
func (v *TextureView) NativeHandle() uint64 {
	return uint64(v.srvHandle.Ptr)
}

// -----------------------------------------------------------------------------
// Sampler Implementation
// -----------------------------------------------------------------------------

// Sampler implements hal.Sampler for DirectX 12.
type Sampler struct {
	handle    d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	heapIndex uint32
	device    *Device
}

// Destroy releases the sampler resources, recycling its heap slot.
func (s *Sampler) Destroy() {
	if s.device != nil && s.device.samplerHeap != nil {
		s.device.samplerHeap.Free(s.heapIndex, 1)
	}
	s.device = nil
}

// Handle returns the sampler descriptor handle.
func (s *Sampler) Handle() d3d12.D3D12_CPU_DESCRIPTOR_HANDLE {
	return s.handle
}

// NativeHandle returns the CPU descriptor handle, used by the bind bridge.
func (s *Sampler) NativeHandle() uint64 {
	return uint64(s.handle.Ptr)
}

// -----------------------------------------------------------------------------
// Compile-time interface assertions
// -----------------------------------------------------------------------------

var (
	_ hal.Buffer      = (*Buffer)(nil)
	_ hal.Texture     = (*Texture)(nil)
	_ hal.TextureView = (*TextureView)(nil)
	_ hal.Sampler     = (*Sampler)(nil)
)
