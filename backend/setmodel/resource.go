// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"github.com/gfxkit/gfxkit/backend/setmodel/memory"
	"github.com/gfxkit/gfxkit/backend/setmodel/vk"
	"github.com/gfxkit/gfxkit/types"
)

// Buffer implements hal.Buffer for Vulkan.
type Buffer struct {
	handle vk.Buffer
	memory *memory.MemoryBlock
	size   uint64
	usage  types.BufferUsage
	device *Device
}

// Destroy releases the buffer.
func (b *Buffer) Destroy() {
	if b.device != nil {
		b.device.DestroyBuffer(b)
	}
}

// Handle returns the VkBuffer handle.
func (b *Buffer) Handle() vk.Buffer {
	return b.handle
}

// NativeHandle returns the VkBuffer handle widened to uint64, used by the
// bind bridge to populate descriptor writes.
func (b *Buffer) NativeHandle() uint64 {
	return uint64(b.handle)
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return b.size
}

// Texture implements hal.Texture for Vulkan.
type Texture struct {
	handle     vk.Image
	memory     *memory.MemoryBlock
	size       Extent3D
	format     types.TextureFormat
	usage      types.TextureUsage
	mipLevels  uint32
	samples    uint32
	dimension  types.TextureDimension
	device     *Device
	isExternal bool // True if memory is not owned by us (swapchain images)
}

// Extent3D represents 3D dimensions.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Destroy releases the texture.
func (t *Texture) Destroy() {
	if t.device != nil {
		t.device.DestroyTexture(t)
	}
}

// Handle returns the VkImage handle.
func (t *Texture) Handle() vk.Image {
	return t.handle
}

// TextureView implements hal.TextureView for Vulkan.
type TextureView struct {
	handle  vk.ImageView
	texture *Texture
	device  *Device
}

// Destroy releases the texture view.
func (v *TextureView) Destroy() {
	if v.device != nil {
		v.device.DestroyTextureView(v)
	}
}

// Handle returns the VkImageView handle.
func (v *TextureView) Handle() vk.ImageView {
	return v.handle
}

// NativeHandle returns the VkImageView handle widened to uint64, used by
// the bind bridge.
func (v *TextureView) NativeHandle() uint64 {
	return uint64(v.handle)
}

// Sampler implements hal.Sampler for Vulkan.
type Sampler struct {
	handle vk.Sampler
	device *Device
}

// Destroy releases the sampler.
func (s *Sampler) Destroy() {
	if s.device != nil {
		s.device.DestroySampler(s)
	}
}

// Handle returns the VkSampler handle.
func (s *Sampler) Handle() vk.Sampler {
	return s.handle
}

// NativeHandle returns the VkSampler handle widened to uint64, used by the
// bind bridge.
func (s *Sampler) NativeHandle() uint64 {
	return uint64(s.handle)
}

// ShaderModule implements hal.ShaderModule for Vulkan.
type ShaderModule struct {
	handle vk.ShaderModule
	device *Device
}

// Destroy releases the shader module.
func (m *ShaderModule) Destroy() {
	if m.device != nil {
		m.device.DestroyShaderModule(m)
	}
}

// Handle returns the VkShaderModule handle.
func (m *ShaderModule) Handle() vk.ShaderModule {
	return m.handle
}

// DescriptorSetLayout implements hal.DescriptorSetLayout for Vulkan.
type DescriptorSetLayout struct {
	handle vk.DescriptorSetLayout
	counts DescriptorCounts // Descriptor counts for pool allocation
	device *Device
}

// Destroy releases the bind group layout.
func (l *DescriptorSetLayout) Destroy() {
	if l.device != nil {
		l.device.DestroyDescriptorSetLayout(l)
	}
}

// Handle returns the VkDescriptorSetLayout handle.
func (l *DescriptorSetLayout) Handle() vk.DescriptorSetLayout {
	return l.handle
}

// Counts returns the descriptor counts for this layout.
func (l *DescriptorSetLayout) Counts() DescriptorCounts {
	return l.counts
}

// DescriptorSet implements hal.DescriptorSet for Vulkan.
type DescriptorSet struct {
	handle vk.DescriptorSet
	pool   *DescriptorPool // Reference to the pool for freeing
	device *Device
}

// Destroy releases the bind group.
func (g *DescriptorSet) Destroy() {
	if g.device != nil {
		g.device.DestroyDescriptorSet(g)
	}
}

// Handle returns the VkDescriptorSet handle.
func (g *DescriptorSet) Handle() vk.DescriptorSet {
	return g.handle
}

// RootSignature implements hal.RootSignature for Vulkan.
type RootSignature struct {
	handle vk.RootSignature
	device *Device
}

// Destroy releases the pipeline layout.
func (l *RootSignature) Destroy() {
	if l.device != nil {
		l.device.DestroyRootSignature(l)
	}
}

// Handle returns the VkRootSignature handle.
func (l *RootSignature) Handle() vk.RootSignature {
	return l.handle
}

// GraphicsPipelineState implements hal.GraphicsPipelineState for Vulkan.
type GraphicsPipelineState struct {
	handle vk.Pipeline
	layout vk.RootSignature
	device *Device
}

// Destroy releases the render pipeline.
func (p *GraphicsPipelineState) Destroy() {
	if p.device != nil {
		p.device.DestroyGraphicsPipelineState(p)
	}
}

// Fence implements hal.Fence for Vulkan.
type Fence struct {
	handle vk.Fence
	value  uint64 //nolint:unused // Will be used for timeline semaphores
	device *Device
}

// Destroy releases the fence.
func (f *Fence) Destroy() {
	if f.device != nil {
		f.device.DestroyFence(f)
	}
}

// Handle returns the VkFence handle.
func (f *Fence) Handle() vk.Fence {
	return f.handle
}

var (
	_ hal.Buffer              = (*Buffer)(nil)
	_ hal.Texture             = (*Texture)(nil)
	_ hal.TextureView         = (*TextureView)(nil)
	_ hal.Sampler             = (*Sampler)(nil)
	_ hal.ShaderModule        = (*ShaderModule)(nil)
	_ hal.DescriptorSetLayout = (*DescriptorSetLayout)(nil)
	_ hal.DescriptorSet       = (*DescriptorSet)(nil)
	_ hal.RootSignature       = (*RootSignature)(nil)
	_ hal.GraphicsPipelineState = (*GraphicsPipelineState)(nil)
	_ hal.Fence                 = (*Fence)(nil)
)
