package wgpu

import (
	"fmt"

	"github.com/gfxkit/gfxkit/backend"
	"github.com/gfxkit/gfxkit/types"
)

// Device represents a logical GPU device.
// It is the main interface for creating GPU resources.
//
// Thread-safe for concurrent use.
type Device struct {
	hal         hal.Device
	queue       *Queue
	features    Features
	limits      Limits
	label       string
	released    bool
	errorScopes *errorScopeManager
}

// Queue returns the device's command queue.
func (d *Device) Queue() *Queue {
	return d.queue
}

// Features returns the device's enabled features.
func (d *Device) Features() Features { return d.features }

// Limits returns the device's resource limits.
func (d *Device) Limits() Limits { return d.limits }

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: buffer descriptor is nil")
	}

	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             desc.Size,
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	}

	halBuffer, err := d.hal.CreateBuffer(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create buffer: %w", err)
	}

	return &Buffer{hal: halBuffer, device: d, size: desc.Size, usage: desc.Usage, label: desc.Label}, nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: texture descriptor is nil")
	}

	halDesc := &hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, DepthOrArrayLayers: desc.Size.DepthOrArrayLayers},
		MipLevelCount: desc.MipLevelCount,
		SampleCount:   desc.SampleCount,
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         desc.Usage,
		ViewFormats:   desc.ViewFormats,
	}

	halTexture, err := d.hal.CreateTexture(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create texture: %w", err)
	}

	return &Texture{hal: halTexture, device: d, format: desc.Format}, nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture *Texture, desc *TextureViewDescriptor) (*TextureView, error) {
	if d.released {
		return nil, ErrReleased
	}
	if texture == nil {
		return nil, fmt.Errorf("wgpu: texture is nil")
	}

	halDesc := &hal.TextureViewDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.Format = desc.Format
		halDesc.Dimension = desc.Dimension
		halDesc.Aspect = desc.Aspect
		halDesc.BaseMipLevel = desc.BaseMipLevel
		halDesc.MipLevelCount = desc.MipLevelCount
		halDesc.BaseArrayLayer = desc.BaseArrayLayer
		halDesc.ArrayLayerCount = desc.ArrayLayerCount
	}

	halView, err := d.hal.CreateTextureView(texture.hal, halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create texture view: %w", err)
	}

	return &TextureView{hal: halView, device: d, texture: texture}, nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *SamplerDescriptor) (*Sampler, error) {
	if d.released {
		return nil, ErrReleased
	}

	halDesc := &hal.SamplerDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.AddressModeU = desc.AddressModeU
		halDesc.AddressModeV = desc.AddressModeV
		halDesc.AddressModeW = desc.AddressModeW
		halDesc.MagFilter = desc.MagFilter
		halDesc.MinFilter = desc.MinFilter
		halDesc.MipmapFilter = desc.MipmapFilter
		halDesc.LodMinClamp = desc.LodMinClamp
		halDesc.LodMaxClamp = desc.LodMaxClamp
		halDesc.Compare = desc.Compare
		halDesc.Anisotropy = desc.Anisotropy
	}

	halSampler, err := d.hal.CreateSampler(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create sampler: %w", err)
	}

	return &Sampler{hal: halSampler, device: d}, nil
}

// CreateShaderModule registers a shader module from precompiled bytecode.
func (d *Device) CreateShaderModule(desc *ShaderModuleDescriptor) (*ShaderModule, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: shader module descriptor is nil")
	}

	halModule, err := d.hal.CreateShaderModule(desc.toHAL())
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}

	return &ShaderModule{hal: halModule, device: d}, nil
}

// CreateDescriptorSetLayout creates a descriptor set layout.
func (d *Device) CreateDescriptorSetLayout(desc *DescriptorSetLayoutDescriptor) (*DescriptorSetLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: descriptor set layout descriptor is nil")
	}

	halDesc := &hal.DescriptorSetLayoutDescriptor{
		Label:   desc.Label,
		Entries: desc.Entries,
	}

	halLayout, err := d.hal.CreateDescriptorSetLayout(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create descriptor set layout: %w", err)
	}

	return &DescriptorSetLayout{hal: halLayout, device: d}, nil
}

// CreateRootSignature compiles a root signature from its descriptor set
// layouts and push-constant ranges.
func (d *Device) CreateRootSignature(desc *RootSignatureDescriptor) (*RootSignature, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: root signature descriptor is nil")
	}

	halLayouts := make([]hal.DescriptorSetLayout, len(desc.DescriptorSetLayouts))
	for i, layout := range desc.DescriptorSetLayouts {
		halLayouts[i] = layout.hal
	}

	halRanges := make([]hal.PushConstantRange, len(desc.PushConstantRanges))
	for i, r := range desc.PushConstantRanges {
		halRanges[i] = hal.PushConstantRange{
			Stages: r.Stages,
			Range:  hal.Range{Start: r.Start, End: r.End},
		}
	}

	halDesc := &hal.RootSignatureDescriptor{
		Label:                desc.Label,
		DescriptorSetLayouts: halLayouts,
		PushConstantRanges:   halRanges,
	}

	halSig, err := d.hal.CreateRootSignature(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create root signature: %w", err)
	}

	return &RootSignature{hal: halSig, device: d}, nil
}

// CreateDescriptorSet allocates and populates a descriptor set.
func (d *Device) CreateDescriptorSet(desc *DescriptorSetDescriptor) (*DescriptorSet, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: descriptor set descriptor is nil")
	}

	halEntries := make([]types.DescriptorSetEntry, len(desc.Entries))
	for i, entry := range desc.Entries {
		halEntries[i] = entry.toHAL()
	}

	halDesc := &hal.DescriptorSetDescriptor{
		Label:   desc.Label,
		Layout:  desc.Layout.hal,
		Entries: halEntries,
	}

	halSet, err := d.hal.CreateDescriptorSet(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create descriptor set: %w", err)
	}

	return &DescriptorSet{hal: halSet, device: d}, nil
}

// CreateGraphicsPipelineState creates a graphics pipeline.
func (d *Device) CreateGraphicsPipelineState(desc *GraphicsPipelineStateDescriptor) (*GraphicsPipelineState, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("wgpu: graphics pipeline descriptor is nil")
	}

	halDesc := desc.toHAL()

	halPipeline, err := d.hal.CreateGraphicsPipelineState(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create graphics pipeline: %w", err)
	}

	return &GraphicsPipelineState{hal: halPipeline, device: d}, nil
}

// CreateCommandEncoder creates a command encoder for recording GPU commands.
func (d *Device) CreateCommandEncoder(desc *CommandEncoderDescriptor) (*CommandEncoder, error) {
	if d.released {
		return nil, ErrReleased
	}

	halDesc := &hal.CommandEncoderDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
	}

	halEncoder, err := d.hal.CreateCommandEncoder(halDesc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create command encoder: %w", err)
	}
	if err := halEncoder.BeginEncoding(halDesc.Label); err != nil {
		return nil, fmt.Errorf("wgpu: failed to begin encoding: %w", err)
	}

	return &CommandEncoder{hal: halEncoder, device: d}, nil
}

// WaitIdle waits for all GPU work to complete.
func (d *Device) WaitIdle() error {
	if d.released {
		return ErrReleased
	}
	return d.hal.WaitIdle()
}

// Release releases the device and all associated resources.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true

	if d.queue != nil {
		d.queue.release()
	}

	d.hal.Destroy()
}

// halDevice returns the underlying backend device for direct resource
// creation by wrapper types that need it (nil once released).
func (d *Device) halDevice() hal.Device {
	if d.released {
		return nil
	}
	return d.hal
}
