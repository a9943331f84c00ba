package mockbackend

import (
	"time"

	"github.com/gfxkit/gfxkit/backend"
)

// Device implements hal.Device for the mock backend.
type Device struct{}

// CreateBuffer creates a mock buffer. Optionally stores data if
// MappedAtCreation is true.
func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if desc.MappedAtCreation {
		return &Buffer{data: make([]byte, desc.Size)}, nil
	}
	return &Buffer{}, nil
}

// DestroyBuffer is a no-op.
func (d *Device) DestroyBuffer(_ hal.Buffer) {}

// CreateTexture creates a mock texture.
func (d *Device) CreateTexture(_ *hal.TextureDescriptor) (hal.Texture, error) {
	return &Texture{}, nil
}

// DestroyTexture is a no-op.
func (d *Device) DestroyTexture(_ hal.Texture) {}

// CreateTextureView creates a mock texture view.
func (d *Device) CreateTextureView(_ hal.Texture, _ *hal.TextureViewDescriptor) (hal.TextureView, error) {
	return &Resource{}, nil
}

// DestroyTextureView is a no-op.
func (d *Device) DestroyTextureView(_ hal.TextureView) {}

// CreateSampler creates a mock sampler.
func (d *Device) CreateSampler(_ *hal.SamplerDescriptor) (hal.Sampler, error) {
	return &Resource{}, nil
}

// DestroySampler is a no-op.
func (d *Device) DestroySampler(_ hal.Sampler) {}

// CreateDescriptorSetLayout creates a mock descriptor set layout.
func (d *Device) CreateDescriptorSetLayout(_ *hal.DescriptorSetLayoutDescriptor) (hal.DescriptorSetLayout, error) {
	return &Resource{}, nil
}

// DestroyDescriptorSetLayout is a no-op.
func (d *Device) DestroyDescriptorSetLayout(_ hal.DescriptorSetLayout) {}

// CreateDescriptorSet creates a mock descriptor set.
func (d *Device) CreateDescriptorSet(_ *hal.DescriptorSetDescriptor) (hal.DescriptorSet, error) {
	return &Resource{}, nil
}

// DestroyDescriptorSet is a no-op.
func (d *Device) DestroyDescriptorSet(_ hal.DescriptorSet) {}

// CreateRootSignature creates a mock root signature.
func (d *Device) CreateRootSignature(_ *hal.RootSignatureDescriptor) (hal.RootSignature, error) {
	return &Resource{}, nil
}

// DestroyRootSignature is a no-op.
func (d *Device) DestroyRootSignature(_ hal.RootSignature) {}

// CreateShaderModule creates a mock shader module.
func (d *Device) CreateShaderModule(_ *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	return &Resource{}, nil
}

// DestroyShaderModule is a no-op.
func (d *Device) DestroyShaderModule(_ hal.ShaderModule) {}

// CreateGraphicsPipelineState creates a mock graphics pipeline.
func (d *Device) CreateGraphicsPipelineState(_ *hal.GraphicsPipelineStateDescriptor) (hal.GraphicsPipelineState, error) {
	return &Resource{}, nil
}

// DestroyGraphicsPipelineState is a no-op.
func (d *Device) DestroyGraphicsPipelineState(_ hal.GraphicsPipelineState) {}

// CreateCommandEncoder creates a mock command encoder.
func (d *Device) CreateCommandEncoder(_ *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return &CommandEncoder{}, nil
}

// FreeCommandBuffer is a no-op.
func (d *Device) FreeCommandBuffer(_ hal.CommandBuffer) {}

// CreateFence creates a mock fence backed by an atomic counter.
func (d *Device) CreateFence() (hal.Fence, error) {
	return &Fence{}, nil
}

// DestroyFence is a no-op.
func (d *Device) DestroyFence(_ hal.Fence) {}

// Wait simulates waiting for a fence value. Returns true immediately once
// the fence has reached value.
func (d *Device) Wait(fence hal.Fence, value uint64, _ time.Duration) (bool, error) {
	f, ok := fence.(*Fence)
	if !ok {
		return true, nil
	}
	return f.value.Load() >= value, nil
}

// WaitIdle is a no-op for the mock device.
func (d *Device) WaitIdle() error { return nil }

// Destroy is a no-op for the mock device.
func (d *Device) Destroy() {}

var _ hal.Device = (*Device)(nil)
