package wgpu

import "github.com/gfxkit/gfxkit/backend"

// DescriptorSetLayout defines the structure of resource bindings for shaders.
type DescriptorSetLayout struct {
	hal      hal.DescriptorSetLayout
	device   *Device
	released bool
}

// Release destroys the bind group layout.
func (l *DescriptorSetLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	halDevice := l.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyDescriptorSetLayout(l.hal)
	}
}

// RootSignature defines the resource layout for a pipeline.
type RootSignature struct {
	hal      hal.RootSignature
	device   *Device
	released bool
}

// Release destroys the pipeline layout.
func (l *RootSignature) Release() {
	if l.released {
		return
	}
	l.released = true
	halDevice := l.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyRootSignature(l.hal)
	}
}

// DescriptorSet represents bound GPU resources for shader access.
type DescriptorSet struct {
	hal      hal.DescriptorSet
	device   *Device
	released bool
}

// Release destroys the bind group.
func (g *DescriptorSet) Release() {
	if g.released {
		return
	}
	g.released = true
	halDevice := g.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyDescriptorSet(g.hal)
	}
}
