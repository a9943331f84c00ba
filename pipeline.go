package wgpu

import "github.com/gfxkit/gfxkit/backend"

// GraphicsPipelineState represents a configured render pipeline.
type GraphicsPipelineState struct {
	hal      hal.GraphicsPipelineState
	device   *Device
	released bool
}

// Release destroys the render pipeline.
func (p *GraphicsPipelineState) Release() {
	if p.released {
		return
	}
	p.released = true
	halDevice := p.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyGraphicsPipelineState(p.hal)
	}
}
