package wgpu

import (
	"github.com/gfxkit/gfxkit/backend"
)

// RenderPassEncoder records draw commands within a render pass.
//
// Created by CommandEncoder.BeginRenderPass().
// Must be ended with End() before the CommandEncoder can be finished.
//
// NOT thread-safe.
type RenderPassEncoder struct {
	hal     hal.RenderPassEncoder
	encoder *CommandEncoder
}

// SetPipeline sets the active render pipeline.
func (p *RenderPassEncoder) SetPipeline(pipeline *GraphicsPipelineState) {
	if pipeline == nil {
		return
	}
	p.hal.SetPipeline(pipeline.hal)
}

// SetDescriptorSet sets a descriptor set for the given index.
func (p *RenderPassEncoder) SetDescriptorSet(index uint32, set *DescriptorSet, offsets []uint32) {
	if set == nil {
		return
	}
	p.hal.SetDescriptorSet(index, set.hal, offsets)
}

// SetPushConstants writes data into the root signature's push-constant
// range visible to stages, starting at offset bytes.
func (p *RenderPassEncoder) SetPushConstants(stages ShaderStages, offset uint32, data []byte) {
	p.hal.SetPushConstants(stages, offset, data)
}

// SetRootDescriptor binds buffer directly at rootIndex, bypassing the
// descriptor table/set mechanism (a promoted CBuffer/Buffer/RWBuffer).
func (p *RenderPassEncoder) SetRootDescriptor(rootIndex uint32, buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.hal.SetRootDescriptor(rootIndex, buffer.hal, offset)
}

// SetVertexBuffer sets a vertex buffer for the given slot.
func (p *RenderPassEncoder) SetVertexBuffer(slot uint32, buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.hal.SetVertexBuffer(slot, buffer.hal, offset)
}

// SetIndexBuffer sets the index buffer.
func (p *RenderPassEncoder) SetIndexBuffer(buffer *Buffer, format IndexFormat, offset uint64) {
	if buffer == nil {
		return
	}
	p.hal.SetIndexBuffer(buffer.hal, format, offset)
}

// SetViewport sets the viewport transformation.
func (p *RenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	p.hal.SetViewport(x, y, width, height, minDepth, maxDepth)
}

// SetScissorRect sets the scissor rectangle for clipping.
func (p *RenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	p.hal.SetScissorRect(x, y, width, height)
}

// SetBlendConstant sets the blend constant color.
func (p *RenderPassEncoder) SetBlendConstant(color *Color) {
	p.hal.SetBlendConstant(color)
}

// SetStencilReference sets the stencil reference value.
func (p *RenderPassEncoder) SetStencilReference(reference uint32) {
	p.hal.SetStencilReference(reference)
}

// Draw draws primitives.
func (p *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.hal.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed draws indexed primitives.
func (p *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.hal.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

// DrawIndirect draws primitives with GPU-generated parameters.
func (p *RenderPassEncoder) DrawIndirect(buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.hal.DrawIndirect(buffer.hal, offset)
}

// DrawIndexedIndirect draws indexed primitives with GPU-generated parameters.
func (p *RenderPassEncoder) DrawIndexedIndirect(buffer *Buffer, offset uint64) {
	if buffer == nil {
		return
	}
	p.hal.DrawIndexedIndirect(buffer.hal, offset)
}

// End ends the render pass.
// After this call, the encoder cannot be used again.
func (p *RenderPassEncoder) End() {
	p.hal.End()
}
