package wgpu

import (
	"github.com/gfxkit/gfxkit/backend"
)

// CommandEncoder records GPU commands for later submission.
//
// A command encoder is single-use. After calling Finish(), the encoder
// cannot be used again. Call Device.CreateCommandEncoder() to create a new one.
//
// NOT thread-safe - do not use from multiple goroutines.
type CommandEncoder struct {
	hal      hal.CommandEncoder
	device   *Device
	released bool
}

// TextureBarrier transitions a surface texture between usage states
// (spec.md's table-model design requires the caller to sequence these
// explicitly, e.g. Uninitialized -> RenderAttachment before a render pass
// and back afterward, since gfxkit does no automatic resource-state
// tracking).
type TextureBarrier struct {
	Texture  *SurfaceTexture
	OldUsage TextureUsage
	NewUsage TextureUsage
}

// TransitionTextures records texture usage-state barriers.
func (e *CommandEncoder) TransitionTextures(barriers []TextureBarrier) {
	if e.released || len(barriers) == 0 {
		return
	}
	halBarriers := make([]hal.TextureBarrier, len(barriers))
	for i, b := range barriers {
		if b.Texture == nil {
			continue
		}
		halBarriers[i] = hal.TextureBarrier{
			Texture: b.Texture.hal,
			Usage:   hal.TextureUsageTransition{OldUsage: b.OldUsage, NewUsage: b.NewUsage},
		}
	}
	e.hal.TransitionTextures(halBarriers)
}

// BufferBarrier transitions a buffer between usage states.
type BufferBarrier struct {
	Buffer   *Buffer
	OldUsage BufferUsage
	NewUsage BufferUsage
}

// TransitionBuffers records buffer usage-state barriers.
func (e *CommandEncoder) TransitionBuffers(barriers []BufferBarrier) {
	if e.released || len(barriers) == 0 {
		return
	}
	halBarriers := make([]hal.BufferBarrier, len(barriers))
	for i, b := range barriers {
		if b.Buffer == nil {
			continue
		}
		halBarriers[i] = hal.BufferBarrier{
			Buffer: b.Buffer.hal,
			Usage:  hal.BufferUsageTransition{OldUsage: b.OldUsage, NewUsage: b.NewUsage},
		}
	}
	e.hal.TransitionBuffers(halBarriers)
}

// BeginRenderPass begins a render pass.
// The returned RenderPassEncoder records draw commands.
// Call RenderPassEncoder.End() when done.
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) (*RenderPassEncoder, error) {
	if e.released {
		return nil, ErrReleased
	}

	halDesc := desc.toHAL()
	halPass := e.hal.BeginRenderPass(halDesc)

	return &RenderPassEncoder{hal: halPass, encoder: e}, nil
}

// CopyBufferToBuffer copies data between buffers.
func (e *CommandEncoder) CopyBufferToBuffer(src *Buffer, srcOffset uint64, dst *Buffer, dstOffset uint64, size uint64) {
	if e.released || src == nil || dst == nil {
		return
	}
	e.hal.CopyBufferToBuffer(src.hal, dst.hal, []hal.BufferCopy{
		{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size},
	})
}

// CopyBufferToTexture copies data from a buffer to a texture.
func (e *CommandEncoder) CopyBufferToTexture(src *Buffer, dst *Texture, copies []hal.BufferTextureCopy) {
	if e.released || src == nil || dst == nil {
		return
	}
	e.hal.CopyBufferToTexture(src.hal, dst.hal, copies)
}

// CopyTextureToBuffer copies data from a texture to a buffer.
func (e *CommandEncoder) CopyTextureToBuffer(src *Texture, dst *Buffer, copies []hal.BufferTextureCopy) {
	if e.released || src == nil || dst == nil {
		return
	}
	e.hal.CopyTextureToBuffer(src.hal, dst.hal, copies)
}

// CopyTextureToTexture copies data between textures.
func (e *CommandEncoder) CopyTextureToTexture(src, dst *Texture, copies []hal.TextureCopy) {
	if e.released || src == nil || dst == nil {
		return
	}
	e.hal.CopyTextureToTexture(src.hal, dst.hal, copies)
}

// Finish completes command recording and returns a CommandBuffer.
// After calling Finish(), the encoder cannot be used again.
func (e *CommandEncoder) Finish() (*CommandBuffer, error) {
	if e.released {
		return nil, ErrReleased
	}
	e.released = true

	halCmdBuffer, err := e.hal.EndEncoding()
	if err != nil {
		return nil, err
	}

	return &CommandBuffer{hal: halCmdBuffer, device: e.device}, nil
}

// CommandBuffer holds recorded GPU commands ready for submission.
// Created by CommandEncoder.Finish().
type CommandBuffer struct {
	hal    hal.CommandBuffer
	device *Device
}
