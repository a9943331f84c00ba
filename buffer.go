package wgpu

import (
	"github.com/gfxkit/gfxkit/backend"
)

// Buffer represents a GPU buffer.
type Buffer struct {
	hal      hal.Buffer
	device   *Device
	size     uint64
	usage    BufferUsage
	label    string
	released bool
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// Release destroys the buffer.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	halDevice := b.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyBuffer(b.hal)
	}
}
