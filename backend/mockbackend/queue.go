package mockbackend

import (
	"fmt"

	"github.com/gfxkit/gfxkit/backend"
)

// Queue implements hal.Queue for the mock backend.
type Queue struct{}

// Submit simulates command buffer submission, signaling fence with
// fenceValue if fence is non-nil.
func (q *Queue) Submit(_ []hal.CommandBuffer, fence hal.Fence, fenceValue uint64) error {
	if f, ok := fence.(*Fence); ok {
		f.value.Store(fenceValue)
	}
	return nil
}

// WriteBuffer copies data into the buffer's backing storage, if any.
func (q *Queue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	if b, ok := buffer.(*Buffer); ok && b.data != nil {
		copy(b.data[offset:], data)
	}
}

// WriteTexture is a no-op; the mock backend does not store texture data.
func (q *Queue) WriteTexture(_ *hal.ImageCopyTexture, _ []byte, _ *hal.ImageDataLayout, _ *hal.Extent3D) {
}

// ReadBuffer copies data out of the buffer's backing storage, if any.
func (q *Queue) ReadBuffer(buffer hal.Buffer, offset uint64, data []byte) error {
	b, ok := buffer.(*Buffer)
	if !ok || b.data == nil {
		return fmt.Errorf("mockbackend: buffer has no backing storage to read")
	}
	copy(data, b.data[offset:])
	return nil
}

// Present always succeeds.
func (q *Queue) Present(_ hal.Surface, _ hal.SurfaceTexture) error {
	return nil
}

var _ hal.Queue = (*Queue)(nil)
