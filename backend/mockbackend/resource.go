package mockbackend

import (
	"sync/atomic"

	"github.com/gfxkit/gfxkit/backend"
)

// Resource is a placeholder implementation for most HAL resource types. It
// satisfies hal.Resource with a no-op Destroy.
type Resource struct{}

// Destroy is a no-op.
func (r *Resource) Destroy() {}

// NativeHandle returns a zero handle; the mock backend has nothing backing
// it on the GPU.
func (r *Resource) NativeHandle() uint64 { return 0 }

// Buffer implements hal.Buffer with optional backing storage so
// WriteBuffer/ReadBuffer round-trip in tests.
type Buffer struct {
	Resource
	data []byte
}

// Texture implements hal.Texture.
type Texture struct {
	Resource
}

// Surface implements hal.Surface for the mock backend.
type Surface struct {
	Resource
	configured bool
}

// Configure marks the surface as configured.
func (s *Surface) Configure(_ hal.Device, _ *hal.SurfaceConfiguration) error {
	s.configured = true
	return nil
}

// Unconfigure marks the surface as unconfigured.
func (s *Surface) Unconfigure(_ hal.Device) {
	s.configured = false
}

// AcquireTexture returns a placeholder surface texture. fence is ignored.
func (s *Surface) AcquireTexture(_ hal.Fence) (*hal.AcquiredSurfaceTexture, error) {
	return &hal.AcquiredSurfaceTexture{
		Texture:    &SurfaceTexture{},
		Suboptimal: false,
	}, nil
}

// DiscardTexture is a no-op.
func (s *Surface) DiscardTexture(_ hal.SurfaceTexture) {}

// SurfaceTexture implements hal.SurfaceTexture.
type SurfaceTexture struct {
	Texture
}

// Fence implements hal.Fence with an atomic counter for synchronization.
type Fence struct {
	Resource
	value atomic.Uint64
}

var (
	_ hal.Buffer         = (*Buffer)(nil)
	_ hal.Texture        = (*Texture)(nil)
	_ hal.Surface        = (*Surface)(nil)
	_ hal.SurfaceTexture = (*SurfaceTexture)(nil)
	_ hal.Fence          = (*Fence)(nil)
)
