package mockbackend

import (
	"github.com/gfxkit/gfxkit/backend"
	"github.com/gfxkit/gfxkit/types"
)

// API implements hal.Backend for the mock backend.
type API struct{}

// Variant returns the backend type identifier.
func (API) Variant() types.Backend {
	return types.BackendEmpty
}

// CreateInstance creates a new mock instance. Always succeeds and returns a
// placeholder instance.
func (API) CreateInstance(_ *hal.InstanceDescriptor) (hal.Instance, error) {
	return &Instance{}, nil
}

// Instance implements hal.Instance for the mock backend.
type Instance struct{}

// CreateSurface creates a mock surface. Always succeeds regardless of
// display/window handles.
func (i *Instance) CreateSurface(_, _ uintptr) (hal.Surface, error) {
	return &Surface{}, nil
}

// EnumerateAdapters returns a single default mock adapter. surfaceHint is
// ignored.
func (i *Instance) EnumerateAdapters(_ hal.Surface) []hal.ExposedAdapter {
	return []hal.ExposedAdapter{
		{
			Adapter: &Adapter{},
			Info: types.AdapterInfo{
				Name:       "Mock Adapter",
				Vendor:     "gfxkit",
				VendorID:   0,
				DeviceID:   0,
				DeviceType: types.DeviceTypeOther,
				Driver:     "mock-1.0",
				DriverInfo: "No-operation backend for testing",
				Backend:    types.BackendEmpty,
			},
			Features: 0,
			Capabilities: hal.Capabilities{
				Limits: types.DefaultLimits(),
				AlignmentsMask: hal.Alignments{
					BufferCopyOffset: 4,
					BufferCopyPitch:  256,
				},
				DownlevelCapabilities: hal.DownlevelCapabilities{
					ShaderModel: 0,
					Flags:       0,
				},
			},
		},
	}
}

// Destroy is a no-op for the mock instance.
func (i *Instance) Destroy() {}

// Adapter implements hal.Adapter for the mock backend.
type Adapter struct{}

// Open opens a mock logical device. Always succeeds.
func (a *Adapter) Open(_ types.Features, _ types.Limits) (hal.OpenDevice, error) {
	return hal.OpenDevice{
		Device: &Device{},
		Queue:  &Queue{},
	}, nil
}

// TextureFormatCapabilities returns permissive capabilities for every
// format.
func (a *Adapter) TextureFormatCapabilities(_ types.TextureFormat) hal.TextureFormatCapabilities {
	return hal.TextureFormatCapabilities{
		Flags: hal.TextureFormatCapabilitySampled |
			hal.TextureFormatCapabilityRenderAttachment |
			hal.TextureFormatCapabilityStorage,
	}
}

// SurfaceCapabilities returns a minimal but valid capability set for any
// mock surface.
func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	if _, ok := surface.(*Surface); !ok {
		return nil
	}
	return &hal.SurfaceCapabilities{
		Formats:      []types.TextureFormat{types.TextureFormatBGRA8UnormSrgb},
		PresentModes: []types.PresentMode{types.PresentModeFifo},
		AlphaModes:   []types.CompositeAlphaMode{types.CompositeAlphaModeOpaque},
	}
}

// Destroy is a no-op for the mock adapter.
func (a *Adapter) Destroy() {}
