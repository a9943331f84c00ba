package wgpu

import (
	"fmt"

	"github.com/gfxkit/gfxkit/backend"
	_ "github.com/gfxkit/gfxkit/backend/allbackends"
	"github.com/gfxkit/gfxkit/types"
)

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	Backends Backends
}

// Instance is the entry point for GPU operations. It owns one backend
// instance per registered backend (table-model and/or set-model,
// whichever backend/allbackends wired in for this platform).
//
// Instance methods are safe for concurrent use, except Release() which
// must not be called concurrently with other methods.
type Instance struct {
	byBackend map[types.Backend]hal.Instance
	order     []types.Backend
	released  bool
}

// CreateInstance creates a new GPU instance.
// If desc is nil, all available backends are used.
func CreateInstance(desc *InstanceDescriptor) (*Instance, error) {
	gpuDesc := types.DefaultInstanceDescriptor()
	if desc != nil {
		gpuDesc.Backends = desc.Backends
	}

	inst := &Instance{byBackend: make(map[types.Backend]hal.Instance)}
	for _, variant := range []types.Backend{types.BackendDX12, types.BackendVulkan} {
		if !gpuDesc.Backends.Contains(variant) {
			continue
		}
		b, ok := hal.GetBackend(variant)
		if !ok {
			continue
		}
		halInstance, err := b.CreateInstance(&hal.InstanceDescriptor{
			Backends:           gpuDesc.Backends,
			Flags:              gpuDesc.Flags,
			Dx12ShaderCompiler: gpuDesc.Dx12ShaderCompiler,
			GLBackend:          gpuDesc.GlBackend,
		})
		if err != nil {
			continue
		}
		inst.byBackend[variant] = halInstance
		inst.order = append(inst.order, variant)
	}

	if len(inst.order) == 0 {
		return nil, fmt.Errorf("wgpu: no backend available for requested backend set")
	}

	return inst, nil
}

// RequestAdapter requests a GPU adapter matching the options.
// If opts is nil, the best available adapter across all instantiated
// backends is returned (table-model preferred on its native platform).
func (i *Instance) RequestAdapter(opts *RequestAdapterOptions) (*Adapter, error) {
	if i.released {
		return nil, ErrReleased
	}

	for _, variant := range i.order {
		halInstance := i.byBackend[variant]
		exposed := halInstance.EnumerateAdapters(nil)
		if len(exposed) == 0 {
			continue
		}
		chosen := exposed[0]
		return &Adapter{
			hal:      chosen.Adapter,
			info:     chosen.Info,
			features: chosen.Features,
			limits:   chosen.Capabilities.Limits,
			instance: i,
		}, nil
	}

	return nil, fmt.Errorf("wgpu: no adapter available")
}

// Release releases the instance and all associated resources.
func (i *Instance) Release() {
	if i.released {
		return
	}
	i.released = true
	for _, halInstance := range i.byBackend {
		halInstance.Destroy()
	}
}
