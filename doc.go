// Package wgpu provides a safe, ergonomic cross-backend graphics API for Go
// applications, generalized over two backend realizations: a D3D12-style
// table model (backend/tablemodel) and a Vulkan-style set model
// (backend/setmodel).
//
// This package wraps the lower-level backend/ (hal) interfaces into a
// user-friendly API aligned with the W3C WebGPU object model.
//
// # Quick Start
//
// Import this package and a backend registration package:
//
//	import (
//	    "github.com/gfxkit/gfxkit"
//	    _ "github.com/gfxkit/gfxkit/backend/allbackends"
//	)
//
//	instance, err := wgpu.CreateInstance(nil)
//	// ...
//
// # Resource Lifecycle
//
// All GPU resources must be explicitly released with Release().
// Release is idempotent; methods called on a released object return ErrReleased.
//
// # Backend Registration
//
// Backends are registered via blank imports:
//
//	_ "github.com/gfxkit/gfxkit/backend/allbackends"  // all available backends
//	_ "github.com/gfxkit/gfxkit/backend/setmodel"     // Vulkan only
//	_ "github.com/gfxkit/gfxkit/backend/mockbackend"  // testing
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use.
// Encoders (CommandEncoder, RenderPassEncoder) are NOT thread-safe.
package wgpu
