// Package allbackends imports all backend implementations for side
// effects, registering them with backend.RegisterBackendFactory.
//
//	import _ "github.com/gfxkit/gfxkit/backend/allbackends"
//
// This registers:
//   - backend/setmodel   (Vulkan, all platforms)
//   - backend/tablemodel (DX12, Windows only)
//
// After importing, use backend.GetBackend or backend.SelectBestBackend.
package allbackends
