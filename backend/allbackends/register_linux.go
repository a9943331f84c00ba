//go:build linux && !android

package allbackends

import (
	// Vulkan (set-model) backend - the only backend on Linux.
	_ "github.com/gfxkit/gfxkit/backend/setmodel"
)
