//go:build darwin

package allbackends

import (
	// Vulkan (set-model) backend, via MoltenVK.
	_ "github.com/gfxkit/gfxkit/backend/setmodel"
)
