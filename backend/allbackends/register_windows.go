//go:build windows

package allbackends

import (
	// Vulkan (set-model) backend - cross-platform, available on Windows too.
	_ "github.com/gfxkit/gfxkit/backend/setmodel"

	// DX12 (table-model) backend - Windows only.
	_ "github.com/gfxkit/gfxkit/backend/tablemodel"
)
