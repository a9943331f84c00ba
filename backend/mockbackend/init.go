package mockbackend

import "github.com/gfxkit/gfxkit/backend"

// init registers the mock backend with the HAL registry.
func init() {
	hal.RegisterBackend(API{})
}
