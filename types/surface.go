package types

// PresentMode controls how presented frames are synchronized to the
// display's refresh rate.
type PresentMode uint8

const (
	// PresentModeFifo waits for vblank, never tearing (always supported).
	PresentModeFifo PresentMode = iota
	// PresentModeFifoRelaxed is like Fifo but allows tearing if the frame
	// arrives late, instead of stalling.
	PresentModeFifoRelaxed
	// PresentModeImmediate presents without waiting for vblank, tearing if
	// the frame isn't ready in time.
	PresentModeImmediate
	// PresentModeMailbox replaces the queued frame instead of blocking,
	// never tearing.
	PresentModeMailbox
)

// CompositeAlphaMode controls how a surface's alpha channel composites
// with the content behind it.
type CompositeAlphaMode uint8

const (
	// CompositeAlphaModeAuto lets the backend choose a supported mode.
	CompositeAlphaModeAuto CompositeAlphaMode = iota
	// CompositeAlphaModeOpaque ignores alpha; the surface is fully opaque.
	CompositeAlphaModeOpaque
	// CompositeAlphaModePremultiplied composites alpha-premultiplied color.
	CompositeAlphaModePremultiplied
	// CompositeAlphaModeUnpremultiplied composites straight-alpha color.
	CompositeAlphaModeUnpremultiplied
	// CompositeAlphaModeInherit uses whatever mode the platform surface
	// was created with.
	CompositeAlphaModeInherit
)
