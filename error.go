package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gfxkit/gfxkit/backend"
)

// Sentinel errors re-exported from HAL.
var (
	ErrDeviceLost      = hal.ErrDeviceLost
	ErrOutOfMemory     = hal.ErrDeviceOutOfMemory
	ErrSurfaceLost     = hal.ErrSurfaceLost
	ErrSurfaceOutdated = hal.ErrSurfaceOutdated
	ErrTimeout         = hal.ErrTimeout
)

// Public API sentinel errors.
var (
	// ErrReleased is returned when operating on a released resource.
	ErrReleased = errors.New("wgpu: resource already released")

	// ErrNoAdapters is returned when no GPU adapters are found.
	ErrNoAdapters = errors.New("wgpu: no GPU adapters available")

	// ErrNoBackends is returned when no backends are registered.
	ErrNoBackends = errors.New("wgpu: no backends registered (import a backend package)")
)

// ErrorFilter specifies which error types to capture in an error scope.
type ErrorFilter int

const (
	// ErrorFilterValidation captures validation errors.
	ErrorFilterValidation ErrorFilter = iota

	// ErrorFilterOutOfMemory captures out-of-memory errors.
	ErrorFilterOutOfMemory

	// ErrorFilterInternal captures internal errors.
	ErrorFilterInternal
)

// String returns a human-readable name for the error filter.
func (f ErrorFilter) String() string {
	switch f {
	case ErrorFilterValidation:
		return "Validation"
	case ErrorFilterOutOfMemory:
		return "OutOfMemory"
	case ErrorFilterInternal:
		return "Internal"
	default:
		return fmt.Sprintf("ErrorFilter(%d)", int(f))
	}
}

// GPUError represents a captured GPU error from an error scope.
type GPUError struct {
	Type    ErrorFilter
	Message string
}

// Error implements the error interface.
func (e *GPUError) Error() string {
	return fmt.Sprintf("GPU %s error: %s", e.Type, e.Message)
}

// errorScope represents a single entry in the error scope stack.
type errorScope struct {
	filter ErrorFilter
	err    *GPUError
}

// errorScopeManager manages a device's stack of error scopes.
//
// Scopes are LIFO: the most recently pushed scope is checked first when
// reporting errors, mirroring the W3C WebGPU error scope model.
type errorScopeManager struct {
	mu     sync.Mutex
	scopes []errorScope
}

func (m *errorScopeManager) push(filter ErrorFilter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scopes = append(m.scopes, errorScope{filter: filter})
}

func (m *errorScopeManager) pop() (*GPUError, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.scopes) == 0 {
		return nil, fmt.Errorf("error scope stack is empty: no matching PushErrorScope")
	}

	last := len(m.scopes) - 1
	scope := m.scopes[last]
	m.scopes = m.scopes[:last]
	return scope.err, nil
}

func (m *errorScopeManager) report(filter ErrorFilter, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.scopes) - 1; i >= 0; i-- {
		if m.scopes[i].filter == filter {
			if m.scopes[i].err == nil {
				m.scopes[i].err = &GPUError{Type: filter, Message: message}
			}
			return true
		}
	}
	return false
}

// PushErrorScope pushes a new error scope onto the device's error scope
// stack. The scope captures the first error matching filter.
func (d *Device) PushErrorScope(filter ErrorFilter) {
	d.scopes().push(filter)
}

// PopErrorScope pops the most recently pushed error scope and returns the
// captured error, if any. Panics if the stack is empty.
func (d *Device) PopErrorScope() *GPUError {
	gpuErr, err := d.scopes().pop()
	if err != nil {
		panic(fmt.Sprintf("PopErrorScope: %v", err))
	}
	return gpuErr
}

// reportError delivers a GPU error to the topmost matching error scope.
// Returns true if captured, false if uncaptured.
func (d *Device) reportError(filter ErrorFilter, message string) bool {
	return d.scopes().report(filter, message)
}

func (d *Device) scopes() *errorScopeManager {
	if d.errorScopes == nil {
		d.errorScopes = &errorScopeManager{}
	}
	return d.errorScopes
}
