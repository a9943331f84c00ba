// Package mockbackend provides a no-operation graphics backend.
//
// It implements every HAL interface but performs no actual GPU work. It is
// useful for:
//   - Testing code without GPU hardware
//   - CI/CD environments without GPU access
//   - A reference implementation showing the minimal HAL surface a backend
//     must satisfy
//   - A fallback when no real backend is available
//
// All operations succeed immediately and return placeholder resources. The
// backend identifies itself as types.BackendEmpty.
package mockbackend
