// Package descalloc implements the descriptor and per-frame memory
// allocators shared by the table-model and set-model backends.
//
// # Allocators
//
//   - BuddyAllocator: power-of-2 index-range allocator, O(log n)
//     allocate/free, used to back a single page of a CPU descriptor heap.
//   - CPUHeap: a paged CpuDescriptorAllocator. Each page owns a
//     BuddyAllocator; allocation probes a hint page, then walks pages,
//     then appends a new page on exhaustion. Idle pages beyond a
//     configurable watermark are dropped on free.
//   - GPUHeap: a GpuDescriptorAllocator over a single fixed-size
//     shader-visible heap, backed by a free-list allocator that coalesces
//     neighboring free ranges.
//   - PagedPool: the paged-pool-with-doubling-growth policy used by
//     set-model's descriptor pool allocator (table-model has no
//     equivalent; Vulkan descriptor pools have no table-model analogue).
//   - Arena: a linear, per-frame suballocator used for upload/constant
//     buffer staging (UploadArena/CBufferArena).
//
// All types here operate on opaque indices/offsets; backends translate
// those to native CPU/GPU descriptor handles or device addresses.
package descalloc
