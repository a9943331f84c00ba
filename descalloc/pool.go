package descalloc

import (
	"fmt"
	"sync"
)

// PoolHandle identifies a native descriptor pool to its owner (wraps a
// VkDescriptorPool on the set-model backend).
type PoolHandle interface{}

// PoolAllocateFunc attempts to allocate one unit of capacity (e.g. a
// descriptor set) from the given pool. It returns ok=false (not an
// error) for pool-exhausted/fragmented conditions that should fall
// through to trying the next pool or creating a new one.
type PoolAllocateFunc func(pool PoolHandle) (result any, ok bool, err error)

// PoolCreateFunc creates a new native pool sized for capacity units.
type PoolCreateFunc func(capacity uint32) (PoolHandle, error)

// PagedPool implements the set-model descriptor pool allocator: a paged
// free-list of pools, each sized for a "typical" set count, growing by a
// doubling factor up to a cap as more pools are needed.
//
// This generalizes the growth-curve policy already hand-rolled against
// vk.DescriptorPool in backend/setmodel/descriptor.go; it exists here as
// the backend-agnostic building block named by the package layout, for
// any future backend wanting the same paged/doubling pool strategy
// without reimplementing it against a native handle type.
type PagedPool struct {
	mu sync.Mutex

	initialCapacity uint32
	maxCapacity     uint32
	growthFactor    uint32

	create PoolCreateFunc
	alloc  PoolAllocateFunc

	pools []*poolEntry
}

type poolEntry struct {
	handle    PoolHandle
	capacity  uint32
	allocated uint32
}

// PagedPoolConfig configures a PagedPool.
type PagedPoolConfig struct {
	InitialCapacity uint32
	MaxCapacity     uint32
	GrowthFactor    uint32
	Create          PoolCreateFunc
	Allocate        PoolAllocateFunc
}

// NewPagedPool creates a paged pool allocator with doubling growth.
func NewPagedPool(cfg PagedPoolConfig) (*PagedPool, error) {
	if cfg.Create == nil || cfg.Allocate == nil {
		return nil, fmt.Errorf("descalloc: PagedPoolConfig.Create and Allocate are required")
	}
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = 64
	}
	if cfg.MaxCapacity == 0 {
		cfg.MaxCapacity = 4096
	}
	if cfg.GrowthFactor == 0 {
		cfg.GrowthFactor = 2
	}
	return &PagedPool{
		initialCapacity: cfg.InitialCapacity,
		maxCapacity:     cfg.MaxCapacity,
		growthFactor:    cfg.GrowthFactor,
		create:          cfg.Create,
		alloc:           cfg.Allocate,
	}, nil
}

// Alloc walks existing pools trying to allocate one unit, and on
// exhaustion/fragmentation across all of them, creates a new pool sized
// via the doubling-growth curve and allocates from it.
func (p *PagedPool) Alloc() (result any, owner PoolHandle, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.pools {
		if entry.allocated >= entry.capacity {
			continue
		}
		res, ok, err := p.alloc(entry.handle)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			entry.allocated++
			return res, entry.handle, nil
		}
	}

	capacity := p.nextCapacity()
	handle, err := p.create(capacity)
	if err != nil {
		return nil, nil, fmt.Errorf("descalloc: failed to create pool: %w", err)
	}
	entry := &poolEntry{handle: handle, capacity: capacity}
	p.pools = append(p.pools, entry)

	res, ok, err := p.alloc(handle)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("descalloc: allocation failed immediately on freshly created pool")
	}
	entry.allocated++
	return res, handle, nil
}

// Release records that one unit was returned to the given pool. Callers
// are responsible for the native free call itself.
func (p *PagedPool) Release(owner PoolHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, entry := range p.pools {
		if entry.handle == owner {
			if entry.allocated > 0 {
				entry.allocated--
			}
			return
		}
	}
}

func (p *PagedPool) nextCapacity() uint32 {
	capacity := p.initialCapacity
	for i := 0; i < len(p.pools); i++ {
		capacity *= p.growthFactor
		if capacity > p.maxCapacity {
			return p.maxCapacity
		}
	}
	return capacity
}

// PoolCount returns the number of pools currently allocated.
func (p *PagedPool) PoolCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pools)
}
