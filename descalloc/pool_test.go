package descalloc

import "testing"

type fakePool struct {
	id       int
	capacity uint32
}

func TestPagedPoolFirstPoolUsesInitialCapacity(t *testing.T) {
	var created []*fakePool
	p, err := NewPagedPool(PagedPoolConfig{
		InitialCapacity: 2,
		MaxCapacity:     16,
		GrowthFactor:    2,
		Create: func(capacity uint32) (PoolHandle, error) {
			fp := &fakePool{id: len(created), capacity: capacity}
			created = append(created, fp)
			return fp, nil
		},
		Allocate: func(pool PoolHandle) (any, bool, error) {
			fp := pool.(*fakePool)
			return fp.id, true, nil
		},
	})
	if err != nil {
		t.Fatalf("NewPagedPool: %v", err)
	}

	_, owner1, err := p.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if p.PoolCount() != 1 {
		t.Fatalf("expected 1 pool, got %d", p.PoolCount())
	}
	if created[0].capacity != 2 {
		t.Fatalf("expected initial capacity 2, got %d", created[0].capacity)
	}
	p.Release(owner1)
}

func TestPagedPoolFallsThroughOnExhaustion(t *testing.T) {
	var created []*fakePool
	allocated := map[int]int{}
	p, _ := NewPagedPool(PagedPoolConfig{
		InitialCapacity: 1,
		GrowthFactor:    2,
		Create: func(capacity uint32) (PoolHandle, error) {
			fp := &fakePool{id: len(created), capacity: capacity}
			created = append(created, fp)
			return fp, nil
		},
		Allocate: func(pool PoolHandle) (any, bool, error) {
			fp := pool.(*fakePool)
			if uint32(allocated[fp.id]) >= fp.capacity {
				return nil, false, nil
			}
			allocated[fp.id]++
			return fp.id, true, nil
		},
	})

	if _, _, err := p.Alloc(); err != nil {
		t.Fatalf("Alloc 1: %v", err)
	}
	if _, _, err := p.Alloc(); err != nil {
		t.Fatalf("Alloc 2 (should create a second, larger pool): %v", err)
	}
	if p.PoolCount() != 2 {
		t.Fatalf("expected 2 pools, got %d", p.PoolCount())
	}
	if created[1].capacity != 2 {
		t.Fatalf("expected second pool capacity to double to 2, got %d", created[1].capacity)
	}
}
