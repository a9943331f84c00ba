package bindbridge

import (
	"fmt"
	"sort"

	"github.com/gfxkit/gfxkit/types"
)

// maxRootDWORDs is the D3D12 root-signature budget (§4.2.2): 64 DWORDs,
// shared between root constants (4 bytes each), root descriptors (2 DWORDs
// each), and descriptor tables (1 DWORD each).
const maxRootDWORDs = 64

// BindingEntry is one compiled binding-plan entry. It is exactly one of
// PushConst, RootDescriptor, or DescriptorSetEntry (spec.md §4.4.1), each
// a value type implementing this marker interface so they can be stored
// and type-asserted directly out of a []BindingEntry.
type BindingEntry interface {
	bindingID() uint32
}

// PushConst is a root constant / push-constant binding, promoted from the
// eligible CBuffer with the lowest (space, slot) (HLSL path) or reported directly by
// SPIR-V reflection.
type PushConst struct {
	Id     uint32
	Name   string
	Slot   uint32
	Space  uint32
	Stages types.ShaderStages
	Size   uint32
}

func (e PushConst) bindingID() uint32 { return e.Id }

// RootDescriptor is a CBuffer/Buffer/RWBuffer bound directly by GPU virtual
// address or descriptor, bypassing the descriptor-table/set mechanism.
type RootDescriptor struct {
	Id        uint32
	Name      string
	Kind      ResourceKind
	Slot      uint32
	Space     uint32
	Stages    types.ShaderStages
	RootIndex uint32
}

func (e RootDescriptor) bindingID() uint32 { return e.Id }

// DescriptorSetEntry is one binding inside a descriptor table (table-model)
// or descriptor set (set-model).
type DescriptorSetEntry struct {
	Id                 uint32
	Name               string
	Kind               ResourceKind
	BindCount          uint32
	Slot               uint32
	Space              uint32
	Stages             types.ShaderStages
	SetIndex           uint32
	ElementIndex       uint32
	IsStaticSampler    bool
	StaticSamplerDescs []SamplerDescriptor
}

func (e DescriptorSetEntry) bindingID() uint32 { return e.Id }

// Layout is the compiled output of BuildLayout: an ordered binding plan
// plus the CPU-side cbuffer storage builder that mirrors every CBuffer's
// struct layout.
type Layout struct {
	Bindings []BindingEntry

	nameToID map[string]uint32
	storage  *storageBuilder
}

// BindingID resolves a binding by name, as reported by shader reflection.
func (l *Layout) BindingID(name string) (uint32, bool) {
	id, ok := l.nameToID[name]
	return id, ok
}

// NewStorage allocates a fresh CPU-side StructuredBufferStorage for one
// instance of this layout (e.g. one material). Every Bridge built from the
// same Layout needs its own storage, since each holds independent cbuffer
// contents.
func (l *Layout) NewStorage() *StructuredBufferStorage {
	return l.storage.build()
}

// byID returns the binding with the given id.
func (l *Layout) byID(id uint32) (BindingEntry, bool) {
	for _, b := range l.Bindings {
		if b.bindingID() == id {
			return b, true
		}
	}
	return nil, false
}

// setCount returns one past the highest SetIndex used by any
// DescriptorSetEntry, i.e. the number of descriptor sets this layout needs.
func (l *Layout) setCount() uint32 {
	var n uint32
	for _, b := range l.Bindings {
		if e, ok := b.(DescriptorSetEntry); ok && e.SetIndex+1 > n {
			n = e.SetIndex + 1
		}
	}
	return n
}

// descriptorSetLayoutEntry converts one DescriptorSetEntry into the
// wgpu-level layout entry describing its binding shape.
func descriptorSetLayoutEntry(e DescriptorSetEntry) types.DescriptorSetLayoutEntry {
	entry := types.DescriptorSetLayoutEntry{Binding: e.Slot, Visibility: e.Stages}
	switch e.Kind {
	case ResourceKindCBuffer:
		entry.Buffer = &types.BufferBindingLayout{Type: types.BufferBindingTypeUniform}
	case ResourceKindBuffer:
		entry.Buffer = &types.BufferBindingLayout{Type: types.BufferBindingTypeReadOnlyStorage}
	case ResourceKindRWBuffer:
		entry.Buffer = &types.BufferBindingLayout{Type: types.BufferBindingTypeStorage}
	case ResourceKindTexture:
		entry.Texture = &types.TextureBindingLayout{
			SampleType:    types.TextureSampleTypeFloat,
			ViewDimension: types.TextureViewDimension2D,
		}
	case ResourceKindRWTexture:
		entry.Storage = &types.StorageTextureBindingLayout{
			Access:        types.StorageTextureAccessReadWrite,
			ViewDimension: types.TextureViewDimension2D,
		}
	case ResourceKindSampler:
		entry.Sampler = &types.SamplerBindingLayout{Type: types.SamplerBindingTypeFiltering}
	}
	return entry
}

// DescriptorSetLayoutEntries groups this layout's DescriptorSetEntry
// bindings by SetIndex, in ElementIndex order, ready to hand to
// Device.CreateDescriptorSetLayout once per set.
func (l *Layout) DescriptorSetLayoutEntries() [][]types.DescriptorSetLayoutEntry {
	sets := make([][]types.DescriptorSetLayoutEntry, l.setCount())
	for _, b := range l.Bindings {
		e, ok := b.(DescriptorSetEntry)
		if !ok {
			continue
		}
		sets[e.SetIndex] = append(sets[e.SetIndex], descriptorSetLayoutEntry(e))
	}
	return sets
}

// PushConstantRanges returns the single root-level push-constant range
// this layout needs, or nil if it has no PushConst binding.
func (l *Layout) PushConstantRanges() []types.PushConstantRange {
	for _, b := range l.Bindings {
		pc, ok := b.(PushConst)
		if !ok {
			continue
		}
		return []types.PushConstantRange{{Stages: pc.Stages, Start: 0, End: pc.Size}}
	}
	return nil
}

// BuildLayout compiles a normalized shader reflection record into a binding
// plan (spec.md §4.4.1). staticSamplers overrides named sampler entries;
// pass nil for none.
func BuildLayout(refl ShaderReflection, staticSamplers []StaticSampler) (*Layout, error) {
	var bindings []BindingEntry
	var err error
	switch refl.Source {
	case SourceHLSL:
		bindings, err = buildFromHLSL(refl)
	case SourceSPIRV:
		bindings, err = buildFromSPIRV(refl)
	default:
		return nil, fmt.Errorf("bindbridge: unknown reflection source %d", refl.Source)
	}
	if err != nil {
		return nil, err
	}

	applyStaticSamplers(bindings, staticSamplers)
	validateBindlessSetsAreAlone(bindings)

	l := &Layout{Bindings: bindings, nameToID: make(map[string]uint32, len(bindings))}
	for i := range l.Bindings {
		id := uint32(i)
		switch e := l.Bindings[i].(type) {
		case PushConst:
			e.Id = id
			l.Bindings[i] = e
			if e.Name != "" {
				l.nameToID[e.Name] = id
			}
		case RootDescriptor:
			e.Id = id
			l.Bindings[i] = e
			if e.Name != "" {
				l.nameToID[e.Name] = id
			}
		case DescriptorSetEntry:
			e.Id = id
			l.Bindings[i] = e
			if e.Name != "" {
				l.nameToID[e.Name] = id
			}
		}
	}

	l.storage = buildStorageFromReflection(refl)
	return l, nil
}

// validateBindlessSetsAreAlone logs (but does not fail on) a set mixing a
// bindless/unbounded array with any other descriptor — illegal in HLSL and
// liable to trip validation layers in Vulkan.
func validateBindlessSetsAreAlone(bindings []BindingEntry) {
	type setState struct {
		hasBindless bool
		hasOther    bool
	}
	sets := make(map[uint32]*setState)
	for _, b := range bindings {
		e, ok := b.(DescriptorSetEntry)
		if !ok {
			continue
		}
		st, ok := sets[e.SetIndex]
		if !ok {
			st = &setState{}
			sets[e.SetIndex] = st
		}
		if e.BindCount == 0 {
			st.hasBindless = true
		} else {
			st.hasOther = true
		}
	}
	for set, st := range sets {
		if st.hasBindless && st.hasOther {
			logf("bindbridge: descriptor set %d mixes a bindless array with other descriptors, bindless entries must occupy their own set", set)
		}
	}
}

// buildFromHLSL implements the D3D12 cost-minimization root-signature
// algorithm (spec.md §4.2.2): pick the lowest-register eligible CBuffer as a root
// constant, promote single-count buffer-like resources to root
// descriptors, place everything else into per-space descriptor tables
// (resources and samplers split into separate tables), then shrink the
// root-descriptor set and finally drop the root constant until the whole
// signature fits the 64-DWORD budget.
func buildFromHLSL(refl ShaderReflection) ([]BindingEntry, error) {
	res := refl.Resources
	if len(res) == 0 {
		return nil, nil
	}

	const asTable = 0
	const asRootDescriptor = 1
	const asRootConstant = 2
	placement := make([]int, len(res))

	// Pick the eligible CBuffer (size <= 256 bytes, single instance) with
	// the lowest (space, slot) as the root-constant candidate; its size
	// does not affect the choice.
	bestIdx := -1
	var bestSize uint32
	for i, r := range res {
		if r.Kind != ResourceKindCBuffer || r.Count > 1 {
			continue
		}
		cb, ok := refl.cbufferByName(r.Name)
		if !ok {
			return nil, fmt.Errorf("bindbridge: no cbuffer layout for resource %q", r.Name)
		}
		if cb.Size > maxRootDWORDs*4 {
			continue
		}
		if bestIdx == -1 {
			bestIdx, bestSize = i, cb.Size
			continue
		}
		best := res[bestIdx]
		if r.Space < best.Space || (r.Space == best.Space && r.Slot < best.Slot) {
			bestIdx, bestSize = i, cb.Size
		}
	}
	hasRootConstant := bestIdx != -1
	rootConstantIdx := bestIdx
	rootConstantSize := bestSize
	if hasRootConstant {
		placement[rootConstantIdx] = asRootConstant
	}

	var rootDescIdx []int
	for i, r := range res {
		if placement[i] != asTable || r.Count != 1 {
			continue
		}
		if r.Kind == ResourceKindCBuffer || r.Kind == ResourceKindBuffer || r.Kind == ResourceKindRWBuffer {
			rootDescIdx = append(rootDescIdx, i)
			placement[i] = asRootDescriptor
		}
	}

	buildTables := func() [][]int {
		resourceSpace := make(map[uint32][]int)
		samplerSpace := make(map[uint32][]int)
		for i, r := range res {
			if placement[i] != asTable {
				continue
			}
			if r.Kind == ResourceKindSampler {
				samplerSpace[r.Space] = append(samplerSpace[r.Space], i)
			} else {
				resourceSpace[r.Space] = append(resourceSpace[r.Space], i)
			}
		}
		var tables [][]int
		appendGroups := func(bySpace map[uint32][]int) {
			spaces := make([]uint32, 0, len(bySpace))
			for s := range bySpace {
				spaces = append(spaces, s)
			}
			sort.Slice(spaces, func(a, b int) bool { return spaces[a] < spaces[b] })
			for _, s := range spaces {
				idx := bySpace[s]
				sort.Slice(idx, func(a, b int) bool { return res[idx[a]].Slot < res[idx[b]].Slot })
				tables = append(tables, idx)
			}
		}
		appendGroups(resourceSpace)
		appendGroups(samplerSpace)
		return tables
	}

	var tables [][]int
	for {
		sort.Slice(rootDescIdx, func(a, b int) bool { return res[rootDescIdx[a]].Slot < res[rootDescIdx[b]].Slot })
		tables = buildTables()

		total := uint32(0)
		if hasRootConstant {
			total += (rootConstantSize + 3) / 4
		}
		total += uint32(len(rootDescIdx)) * 2
		total += uint32(len(tables))
		if total <= maxRootDWORDs {
			break
		}

		if hasRootConstant {
			hasRootConstant = false
			rootDescIdx = append(rootDescIdx, rootConstantIdx)
			placement[rootConstantIdx] = asRootDescriptor
			continue
		}
		if len(rootDescIdx) > 0 {
			last := rootDescIdx[len(rootDescIdx)-1]
			placement[last] = asTable
			rootDescIdx = rootDescIdx[:len(rootDescIdx)-1]
			continue
		}
		return nil, fmt.Errorf("bindbridge: shader's resource set cannot fit the %d-DWORD root-signature budget", maxRootDWORDs)
	}

	var bindings []BindingEntry
	if hasRootConstant {
		r := res[rootConstantIdx]
		bindings = append(bindings, PushConst{Name: r.Name, Slot: r.Slot, Space: r.Space, Stages: r.Stages, Size: rootConstantSize})
	}
	for rootIdx, i := range rootDescIdx {
		r := res[i]
		bindings = append(bindings, RootDescriptor{Name: r.Name, Kind: r.Kind, Slot: r.Slot, Space: r.Space, Stages: r.Stages, RootIndex: uint32(rootIdx)})
	}
	for setIdx, table := range tables {
		for elemIdx, i := range table {
			r := res[i]
			bindings = append(bindings, DescriptorSetEntry{
				Name: r.Name, Kind: r.Kind, BindCount: r.Count, Slot: r.Slot, Space: r.Space,
				Stages: r.Stages, SetIndex: uint32(setIdx), ElementIndex: uint32(elemIdx),
			})
		}
	}
	return bindings, nil
}

// buildFromSPIRV implements the set-model layout path (spec.md §4.4.1):
// groups bindings by ascending (set, binding), merging stage masks is not
// needed since each reflected binding already carries its full stage mask,
// and never demotes resources into root constants — the caller is
// responsible for keeping push constants small. Count == 0 marks a
// bindless/unbounded array.
func buildFromSPIRV(refl ShaderReflection) ([]BindingEntry, error) {
	var bindings []BindingEntry

	if len(refl.PushConstants) > 0 {
		pc := refl.PushConstants[0]
		bindings = append(bindings, PushConst{Name: pc.Name, Stages: pc.Stages, Size: pc.Size})
		if len(refl.PushConstants) > 1 {
			logf("bindbridge: %d push-constant blocks reflected, only the first (%q) is used", len(refl.PushConstants), pc.Name)
		}
	}

	perSet := make(map[uint32][]ResourceBinding)
	for _, r := range refl.Resources {
		if r.Kind == ResourceKindUnknown {
			continue
		}
		perSet[r.Space] = append(perSet[r.Space], r)
	}
	sets := make([]uint32, 0, len(perSet))
	for s := range perSet {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(a, b int) bool { return sets[a] < sets[b] })

	for setOrder, set := range sets {
		entries := perSet[set]
		sort.Slice(entries, func(a, b int) bool { return entries[a].Slot < entries[b].Slot })
		for elemIdx, r := range entries {
			bindings = append(bindings, DescriptorSetEntry{
				Name: r.Name, Kind: r.Kind, BindCount: r.Count, Slot: r.Slot, Space: r.Space,
				Stages: r.Stages, SetIndex: uint32(setOrder), ElementIndex: uint32(elemIdx),
			})
		}
	}
	return bindings, nil
}

// buildStorageFromReflection walks every CBuffer and push-constant block,
// synthesizing the typed tree StructuredBufferStorage is built from
// (spec.md §4.4.1's "typed tree mirroring the HLSL/GLSL struct layout").
func buildStorageFromReflection(refl ShaderReflection) *storageBuilder {
	b := newStorageBuilder()
	for _, r := range refl.Resources {
		if r.Kind != ResourceKindCBuffer {
			continue
		}
		cb, ok := refl.cbufferByName(r.Name)
		if !ok {
			continue
		}
		slot := b.addRoot(cb.Name, cb.Size, r.Count)
		b.addMembers(slot, cb.Name, cb.Members)
	}
	for _, pc := range refl.PushConstants {
		slot := b.addRoot(pc.Name, pc.Size, 1)
		b.addMembers(slot, pc.Name, pc.Members)
	}
	return b
}
