package bindbridge

import (
	"fmt"

	wgpu "github.com/gfxkit/gfxkit"
	"github.com/gfxkit/gfxkit/descalloc"
)

// defaultCBufferArenaAlignment is the suballocation alignment assumed for
// the per-frame cbuffer upload arena when the caller does not override it
// (the common denominator of D3D12's and Vulkan's minimum uniform-buffer
// offset alignment).
const defaultCBufferArenaAlignment = 256

// ResourceView is anything SetResource can bind: a buffer range, a
// sampler, or a texture view. Exactly one field is set.
type ResourceView struct {
	Buffer      *wgpu.Buffer
	Offset      uint64
	Size        uint64
	Sampler     *wgpu.Sampler
	TextureView *wgpu.TextureView
}

// Bridge runs a compiled Layout at draw time (spec.md §4.4.3/§4.4.4): it
// caches SetResource views, owns the per-frame cbuffer upload arena, and
// issues the PushConstant/RootDescriptor/DescriptorSet bind calls in
// binding order. One Bridge per material instance; many materials can
// share a Layout.
type Bridge struct {
	layout  *Layout
	device  *wgpu.Device
	queue   *wgpu.Queue
	rootSig *wgpu.RootSignature

	setLayouts []*wgpu.DescriptorSetLayout
	sets       []*wgpu.DescriptorSet // rebuilt by Upload, indexed by SetIndex
	setsDirty  bool

	storage *StructuredBufferStorage

	// views holds SetResource'd DescriptorSetEntry bindings, keyed by
	// binding id then array element index.
	views map[uint32]map[uint32]ResourceView

	// cbufferOffsets holds this frame's arena offset for every CBuffer
	// binding (RootDescriptor or DescriptorSetEntry kind), keyed by
	// binding id, populated by Upload and cleared by Clear.
	cbufferOffsets map[uint32]uint64

	arena       *descalloc.Arena
	arenaBuffer *wgpu.Buffer
}

// NewBridge compiles layout's descriptor set layouts and root signature
// against device, and allocates a cbuffer upload arena of arenaCapacity
// bytes backing this bridge's per-frame Upload calls.
func NewBridge(device *wgpu.Device, queue *wgpu.Queue, layout *Layout, arenaCapacity uint64) (*Bridge, error) {
	setEntryGroups := layout.DescriptorSetLayoutEntries()
	setLayouts := make([]*wgpu.DescriptorSetLayout, len(setEntryGroups))
	for i, entries := range setEntryGroups {
		l, err := device.CreateDescriptorSetLayout(&wgpu.DescriptorSetLayoutDescriptor{
			Label:   fmt.Sprintf("bindbridge set %d", i),
			Entries: entries,
		})
		if err != nil {
			return nil, fmt.Errorf("bindbridge: descriptor set layout %d: %w", i, err)
		}
		setLayouts[i] = l
	}

	var pushConstantRanges []wgpu.PushConstantRange
	for _, r := range layout.PushConstantRanges() {
		pushConstantRanges = append(pushConstantRanges, wgpu.PushConstantRange{Stages: r.Stages, Start: r.Start, End: r.End})
	}

	rootSig, err := device.CreateRootSignature(&wgpu.RootSignatureDescriptor{
		Label:                "bindbridge root signature",
		DescriptorSetLayouts: setLayouts,
		PushConstantRanges:   pushConstantRanges,
	})
	if err != nil {
		return nil, fmt.Errorf("bindbridge: root signature: %w", err)
	}

	arena, err := descalloc.NewArena(arenaCapacity, defaultCBufferArenaAlignment)
	if err != nil {
		return nil, err
	}

	arenaBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "bindbridge cbuffer arena",
		Size:  arenaCapacity,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("bindbridge: cbuffer arena buffer: %w", err)
	}

	return &Bridge{
		layout:         layout,
		device:         device,
		queue:          queue,
		rootSig:        rootSig,
		setLayouts:     setLayouts,
		sets:           make([]*wgpu.DescriptorSet, len(setLayouts)),
		setsDirty:      true,
		storage:        layout.NewStorage(),
		views:          make(map[uint32]map[uint32]ResourceView),
		cbufferOffsets: make(map[uint32]uint64),
		arena:          arena,
		arenaBuffer:    arenaBuffer,
	}, nil
}

// RootSignature returns the compiled root signature, for use when creating
// a GraphicsPipelineState.
func (b *Bridge) RootSignature() *wgpu.RootSignature { return b.rootSig }

// SetResource caches view into the named binding's arrayIndex slot. No
// backend call happens until Upload/Bind. Rejected on push-constant,
// root-descriptor, and static-sampler bindings, which have no independent
// per-draw resource to cache.
func (b *Bridge) SetResource(name string, view ResourceView, arrayIndex uint32) error {
	id, ok := b.layout.BindingID(name)
	if !ok {
		return fmt.Errorf("bindbridge: no binding named %q", name)
	}
	entry, ok := b.layout.byID(id)
	if !ok {
		return fmt.Errorf("bindbridge: no binding with id %d", id)
	}
	e, ok := entry.(DescriptorSetEntry)
	if !ok {
		return fmt.Errorf("bindbridge: SetResource rejected on %q, not a descriptor set binding", name)
	}
	if e.IsStaticSampler {
		return fmt.Errorf("bindbridge: SetResource rejected on %q, bound as a static sampler", name)
	}

	if b.views[id] == nil {
		b.views[id] = make(map[uint32]ResourceView)
	}
	b.views[id][arrayIndex] = view
	b.setsDirty = true
	return nil
}

// GetCBuffer returns a typed CPU-side view into the named CBuffer or
// push-constant block at arrayIndex, for direct field mutation ahead of
// the next Upload.
func (b *Bridge) GetCBuffer(name string, arrayIndex uint32) (CBufferView, error) {
	v, ok := b.storage.get(name, arrayIndex)
	if !ok {
		return CBufferView{}, fmt.Errorf("bindbridge: no cbuffer named %q", name)
	}
	return v, nil
}

// Upload copies every CBuffer-backed binding's current CPU bytes into this
// frame's arena suballocation and rebuilds any descriptor set whose
// cached views changed since the last Upload. Call once per frame per
// material, before the draw call that uses it.
func (b *Bridge) Upload() error {
	b.arena.Reset()
	for id := range b.cbufferOffsets {
		delete(b.cbufferOffsets, id)
	}

	for _, binding := range b.layout.Bindings {
		var name string
		var id uint32
		var kind ResourceKind
		switch e := binding.(type) {
		case RootDescriptor:
			if e.Kind != ResourceKindCBuffer {
				continue
			}
			name, id, kind = e.Name, e.Id, e.Kind
		case DescriptorSetEntry:
			if e.Kind != ResourceKindCBuffer || e.IsStaticSampler {
				continue
			}
			name, id, kind = e.Name, e.Id, e.Kind
		default:
			continue
		}
		_ = kind

		view, ok := b.storage.get(name, 0)
		if !ok {
			continue
		}
		size, _ := b.storage.size(name)
		bytes := view.Bytes()

		offset, err := b.arena.Suballoc(uint64(size))
		if err != nil {
			return fmt.Errorf("bindbridge: uploading %q: %w", name, err)
		}
		if err := b.queue.WriteBuffer(b.arenaBuffer, offset, bytes); err != nil {
			return fmt.Errorf("bindbridge: uploading %q: %w", name, err)
		}
		b.cbufferOffsets[id] = offset
	}

	if b.setsDirty {
		if err := b.rebuildDescriptorSets(); err != nil {
			return err
		}
		b.setsDirty = false
	}
	return nil
}

// rebuildDescriptorSets creates a fresh descriptor set for every set index
// that has at least one DescriptorSetEntry binding, populated from cached
// SetResource views and, for CBuffer entries, this frame's arena upload.
func (b *Bridge) rebuildDescriptorSets() error {
	bySet := make(map[uint32][]DescriptorSetEntry)
	for _, binding := range b.layout.Bindings {
		e, ok := binding.(DescriptorSetEntry)
		if !ok {
			continue
		}
		bySet[e.SetIndex] = append(bySet[e.SetIndex], e)
	}

	for setIndex, entries := range bySet {
		if int(setIndex) >= len(b.setLayouts) {
			continue
		}
		var wgpuEntries []wgpu.DescriptorSetEntry
		for _, e := range entries {
			if e.IsStaticSampler {
				continue
			}
			if e.Kind == ResourceKindCBuffer {
				offset, ok := b.cbufferOffsets[e.Id]
				if !ok {
					continue
				}
				size, _ := b.storage.size(e.Name)
				wgpuEntries = append(wgpuEntries, wgpu.DescriptorSetEntry{
					Binding: e.Slot,
					Buffer:  b.arenaBuffer,
					Offset:  offset,
					Size:    uint64(size),
				})
				continue
			}

			views := b.views[e.Id]
			count := e.BindCount
			if count == 0 {
				count = uint32(len(views))
			}
			for i := uint32(0); i < count; i++ {
				v, ok := views[i]
				if !ok {
					continue
				}
				wgpuEntries = append(wgpuEntries, wgpu.DescriptorSetEntry{
					Binding:     e.Slot,
					Buffer:      v.Buffer,
					Offset:      v.Offset,
					Size:        v.Size,
					Sampler:     v.Sampler,
					TextureView: v.TextureView,
				})
			}
		}

		set, err := b.device.CreateDescriptorSet(&wgpu.DescriptorSetDescriptor{
			Label:   fmt.Sprintf("bindbridge set %d", setIndex),
			Layout:  b.setLayouts[setIndex],
			Entries: wgpuEntries,
		})
		if err != nil {
			return fmt.Errorf("bindbridge: rebuilding descriptor set %d: %w", setIndex, err)
		}
		if old := b.sets[setIndex]; old != nil {
			old.Release()
		}
		b.sets[setIndex] = set
	}
	return nil
}

// Bind issues the PushConstant/RootDescriptor/SetDescriptorSet calls for
// every binding, in layout order. Call after Upload and after the
// render pass encoder's pipeline is set.
func (b *Bridge) Bind(encoder *wgpu.RenderPassEncoder) error {
	boundSets := make(map[uint32]bool)
	for _, binding := range b.layout.Bindings {
		switch e := binding.(type) {
		case PushConst:
			view, ok := b.storage.get(e.Name, 0)
			if !ok {
				continue
			}
			encoder.SetPushConstants(e.Stages, 0, view.Bytes())

		case RootDescriptor:
			if e.Kind != ResourceKindCBuffer {
				continue
			}
			offset, ok := b.cbufferOffsets[e.Id]
			if !ok {
				return fmt.Errorf("bindbridge: root descriptor %q not uploaded, call Upload first", e.Name)
			}
			encoder.SetRootDescriptor(e.RootIndex, b.arenaBuffer, offset)

		case DescriptorSetEntry:
			if boundSets[e.SetIndex] {
				continue
			}
			boundSets[e.SetIndex] = true
			if int(e.SetIndex) >= len(b.sets) || b.sets[e.SetIndex] == nil {
				continue
			}
			encoder.SetDescriptorSet(e.SetIndex, b.sets[e.SetIndex], nil)
		}
	}
	return nil
}

// Clear drops cached resource views and this frame's arena suballocations,
// but preserves the CPU-side StructuredBufferStorage (spec.md §4.4.4):
// material cbuffer contents survive across frames, only the GPU-visible
// views backing them are released.
func (b *Bridge) Clear() {
	for id := range b.views {
		delete(b.views, id)
	}
	for id := range b.cbufferOffsets {
		delete(b.cbufferOffsets, id)
	}
	b.arena.Reset()
	for i, s := range b.sets {
		if s != nil {
			s.Release()
			b.sets[i] = nil
		}
	}
	b.setsDirty = true
}

// Release destroys every GPU object this bridge owns: the descriptor
// sets, descriptor set layouts, root signature, and arena buffer.
func (b *Bridge) Release() {
	for _, s := range b.sets {
		if s != nil {
			s.Release()
		}
	}
	for _, l := range b.setLayouts {
		l.Release()
	}
	if b.rootSig != nil {
		b.rootSig.Release()
	}
	if b.arenaBuffer != nil {
		b.arenaBuffer.Release()
	}
}
