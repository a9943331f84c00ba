// Package bindbridge compiles a normalized shader-reflection record into a
// root-signature / descriptor-set-layout plan, and runs that plan at draw
// time: caching resource bindings, uploading cbuffer bytes into a per-frame
// arena, and issuing the Bind* calls in the right order.
//
// gfxkit never compiles shader source or runs reflection itself — callers
// bring their own HLSL or SPIR-V reflection output and adapt it into the
// ShaderReflection vocabulary below before calling BuildLayout.
package bindbridge

import "github.com/gfxkit/gfxkit/types"

// ResourceKind is the backend-neutral classification of a bound resource,
// independent of whether it came from HLSL or SPIR-V reflection.
type ResourceKind uint8

const (
	ResourceKindUnknown ResourceKind = iota
	ResourceKindCBuffer
	ResourceKindBuffer
	ResourceKindRWBuffer
	ResourceKindTexture
	ResourceKindRWTexture
	ResourceKindSampler
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceKindCBuffer:
		return "cbuffer"
	case ResourceKindBuffer:
		return "buffer"
	case ResourceKindRWBuffer:
		return "rwbuffer"
	case ResourceKindTexture:
		return "texture"
	case ResourceKindRWTexture:
		return "rwtexture"
	case ResourceKindSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// ResourceBinding is one bound resource as reported by shader reflection,
// normalized out of HLSL register/space or SPIR-V (set, binding) vocabulary.
type ResourceBinding struct {
	Name string
	Kind ResourceKind

	// Slot is the HLSL register or SPIR-V binding number.
	Slot uint32

	// Space is the HLSL register space or SPIR-V descriptor set index.
	Space uint32

	// Count is the array size; 0 marks a bindless/unbounded array.
	Count uint32

	Stages types.ShaderStages
}

// CBufferMember is one field of a cbuffer/uniform-buffer struct, addressed
// by name within its owning CBufferLayout.
type CBufferMember struct {
	Name     string
	TypeName string
	Offset   uint32
	Size     uint32

	// Elements is the array length; 0 means the member is not an array.
	Elements uint32

	// Members holds nested struct fields, empty for primitive members.
	Members []CBufferMember
}

// CBufferLayout is the full typed layout of one cbuffer/uniform block,
// matching a ResourceBinding of kind ResourceKindCBuffer by name.
type CBufferLayout struct {
	Name    string
	Size    uint32
	Members []CBufferMember
}

// PushConstantBlock is a SPIR-V push-constant block. HLSL reflection never
// reports one of these directly: BuildLayout picks the lowest-register eligible
// cbuffer as the push-constant candidate itself (see §4.2.2 of the
// cost-minimization algorithm implemented in layout.go).
type PushConstantBlock struct {
	Name    string
	Size    uint32
	Stages  types.ShaderStages
	Members []CBufferMember
}

// SourceKind identifies which reflection dialect a ShaderReflection came
// from, selecting which BuildLayout path runs.
type SourceKind uint8

const (
	SourceHLSL SourceKind = iota
	SourceSPIRV
)

// ShaderReflection is the normalized input to BuildLayout: one shader's
// resource bindings, their cbuffer layouts, and (SPIR-V only) any explicit
// push-constant blocks.
type ShaderReflection struct {
	Source SourceKind

	Resources []ResourceBinding

	// CBuffers holds the typed layout for every ResourceBinding of kind
	// ResourceKindCBuffer, matched by Name.
	CBuffers []CBufferLayout

	// PushConstants are SPIR-V's explicitly tagged push-constant blocks.
	// Only the first is used; reflection producing more than one is a
	// caller error outside gfxkit's control, logged and otherwise ignored.
	PushConstants []PushConstantBlock
}

func (r *ShaderReflection) cbufferByName(name string) (CBufferLayout, bool) {
	for _, cb := range r.CBuffers {
		if cb.Name == name {
			return cb, true
		}
	}
	return CBufferLayout{}, false
}
