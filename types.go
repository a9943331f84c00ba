package wgpu

import "github.com/gfxkit/gfxkit/types"

// Backend types
type Backend = types.Backend
type Backends = types.Backends

// Backend constants
const (
	BackendVulkan = types.BackendVulkan
	BackendMetal  = types.BackendMetal
	BackendDX12   = types.BackendDX12
	BackendGL     = types.BackendGL
)

// Backends masks
const (
	BackendsAll     = types.BackendsAll
	BackendsPrimary = types.BackendsPrimary
	BackendsVulkan  = types.BackendsVulkan
	BackendsMetal   = types.BackendsMetal
	BackendsDX12    = types.BackendsDX12
	BackendsGL      = types.BackendsGL
)

// Feature and limit types
type Features = types.Features
type Limits = types.Limits

// Buffer usage
type BufferUsage = types.BufferUsage

const (
	BufferUsageMapRead      = types.BufferUsageMapRead
	BufferUsageMapWrite     = types.BufferUsageMapWrite
	BufferUsageCopySrc      = types.BufferUsageCopySrc
	BufferUsageCopyDst      = types.BufferUsageCopyDst
	BufferUsageIndex        = types.BufferUsageIndex
	BufferUsageVertex       = types.BufferUsageVertex
	BufferUsageUniform      = types.BufferUsageUniform
	BufferUsageStorage      = types.BufferUsageStorage
	BufferUsageIndirect     = types.BufferUsageIndirect
	BufferUsageQueryResolve = types.BufferUsageQueryResolve
)

// Texture types
type TextureUsage = types.TextureUsage

const (
	TextureUsageCopySrc          = types.TextureUsageCopySrc
	TextureUsageCopyDst          = types.TextureUsageCopyDst
	TextureUsageTextureBinding   = types.TextureUsageTextureBinding
	TextureUsageStorageBinding   = types.TextureUsageStorageBinding
	TextureUsageRenderAttachment = types.TextureUsageRenderAttachment
)

type TextureFormat = types.TextureFormat
type TextureDimension = types.TextureDimension
type TextureViewDimension = types.TextureViewDimension
type TextureAspect = types.TextureAspect

// Commonly used texture format constants
const (
	TextureFormatRGBA8Unorm     = types.TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb = types.TextureFormatRGBA8UnormSrgb
	TextureFormatBGRA8Unorm     = types.TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb = types.TextureFormatBGRA8UnormSrgb
	TextureFormatDepth24Plus    = types.TextureFormatDepth24Plus
	TextureFormatDepth32Float   = types.TextureFormatDepth32Float
)

// Shader types
type ShaderStages = types.ShaderStages

const (
	ShaderStageVertex   = types.ShaderStageVertex
	ShaderStageFragment = types.ShaderStageFragment
	ShaderStageCompute  = types.ShaderStageCompute
)

// Primitive types
type PrimitiveTopology = types.PrimitiveTopology
type IndexFormat = types.IndexFormat
type FrontFace = types.FrontFace
type CullMode = types.CullMode

type PrimitiveState = types.PrimitiveState
type MultisampleState = types.MultisampleState

// Render types
type LoadOp = types.LoadOp
type StoreOp = types.StoreOp
type Color = types.Color

// Bind group types
type DescriptorSetLayoutEntry = types.DescriptorSetLayoutEntry
type VertexBufferLayout = types.VertexBufferLayout
type ColorTargetState = types.ColorTargetState

// Sampler types
type AddressMode = types.AddressMode
type FilterMode = types.FilterMode
type CompareFunction = types.CompareFunction

// Surface/presentation types
type PresentMode = types.PresentMode
type CompositeAlphaMode = types.CompositeAlphaMode

const (
	PresentModeImmediate   = types.PresentModeImmediate
	PresentModeMailbox     = types.PresentModeMailbox
	PresentModeFifo        = types.PresentModeFifo
	PresentModeFifoRelaxed = types.PresentModeFifoRelaxed
)

// Adapter types
type AdapterInfo = types.AdapterInfo
type DeviceType = types.DeviceType
type PowerPreference = types.PowerPreference
type RequestAdapterOptions = types.RequestAdapterOptions

const (
	PowerPreferenceNone            = types.PowerPreferenceNone
	PowerPreferenceLowPower        = types.PowerPreferenceLowPower
	PowerPreferenceHighPerformance = types.PowerPreferenceHighPerformance
)

// Default functions (re-exported for convenience)
var (
	DefaultLimits             = types.DefaultLimits
	DefaultInstanceDescriptor = types.DefaultInstanceDescriptor
)
