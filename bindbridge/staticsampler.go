package bindbridge

import "github.com/gfxkit/gfxkit/types"

// SamplerDescriptor is one static sampler's fixed configuration, embedded
// directly into the root signature / descriptor set layout instead of
// being bound at draw time.
type SamplerDescriptor = types.SamplerDescriptor

// StaticSampler overrides a named sampler-type DescriptorSetEntry with a
// fixed, compile-time sampler descriptor per array index. Once applied,
// SetResource on that binding is rejected.
type StaticSampler struct {
	Name     string
	Samplers []SamplerDescriptor
}

// applyStaticSamplers matches each override against the sampler entries
// produced by buildFromHLSL/buildFromSPIRV, marking matches static and
// validating that the override supplies exactly one descriptor per array
// element. Unmatched overrides and count mismatches are logged and
// otherwise ignored, matching the original bind-bridge's tolerant
// validation (a bad override must never abort layout construction).
func applyStaticSamplers(bindings []BindingEntry, overrides []StaticSampler) {
	for i, b := range bindings {
		if e, ok := b.(DescriptorSetEntry); ok && e.Kind == ResourceKindSampler {
			e.IsStaticSampler = false
			e.StaticSamplerDescs = nil
			bindings[i] = e
		}
	}

	for _, ss := range overrides {
		if ss.Name == "" || len(ss.Samplers) == 0 {
			continue
		}
		matched := false
		for i, b := range bindings {
			e, ok := b.(DescriptorSetEntry)
			if !ok || e.Kind != ResourceKindSampler || e.Name != ss.Name {
				continue
			}
			matched = true
			if uint32(len(ss.Samplers)) != e.BindCount {
				logf("bindbridge: static sampler count mismatch for %q: override has %d, binding expects %d", ss.Name, len(ss.Samplers), e.BindCount)
				continue
			}
			e.IsStaticSampler = true
			e.StaticSamplerDescs = ss.Samplers
			bindings[i] = e
		}
		if !matched {
			logf("bindbridge: static sampler override %q does not match any sampler binding", ss.Name)
		}
	}
}
