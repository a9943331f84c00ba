// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package bindbridge

import (
	"fmt"
	"testing"

	"github.com/gfxkit/gfxkit/types"
)

func TestBuildLayoutHLSLPromotesLowestRegisterCBufferToRootConstant(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceHLSL,
		Resources: []ResourceBinding{
			{Name: "PerFrame", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
			{Name: "PerDraw", Kind: ResourceKindCBuffer, Slot: 1, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
			{Name: "AlbedoMap", Kind: ResourceKindTexture, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStageFragment},
			{Name: "AlbedoSampler", Kind: ResourceKindSampler, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStageFragment},
		},
		CBuffers: []CBufferLayout{
			{Name: "PerFrame", Size: 192},
			{Name: "PerDraw", Size: 16},
		},
	}

	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	var pushConsts []PushConst
	var tableEntries []DescriptorSetEntry
	for _, b := range layout.Bindings {
		switch e := b.(type) {
		case PushConst:
			pushConsts = append(pushConsts, e)
		case DescriptorSetEntry:
			tableEntries = append(tableEntries, e)
		}
	}

	if len(pushConsts) != 1 {
		t.Fatalf("expected exactly one push constant, got %d", len(pushConsts))
	}
	if pushConsts[0].Name != "PerFrame" {
		t.Errorf("expected PerFrame (slot 0) promoted to root constant, got %q", pushConsts[0].Name)
	}

	if len(tableEntries) != 2 {
		t.Fatalf("expected texture + sampler in descriptor tables (PerDraw becomes a root descriptor), got %d", len(tableEntries))
	}
}

func TestBuildLayoutHLSLPromotesSingleBufferToRootDescriptor(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceHLSL,
		Resources: []ResourceBinding{
			{Name: "Vertices", Kind: ResourceKindBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStageVertex},
		},
	}

	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if len(layout.Bindings) != 1 {
		t.Fatalf("expected one binding, got %d", len(layout.Bindings))
	}
	rd, ok := layout.Bindings[0].(RootDescriptor)
	if !ok {
		t.Fatalf("expected RootDescriptor, got %T", layout.Bindings[0])
	}
	if rd.Kind != ResourceKindBuffer {
		t.Errorf("expected Kind Buffer, got %v", rd.Kind)
	}
}

func TestBuildLayoutHLSLDemotesWhenOverBudget(t *testing.T) {
	var resources []ResourceBinding
	var cbuffers []CBufferLayout
	for i := uint32(0); i < 40; i++ {
		name := fmt.Sprintf("CB%d", i)
		resources = append(resources, ResourceBinding{
			Name: name, Kind: ResourceKindCBuffer, Slot: i, Space: 0, Count: 1, Stages: types.ShaderStagesAll,
		})
		cbuffers = append(cbuffers, CBufferLayout{Name: name, Size: 16})
	}

	refl := ShaderReflection{Source: SourceHLSL, Resources: resources, CBuffers: cbuffers}

	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	// 40 single-count CBuffers as root descriptors would cost 4 (16-byte root
	// constant) + 39*2 = 82 DWORDs, over the 64-DWORD budget, so some must
	// be demoted back into a descriptor table.
	var tableCount int
	for _, b := range layout.Bindings {
		if _, ok := b.(DescriptorSetEntry); ok {
			tableCount++
		}
	}
	if tableCount == 0 {
		t.Error("expected at least one CBuffer demoted into a descriptor table to fit the 64-DWORD budget")
	}
}

func TestBuildLayoutSPIRVGroupsAscendingSetBinding(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "Albedo", Kind: ResourceKindTexture, Slot: 1, Space: 0, Count: 1, Stages: types.ShaderStageFragment},
			{Name: "Globals", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
			{Name: "Lights", Kind: ResourceKindBuffer, Slot: 0, Space: 1, Count: 1, Stages: types.ShaderStageFragment},
		},
		PushConstants: []PushConstantBlock{
			{Name: "PushData", Size: 32, Stages: types.ShaderStageVertex},
		},
	}

	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	if len(layout.Bindings) != 4 {
		t.Fatalf("expected 4 bindings (1 push const + 3 descriptor entries), got %d", len(layout.Bindings))
	}
	pc, ok := layout.Bindings[0].(PushConst)
	if !ok || pc.Name != "PushData" {
		t.Fatalf("expected PushData push constant first, got %+v", layout.Bindings[0])
	}

	set0 := layout.Bindings[1].(DescriptorSetEntry)
	set0b := layout.Bindings[2].(DescriptorSetEntry)
	set1 := layout.Bindings[3].(DescriptorSetEntry)

	if set0.SetIndex != 0 || set0.Name != "Globals" {
		t.Errorf("expected Globals first in set 0 (binding 0), got %+v", set0)
	}
	if set0b.SetIndex != 0 || set0b.Name != "Albedo" {
		t.Errorf("expected Albedo second in set 0 (binding 1), got %+v", set0b)
	}
	if set1.SetIndex != 1 || set1.Name != "Lights" {
		t.Errorf("expected Lights in set 1, got %+v", set1)
	}
}

func TestBuildLayoutBindingIDResolvesByName(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "Globals", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
		},
	}
	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	id, ok := layout.BindingID("Globals")
	if !ok {
		t.Fatal("expected Globals to resolve")
	}
	entry, ok := layout.byID(id)
	if !ok {
		t.Fatal("expected byID to find the binding back")
	}
	if entry.(DescriptorSetEntry).Name != "Globals" {
		t.Errorf("byID returned wrong binding: %+v", entry)
	}
	if _, ok := layout.BindingID("DoesNotExist"); ok {
		t.Error("expected unknown name to not resolve")
	}
}

func TestApplyStaticSamplerRejectsCountMismatch(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "LinearSampler", Kind: ResourceKindSampler, Slot: 0, Space: 0, Count: 2, Stages: types.ShaderStageFragment},
		},
	}
	layout, err := BuildLayout(refl, []StaticSampler{
		{Name: "LinearSampler", Samplers: []SamplerDescriptor{{}}}, // only 1, binding wants 2
	})
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	e := layout.Bindings[0].(DescriptorSetEntry)
	if e.IsStaticSampler {
		t.Error("expected count mismatch to leave the binding non-static")
	}
}

func TestApplyStaticSamplerMatchesAndLocks(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "LinearSampler", Kind: ResourceKindSampler, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStageFragment},
		},
	}
	layout, err := BuildLayout(refl, []StaticSampler{
		{Name: "LinearSampler", Samplers: []SamplerDescriptor{{MagFilter: types.FilterModeLinear}}},
	})
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	e := layout.Bindings[0].(DescriptorSetEntry)
	if !e.IsStaticSampler {
		t.Fatal("expected matching static sampler override to lock the binding")
	}
	if len(e.StaticSamplerDescs) != 1 {
		t.Fatalf("expected 1 static sampler descriptor, got %d", len(e.StaticSamplerDescs))
	}
}

func TestDescriptorSetLayoutEntriesGroupsBySetIndex(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "Globals", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
			{Name: "Lights", Kind: ResourceKindBuffer, Slot: 0, Space: 1, Count: 1, Stages: types.ShaderStageFragment},
		},
	}
	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	sets := layout.DescriptorSetLayoutEntries()
	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sets))
	}
	if len(sets[0]) != 1 || sets[0][0].Buffer == nil || sets[0][0].Buffer.Type != types.BufferBindingTypeUniform {
		t.Errorf("expected set 0 to hold a uniform buffer entry, got %+v", sets[0])
	}
	if len(sets[1]) != 1 || sets[1][0].Buffer == nil || sets[1][0].Buffer.Type != types.BufferBindingTypeReadOnlyStorage {
		t.Errorf("expected set 1 to hold a read-only storage buffer entry, got %+v", sets[1])
	}
}

func TestPushConstantRangesEmptyWithoutPushConst(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceSPIRV,
		Resources: []ResourceBinding{
			{Name: "Globals", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStagesAll},
		},
	}
	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if ranges := layout.PushConstantRanges(); ranges != nil {
		t.Errorf("expected no push constant ranges, got %+v", ranges)
	}
}

func TestStructuredBufferStorageMemberAddressing(t *testing.T) {
	refl := ShaderReflection{
		Source: SourceHLSL,
		Resources: []ResourceBinding{
			{Name: "Lighting", Kind: ResourceKindCBuffer, Slot: 0, Space: 0, Count: 1, Stages: types.ShaderStageFragment},
		},
		CBuffers: []CBufferLayout{
			{
				Name: "Lighting",
				Size: 48,
				Members: []CBufferMember{
					{Name: "AmbientColor", Offset: 0, Size: 16},
					{Name: "Lights", Offset: 16, Size: 16, Elements: 2},
				},
			},
		},
	}

	layout, err := BuildLayout(refl, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	storage := layout.NewStorage()
	view, ok := storage.get("Lighting", 0)
	if !ok {
		t.Fatal("expected Lighting storage to exist")
	}

	ambient, err := view.Member("Lighting.AmbientColor")
	if err != nil {
		t.Fatalf("Member: %v", err)
	}
	if len(ambient) != 16 {
		t.Errorf("expected AmbientColor to be 16 bytes, got %d", len(ambient))
	}

	light1, err := view.Member("Lighting.Lights[1]")
	if err != nil {
		t.Fatalf("Member: %v", err)
	}
	if len(light1) != 16 {
		t.Errorf("expected Lights[1] to be 16 bytes, got %d", len(light1))
	}

	light1[0] = 0xAB
	if view.Bytes()[16+16] != 0xAB {
		t.Error("expected Member to return a view into the same backing bytes as Bytes()")
	}

	if _, err := view.Member("Lighting.Missing"); err == nil {
		t.Error("expected unknown member path to error")
	}
}
