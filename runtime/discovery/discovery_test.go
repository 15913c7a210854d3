package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

const transformType = "bevy_transform::components::transform::Transform"

// newTestRegistry builds a registry with a representative mix of descriptor
// shapes used across the package tests.
func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	r := registry.New()
	err := r.RegisterAll(
		registry.TypeDescriptor{
			TypeName: transformType,
			Kind:     registry.KindStruct,
			Fields: []registry.FieldDescriptor{
				{Name: "translation", Type: "bevy_math::vec3::Vec3"},
				{Name: "rotation", Type: "bevy_math::quat::Quat"},
				{Name: "scale", Type: "bevy_math::vec3::Vec3"},
			},
		},
		registry.TypeDescriptor{
			TypeName: "bevy_core::name::Name",
			Kind:     registry.KindTupleStruct,
			Elements: []string{"alloc::string::String"},
		},
		registry.TypeDescriptor{
			TypeName: "game::Visibility",
			Kind:     registry.KindEnum,
			Variants: []registry.VariantDescriptor{
				{Name: "Inherited", Kind: registry.VariantUnit},
				{Name: "Hidden", Kind: registry.VariantUnit},
				{Name: "Visible", Kind: registry.VariantUnit},
			},
		},
		registry.TypeDescriptor{
			TypeName: "game::Waypoints",
			Kind:     registry.KindList,
			Element:  "bevy_math::vec3::Vec3",
		},
		registry.TypeDescriptor{
			TypeName: "game::Scores",
			Kind:     registry.KindMap,
			Key:      "alloc::string::String",
			Value:    "u32",
		},
		registry.TypeDescriptor{
			TypeName: "game::Broken",
			Kind:     registry.KindStruct,
			Fields: []registry.FieldDescriptor{
				{Name: "first", Type: "mystery::TypeA"},
				{Name: "second", Type: "mystery::TypeB"},
				{Name: "fine", Type: "bool"},
			},
		},
	)
	require.NoError(t, err)
	return r
}

func TestDiscoverFormat_Struct(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	info, err := engine.DiscoverFormat(transformType, nil)
	require.NoError(t, err)

	assert.Equal(t, transformType, info.TypeName)

	example, ok := info.SpawnFormat.Example.(map[string]any)
	require.True(t, ok, "struct example must be an object")
	assert.Len(t, example, 3)
	assert.Contains(t, example, "translation")
	assert.Contains(t, example, "rotation")
	assert.Contains(t, example, "scale")
}

func TestDiscoverFormat_NotFound(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	_, err := engine.DiscoverFormat("UnknownType123", nil)
	require.Error(t, err)

	de, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ReasonTypeNotFound, de.Reason)
	assert.Contains(t, de.Details, "UnknownType123")
}

func TestDiscoverFormat_MutationFailureAbsorbed(t *testing.T) {
	// Enums do not support mutation; the type still succeeds with an empty
	// mutation info rather than failing.
	engine := NewEngine(newTestRegistry(t))

	info, err := engine.DiscoverFormat("game::Visibility", nil)
	require.NoError(t, err)
	assert.Empty(t, info.MutationInfo.Fields)
	assert.Contains(t, info.MutationInfo.Description, "does not support mutation")
}

func TestDiscoverFormat_ListAndMapMutationEmpty(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	for _, typeName := range []string{"game::Waypoints", "game::Scores"} {
		info, err := engine.DiscoverFormat(typeName, nil)
		require.NoError(t, err, typeName)
		assert.Empty(t, info.MutationInfo.Fields, typeName)
	}
}

func TestDiscoverFormats_MixedBatch(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	result := engine.DiscoverFormats([]string{transformType, "UnknownType123"}, nil)

	assert.Len(t, result.Formats, 1)
	assert.Contains(t, result.Formats, transformType)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors, "UnknownType123")

	summary := result.Summary()
	assert.Equal(t, 2, summary.TotalRequested)
	assert.Equal(t, 1, summary.SuccessfulDiscoveries)
	assert.Equal(t, 1, summary.FailedDiscoveries)
	assert.InDelta(t, 0.5, summary.SuccessRate, 1e-9)
}

func TestDiscoverFormats_NeverInBothMaps(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	result := engine.DiscoverFormats([]string{
		transformType, "game::Broken", "game::Visibility", "nope::Nope",
	}, nil)

	for name := range result.Formats {
		assert.NotContains(t, result.Errors, name)
	}
	for name := range result.Errors {
		assert.NotContains(t, result.Formats, name)
	}
}

func TestDiscoverFormats_EmptyBatch(t *testing.T) {
	engine := NewEngine(newTestRegistry(t))

	result := engine.DiscoverFormats(nil, nil)

	summary := result.Summary()
	assert.Equal(t, 0, summary.TotalRequested)
	assert.Equal(t, 0.0, summary.SuccessRate)
}

func TestDiscoverFormats_SpawnFailureIsFatalPerType(t *testing.T) {
	// game::Broken has unconstructible fields: it must land in Errors, never
	// partially in Formats.
	engine := NewEngine(newTestRegistry(t))

	result := engine.DiscoverFormats([]string{"game::Broken"}, nil)

	require.Contains(t, result.Errors, "game::Broken")
	assert.NotContains(t, result.Formats, "game::Broken")
	assert.Equal(t, ReasonFormatGeneration, result.Errors["game::Broken"].Reason)
}

func TestCommonComponentTypes(t *testing.T) {
	types := CommonComponentTypes()
	assert.NotEmpty(t, types)
	assert.Contains(t, types, transformType)
}
