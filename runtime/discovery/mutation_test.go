package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

func TestGenerateMutationInfo_TransformCuratedPaths(t *testing.T) {
	r := newTestRegistry(t)
	desc := mustResolve(t, r, transformType)

	info, err := GenerateMutationInfo(r, desc, transformType, nil)
	require.NoError(t, err)

	wantPaths := []string{
		".translation",
		".translation.x",
		".translation.y",
		".translation.z",
		".rotation",
		".scale",
		".scale.x",
	}
	for _, path := range wantPaths {
		assert.Contains(t, info.Fields, path)
	}

	// Scale exposes only its x component; rotation has no component paths.
	assert.NotContains(t, info.Fields, ".scale.y")
	assert.NotContains(t, info.Fields, ".scale.z")
	assert.NotContains(t, info.Fields, ".rotation.x")

	rotation := info.Fields[".rotation"]
	assert.Equal(t, "bevy_math::quat::Quat", rotation.ValueType)
	assert.Equal(t, []any{0.0, 0.0, 0.0, 1.0}, rotation.Example)
}

func TestGenerateMutationInfo_UnsupportedKinds(t *testing.T) {
	r := newTestRegistry(t)

	for _, typeName := range []string{"game::Visibility", "game::Waypoints", "game::Scores"} {
		desc := mustResolve(t, r, typeName)

		_, err := GenerateMutationInfo(r, desc, typeName, nil)
		require.Error(t, err, typeName)

		de, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, ReasonUnsupportedType, de.Reason)
	}
}

func TestGenerateMutationInfo_StructBasePaths(t *testing.T) {
	r := registry.New()
	desc := registry.TypeDescriptor{
		TypeName: "game::Stats",
		Kind:     registry.KindStruct,
		Fields: []registry.FieldDescriptor{
			{Name: "health", Type: "u32"},
			{Name: "label", Type: "alloc::string::String"},
			{Name: "unknown", Type: "mystery::Widget"},
		},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Stats", nil)
	require.NoError(t, err)

	require.Contains(t, info.Fields, ".health")
	assert.Equal(t, "u32", info.Fields[".health"].ValueType)
	assert.Equal(t, uint64(4294967295), info.Fields[".health"].Example)

	// Fields with no derivable example never hard-fail; they get a generic
	// placeholder.
	require.Contains(t, info.Fields, ".unknown")
	assert.Equal(t, "example_Widget", info.Fields[".unknown"].Example)
}

func TestGenerateMutationInfo_TupleStructIndexPaths(t *testing.T) {
	r := registry.New()
	desc := registry.TypeDescriptor{
		TypeName: "game::Pair",
		Kind:     registry.KindTupleStruct,
		Elements: []string{"f32", "bool"},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Pair", nil)
	require.NoError(t, err)

	assert.Contains(t, info.Fields, ".0")
	assert.Contains(t, info.Fields, ".1")
	assert.Equal(t, true, info.Fields[".1"].Example)
}

func TestGenerateMutationInfo_SequenceSubPaths(t *testing.T) {
	r := newTestRegistry(t)
	desc := registry.TypeDescriptor{
		TypeName: "game::Inventory",
		Kind:     registry.KindStruct,
		Fields: []registry.FieldDescriptor{
			// Registered list type: categorized structurally, not by name.
			{Name: "waypoints", Type: "game::Waypoints"},
			// Unregistered Vec: categorized by substring fallback.
			{Name: "items", Type: "alloc::vec::Vec<game::Item>"},
		},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Inventory", nil)
	require.NoError(t, err)

	for _, path := range []string{
		".waypoints", ".waypoints[0]", ".waypoints[1]",
		".items", ".items[0]", ".items[1]",
	} {
		assert.Contains(t, info.Fields, path)
	}
	assert.Equal(t, "array_element", info.Fields[".items[0]"].ValueType)
}

func TestGenerateMutationInfo_MapSubPaths(t *testing.T) {
	r := newTestRegistry(t)
	desc := registry.TypeDescriptor{
		TypeName: "game::Board",
		Kind:     registry.KindStruct,
		Fields: []registry.FieldDescriptor{
			{Name: "scores", Type: "game::Scores"},
			{Name: "tags", Type: "std::collections::HashMap<String, String>"},
		},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Board", nil)
	require.NoError(t, err)

	assert.Contains(t, info.Fields, `.scores["key"]`)
	assert.Contains(t, info.Fields, `.tags["key"]`)
	assert.Equal(t, "map_value", info.Fields[`.tags["key"]`].ValueType)
}

func TestGenerateMutationInfo_MathComponents(t *testing.T) {
	r := registry.New()
	desc := registry.TypeDescriptor{
		TypeName: "game::Motion",
		Kind:     registry.KindStruct,
		Fields: []registry.FieldDescriptor{
			{Name: "velocity", Type: "bevy_math::vec2::Vec2"},
			{Name: "position", Type: "bevy_math::vec3::Vec3"},
			{Name: "orientation", Type: "bevy_math::quat::Quat"},
		},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Motion", nil)
	require.NoError(t, err)

	// 2 components for 2-vectors, 3 for 3-vectors, 4 for quaternions.
	assert.Contains(t, info.Fields, ".velocity.x")
	assert.Contains(t, info.Fields, ".velocity.y")
	assert.NotContains(t, info.Fields, ".velocity.z")

	assert.Contains(t, info.Fields, ".position.z")
	assert.NotContains(t, info.Fields, ".position.w")

	assert.Contains(t, info.Fields, ".orientation.w")
	assert.Equal(t, "f32", info.Fields[".orientation.w"].ValueType)
}

func TestGenerateMutationInfo_TransformField(t *testing.T) {
	// A struct containing a Transform field gets the curated sub-tree under
	// the field's base path.
	r := newTestRegistry(t)
	desc := registry.TypeDescriptor{
		TypeName: "game::Actor",
		Kind:     registry.KindStruct,
		Fields: []registry.FieldDescriptor{
			{Name: "root", Type: transformType},
		},
	}
	require.NoError(t, r.Register(desc))

	info, err := GenerateMutationInfo(r, desc, "game::Actor", nil)
	require.NoError(t, err)

	assert.Contains(t, info.Fields, ".root")
	assert.Contains(t, info.Fields, ".root.translation")
	assert.Contains(t, info.Fields, ".root.translation.z")
	assert.Contains(t, info.Fields, ".root.scale.x")
	assert.NotContains(t, info.Fields, ".root.scale.y")
}

func TestGenerateMutationInfo_PathKeyMatchesFieldPath(t *testing.T) {
	r := newTestRegistry(t)
	desc := mustResolve(t, r, transformType)

	info, err := GenerateMutationInfo(r, desc, transformType, nil)
	require.NoError(t, err)

	for key, field := range info.Fields {
		assert.Equal(t, key, field.Path)
	}
}
