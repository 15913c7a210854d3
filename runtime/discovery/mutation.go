package discovery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

// GenerateMutationInfo derives the addressable mutation paths for a
// descriptor. Only structs, tuple structs, and tuples are mutable; all other
// categories fail with an unsupported-type error, which the orchestrator
// absorbs into an empty MutationInfo rather than failing the type.
//
// Unlike spawn generation, per-field path generation never hard-fails: a
// field whose example cannot be derived gets a generic default instead.
func GenerateMutationInfo(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (MutationInfo, error) {
	trace.Add("Generating mutation info for: %s", typeName)

	if !desc.Mutable() {
		return MutationInfo{}, newUnsupportedType(
			"Type %s is not mutable (only structs, tuple structs, and tuples support mutation)", typeName)
	}

	// Transform gets a hand-curated path set instead of the per-field walk.
	// Rotation is mutated as a whole quaternion; scale exposes only the x
	// component.
	if strings.Contains(typeName, "Transform") {
		trace.Add("Using curated Transform mutation paths for: %s", typeName)
		curated := transformMutationPaths("")
		fields := make(map[string]FieldInfo, len(curated))
		for _, info := range curated {
			fields[info.Path] = info
		}
		return MutationInfo{
			Fields:      fields,
			Description: "Mutation info for Transform",
		}, nil
	}

	var paths []FieldInfo
	switch desc.Kind {
	case registry.KindStruct:
		for _, field := range desc.Fields {
			trace.Add("Processing struct field for mutation: %s: %s", field.Name, field.Type)
			paths = append(paths, fieldMutationPaths(reg, field.Name, field.Type, trace)...)
		}
	case registry.KindTupleStruct, registry.KindTuple:
		for i, elemType := range desc.Elements {
			trace.Add("Processing tuple field for mutation: %d: %s", i, elemType)
			paths = append(paths, fieldMutationPaths(reg, strconv.Itoa(i), elemType, trace)...)
		}
	}

	fields := make(map[string]FieldInfo, len(paths))
	for _, info := range paths {
		fields[info.Path] = info
	}

	return MutationInfo{
		Fields:      fields,
		Description: describeMutationShape(desc),
	}, nil
}

func describeMutationShape(desc registry.TypeDescriptor) string {
	switch desc.Kind {
	case registry.KindStruct:
		return fmt.Sprintf("Mutation info for struct with %d fields", len(desc.Fields))
	case registry.KindTupleStruct:
		return fmt.Sprintf("Mutation info for tuple struct with %d fields", len(desc.Elements))
	default:
		return fmt.Sprintf("Mutation info for tuple with %d elements", len(desc.Elements))
	}
}

// fieldMutationPaths emits the base path for one field plus any synthesized
// sub-paths. Sub-path selection consults the registry's structural category
// for the field type first; substring matching on the type name is the
// fallback for unregistered or opaque types.
func fieldMutationPaths(reg *registry.Registry, fieldName, fieldType string, trace *Trace) []FieldInfo {
	basePath := "." + fieldName

	paths := []FieldInfo{{
		Path:        basePath,
		ValueType:   fieldType,
		Example:     DefaultExample(fieldType),
		Description: fmt.Sprintf("Mutate the entire %s field", fieldName),
	}}

	switch classifyFieldType(reg, fieldType) {
	case fieldClassList:
		trace.Add("Generating sequence mutation paths for %s", fieldName)
		paths = append(paths, sequenceMutationPaths(basePath)...)
	case fieldClassMap:
		trace.Add("Generating map mutation paths for %s", fieldName)
		paths = append(paths, mapMutationPaths(basePath)...)
	case fieldClassMath:
		trace.Add("Generating math type mutation paths for %s", fieldName)
		paths = append(paths, mathMutationPaths(basePath, fieldType)...)
	case fieldClassTransform:
		trace.Add("Generating Transform mutation paths for %s", fieldName)
		paths = append(paths, transformMutationPaths(basePath)...)
	}

	return paths
}

// fieldClass is the coarse category used to pick a sub-path strategy.
type fieldClass int

const (
	fieldClassPlain fieldClass = iota
	fieldClassList
	fieldClassMap
	fieldClassMath
	fieldClassTransform
)

// classifyFieldType picks the sub-path strategy for a field's type. The
// registered structural category wins when available; otherwise the type name
// is classified by namespace prefix and substring. The Transform and math
// checks run before the generic sequence check because their type paths also
// contain "Vec".
func classifyFieldType(reg *registry.Registry, fieldType string) fieldClass {
	if kind, ok := reg.Kind(fieldType); ok {
		switch kind {
		case registry.KindList, registry.KindArray, registry.KindSet:
			return fieldClassList
		case registry.KindMap:
			return fieldClassMap
		}
	}

	switch {
	case strings.Contains(fieldType, "Transform"):
		return fieldClassTransform
	case strings.HasPrefix(fieldType, "bevy_math::"):
		return fieldClassMath
	case strings.Contains(fieldType, "Vec<") || strings.HasSuffix(fieldType, "::Vec"):
		return fieldClassList
	case strings.Contains(fieldType, "HashMap") || strings.Contains(fieldType, "BTreeMap"):
		return fieldClassMap
	default:
		return fieldClassPlain
	}
}

// sequenceMutationPaths synthesizes two fixed index paths for list-like
// fields.
func sequenceMutationPaths(basePath string) []FieldInfo {
	return []FieldInfo{
		{
			Path:        basePath + "[0]",
			ValueType:   "array_element",
			Example:     "first_element_value",
			Description: "Mutate the first element of the sequence",
		},
		{
			Path:        basePath + "[1]",
			ValueType:   "array_element",
			Example:     "second_element_value",
			Description: "Mutate the second element of the sequence",
		},
	}
}

// mapMutationPaths synthesizes one fixed key path for map-like fields.
func mapMutationPaths(basePath string) []FieldInfo {
	return []FieldInfo{{
		Path:        basePath + `["key"]`,
		ValueType:   "map_value",
		Example:     "value_for_key",
		Description: "Mutate a value in the map by key",
	}}
}

// mathMutationPaths emits one component path per vector component: two for
// 2-vectors, three for 3-vectors, four for 4-vectors and quaternions.
func mathMutationPaths(basePath, fieldType string) []FieldInfo {
	type component struct {
		name  string
		value float64
	}

	var components []component
	switch {
	case strings.Contains(fieldType, "Vec2"):
		components = []component{{"x", 1.0}, {"y", 2.0}}
	case strings.Contains(fieldType, "Vec3"):
		components = []component{{"x", 1.0}, {"y", 2.0}, {"z", 3.0}}
	case strings.Contains(fieldType, "Vec4"), strings.Contains(fieldType, "Quat"):
		components = []component{{"x", 1.0}, {"y", 2.0}, {"z", 3.0}, {"w", 4.0}}
	}

	paths := make([]FieldInfo, 0, len(components))
	for _, c := range components {
		paths = append(paths, FieldInfo{
			Path:        basePath + "." + c.name,
			ValueType:   "f32",
			Example:     c.value,
			Description: fmt.Sprintf("Mutate the %s component", c.name),
		})
	}
	return paths
}

// transformMutationPaths emits the hand-curated sub-tree for Transform-like
// fields: the whole translation plus its components, the whole rotation
// quaternion without components, and the whole scale with only its x
// component.
func transformMutationPaths(basePath string) []FieldInfo {
	paths := []FieldInfo{{
		Path:        basePath + ".translation",
		ValueType:   "bevy_math::vec3::Vec3",
		Example:     []any{0.0, 0.0, 0.0},
		Description: "Mutate the entire translation",
	}}

	translationComponents := []struct {
		name  string
		value float64
	}{{"x", 10.0}, {"y", 20.0}, {"z", 30.0}}

	for _, c := range translationComponents {
		paths = append(paths, FieldInfo{
			Path:        basePath + ".translation." + c.name,
			ValueType:   "f32",
			Example:     c.value,
			Description: fmt.Sprintf("Mutate the translation %s component", c.name),
		})
	}

	paths = append(paths,
		FieldInfo{
			Path:        basePath + ".rotation",
			ValueType:   "bevy_math::quat::Quat",
			Example:     []any{0.0, 0.0, 0.0, 1.0},
			Description: "Mutate the entire rotation",
		},
		FieldInfo{
			Path:        basePath + ".scale",
			ValueType:   "bevy_math::vec3::Vec3",
			Example:     []any{1.0, 1.0, 1.0},
			Description: "Mutate the entire scale",
		},
		FieldInfo{
			Path:        basePath + ".scale.x",
			ValueType:   "f32",
			Example:     2.0,
			Description: "Mutate the scale x component",
		},
	)

	return paths
}
