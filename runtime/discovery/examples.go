package discovery

import (
	"math"
	"strings"
)

// rgbaExample is the canonical color example: opaque red.
func rgbaExample() map[string]any {
	return map[string]any{
		"red":   1.0,
		"green": 0.0,
		"blue":  0.0,
		"alpha": 1.0,
	}
}

// primitiveExamples maps well-known scalar and opaque type paths to canonical
// literal examples. Integer examples use the extremal value for their width so
// a caller can see the full range; floats use pi.
var primitiveExamples = map[string]any{
	// Numeric types
	"i8":   int64(math.MinInt8),
	"i16":  int64(math.MinInt16),
	"i32":  int64(math.MinInt32),
	"i64":  int64(math.MinInt64),
	"i128": "-170141183460469231731687303715884105728",
	"u8":   uint64(math.MaxUint8),
	"u16":  uint64(math.MaxUint16),
	"u32":  uint64(math.MaxUint32),
	"u64":  uint64(math.MaxUint64),
	"u128": "340282366920938463463374607431768211455",
	"f32":  float64(float32(math.Pi)),
	"f64":  math.Pi,

	// Text types
	"alloc::string::String": "example_string",
	"std::string::String":   "example_string",
	"String":                "example_string",
	"&str":                  "example_str",
	"str":                   "example_str",
	"char":                  "A",

	// Boolean
	"bool": true,

	// Math types
	"bevy_math::vec2::Vec2":   []any{1.0, 2.0},
	"bevy_math::vec3::Vec3":   []any{1.0, 2.0, 3.0},
	"bevy_math::vec3a::Vec3A": []any{1.0, 2.0, 3.0},
	"bevy_math::vec4::Vec4":   []any{1.0, 2.0, 3.0, 4.0},
	"bevy_math::quat::Quat":   []any{0.0, 0.0, 0.0, 1.0},
	"bevy_math::mat2::Mat2":   []any{[]any{1.0, 0.0}, []any{0.0, 1.0}},
	"bevy_math::mat3::Mat3": []any{
		[]any{1.0, 0.0, 0.0},
		[]any{0.0, 1.0, 0.0},
		[]any{0.0, 0.0, 1.0},
	},
	"bevy_math::mat4::Mat4": []any{
		[]any{1.0, 0.0, 0.0, 0.0},
		[]any{0.0, 1.0, 0.0, 0.0},
		[]any{0.0, 0.0, 1.0, 0.0},
		[]any{0.0, 0.0, 0.0, 1.0},
	},

	// Collections
	"alloc::vec::Vec":            []any{},
	"std::collections::HashMap":  map[string]any{},
	"std::collections::BTreeMap": map[string]any{},

	// Option
	"core::option::Option": nil,
}

// runtimeHandleMarkers identify types that are runtime-managed references.
// These can never be constructed from a literal example, so they get a clearer
// diagnostic than a fully unknown type.
var runtimeHandleMarkers = []string{
	"Entity",
	"Handle<",
	"AssetId",
	"ComponentId",
}

// PrimitiveExample returns the canonical literal example for a well-known
// scalar or opaque type path. It never recurses. Unrecognized names fail with
// an unsupported-type error, distinguishing runtime-managed handle types from
// fully unknown ones.
func PrimitiveExample(typeName string) (any, error) {
	if example, ok := primitiveExamples[typeName]; ok {
		return example, nil
	}
	// Color types carry the namespace in their path
	if strings.HasPrefix(typeName, "bevy_color::") {
		if strings.Contains(typeName, "Srgba") || strings.Contains(typeName, "LinearRgba") {
			return rgbaExample(), nil
		}
		if strings.HasSuffix(typeName, "::Color") {
			return map[string]any{"Srgba": rgbaExample()}, nil
		}
	}
	if isRuntimeHandle(typeName) {
		return nil, newUnsupportedType(
			"Type '%s' is a runtime-managed reference and cannot be constructed from an example", typeName)
	}
	return nil, newUnsupportedType("No example available for type: %s", typeName)
}

// IsPrimitive reports whether a type name is one of the scalar leaf types the
// example table covers directly.
func IsPrimitive(typeName string) bool {
	switch typeName {
	case "i8", "i16", "i32", "i64", "i128",
		"u8", "u16", "u32", "u64", "u128",
		"f32", "f64", "bool", "char",
		"alloc::string::String", "std::string::String", "String",
		"&str", "str":
		return true
	}
	return false
}

// isRuntimeHandle reports whether a type name looks like a runtime-managed
// handle or reference type.
func isRuntimeHandle(typeName string) bool {
	for _, marker := range runtimeHandleMarkers {
		if strings.Contains(typeName, marker) {
			return true
		}
	}
	return false
}

// DefaultExample returns a best-effort example for any type name. Unlike
// PrimitiveExample it never fails: unrecognized names fall back to a generic
// placeholder keyed on the short type name. Mutation path generation relies on
// this to stay total per field.
func DefaultExample(typeName string) any {
	if example, err := PrimitiveExample(typeName); err == nil {
		return example
	}
	switch {
	case strings.Contains(typeName, "Option"):
		return nil
	case strings.Contains(typeName, "Vec<") || strings.HasSuffix(typeName, "::Vec"):
		return []any{}
	case strings.Contains(typeName, "HashMap") || strings.Contains(typeName, "BTreeMap"):
		return map[string]any{}
	default:
		return "example_" + shortTypeName(typeName)
	}
}

// shortTypeName returns the last path segment of a fully-qualified type path.
func shortTypeName(typeName string) string {
	if idx := strings.LastIndex(typeName, "::"); idx >= 0 {
		return typeName[idx+2:]
	}
	return typeName
}
