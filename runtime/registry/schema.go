// Package registry provides the type registry backing BRP format discovery.
// It stores structural descriptors for registered component types and resolves
// type names to descriptors for the discovery engine.
package registry

// Kind categorizes the structural shape of a registered type.
type Kind string

// Structural categories mirroring the reflection data exposed by the host.
const (
	KindStruct      Kind = "struct"       // Named fields
	KindTupleStruct Kind = "tuple_struct" // Ordered unnamed fields
	KindTuple       Kind = "tuple"        // Anonymous ordered elements
	KindEnum        Kind = "enum"         // Tagged variants
	KindList        Kind = "list"         // Growable sequence
	KindArray       Kind = "array"        // Fixed-length sequence
	KindMap         Kind = "map"          // Key/value pairs
	KindSet         Kind = "set"          // Unique elements
	KindOpaque      Kind = "opaque"       // Leaf type with no introspectable structure
)

// TypeDescriptor captures the structural shape of a single registered type.
// Only the fields relevant to the Kind are populated.
type TypeDescriptor struct {
	TypeName string              `json:"type_name"`          // Fully-qualified type path
	Kind     Kind                `json:"kind"`               // Structural category
	Fields   []FieldDescriptor   `json:"fields,omitempty"`   // struct: named fields in declaration order
	Elements []string            `json:"elements,omitempty"` // tuple_struct, tuple: element type refs in order
	Variants []VariantDescriptor `json:"variants,omitempty"` // enum: variants in declaration order
	Element  string              `json:"element,omitempty"`  // list, array, set: element type ref
	Length   int                 `json:"length,omitempty"`   // array: fixed length
	Key      string              `json:"key,omitempty"`      // map: key type ref
	Value    string              `json:"value,omitempty"`    // map: value type ref
}

// FieldDescriptor captures a named field inside a struct or struct variant.
type FieldDescriptor struct {
	Name string `json:"name"` // Field name
	Type string `json:"type"` // Field type ref (fully-qualified type path)
}

// VariantKind categorizes the payload shape of an enum variant.
type VariantKind string

// Variant payload shapes.
const (
	VariantUnit   VariantKind = "unit"   // No payload
	VariantTuple  VariantKind = "tuple"  // Ordered unnamed payload
	VariantStruct VariantKind = "struct" // Named-field payload
)

// VariantDescriptor captures a single enum variant.
type VariantDescriptor struct {
	Name     string            `json:"name"`               // Variant name
	Kind     VariantKind       `json:"kind"`               // Payload shape
	Fields   []FieldDescriptor `json:"fields,omitempty"`   // struct variant: named fields
	Elements []string          `json:"elements,omitempty"` // tuple variant: element type refs
}

// Snapshot is the serialized container for a full registry, used when loading
// a registry from JSON produced by the host application.
type Snapshot struct {
	Version string           `json:"version,omitempty"` // Schema version for evolution
	Types   []TypeDescriptor `json:"types"`             // All registered type descriptors
}

// Mutable reports whether the type supports partial mutation. Only structs,
// tuple structs, and tuples expose addressable sub-paths.
func (d TypeDescriptor) Mutable() bool {
	switch d.Kind {
	case KindStruct, KindTupleStruct, KindTuple:
		return true
	default:
		return false
	}
}

// FieldCount returns the number of declared fields or elements for composite
// kinds, and 0 for everything else.
func (d TypeDescriptor) FieldCount() int {
	switch d.Kind {
	case KindStruct:
		return len(d.Fields)
	case KindTupleStruct, KindTuple:
		return len(d.Elements)
	default:
		return 0
	}
}
