package discovery

// FormatInfo is the complete format information discovered for a single
// component type. It is transient: built per discovery call, returned to the
// caller, and never cached.
type FormatInfo struct {
	TypeName     string       `json:"type_name"`     // Fully-qualified type path
	SpawnFormat  SpawnInfo    `json:"spawn_format"`  // Example for constructing new instances
	MutationInfo MutationInfo `json:"mutation_info"` // Addressable sub-paths for partial updates
}

// SpawnInfo describes how to format data when constructing a new instance.
type SpawnInfo struct {
	Example     any    `json:"example"`     // Example value in wire shape
	Description string `json:"description"` // Human-readable summary of the shape
}

// MutationInfo describes the mutation paths available on a type.
type MutationInfo struct {
	Fields      map[string]FieldInfo `json:"fields"`      // Mutation paths keyed by path
	Description string               `json:"description"` // Root-level description
}

// FieldInfo describes a single addressable mutation path.
type FieldInfo struct {
	Path        string `json:"path"`        // The mutation path (e.g., ".translation.x")
	ValueType   string `json:"value_type"`  // Expected value type at the path
	Example     any    `json:"example"`     // Example value
	Description string `json:"description"` // Human-readable description
}

// emptyMutationInfo is what the orchestrator substitutes when a type does not
// support mutation: an empty field map rather than a propagated error.
func emptyMutationInfo(typeName string) MutationInfo {
	return MutationInfo{
		Fields:      map[string]FieldInfo{},
		Description: "Type " + typeName + " does not support mutation",
	}
}
