package discovery

import (
	"fmt"
	"strings"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

// fieldFailure records one unconstructible field while walking a composite
// type. Failures are accumulated rather than short-circuited so the final
// error enumerates every bad field, not just the first.
type fieldFailure struct {
	name     string
	typeName string
	reason   string
}

func (f fieldFailure) String() string {
	return fmt.Sprintf("field '%s' of type %s: %s", f.name, f.typeName, f.reason)
}

// failureAccumulator collects field failures during a struct or tuple struct
// walk and converts them into a single aggregated error.
type failureAccumulator struct {
	failures []fieldFailure
}

func (a *failureAccumulator) add(name, typeName string, err error) {
	a.failures = append(a.failures, fieldFailure{
		name:     name,
		typeName: typeName,
		reason:   asDiscoveryError(err).Details,
	})
}

func (a *failureAccumulator) empty() bool {
	return len(a.failures) == 0
}

// err builds the aggregated error for the containing type.
func (a *failureAccumulator) err(typeName string) *Error {
	parts := make([]string, len(a.failures))
	for i, f := range a.failures {
		parts[i] = f.String()
	}
	return newFormatGeneration("cannot generate example for '%s': %s",
		typeName, strings.Join(parts, "; "))
}

// GenerateSpawnFormat builds the spawn example for a descriptor. This is the
// entry point the orchestrator dispatches through after a registry lookup.
func GenerateSpawnFormat(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (SpawnInfo, error) {
	trace.Add("Generating spawn format for: %s", typeName)

	example, err := descriptorExample(reg, desc, typeName, trace)
	if err != nil {
		return SpawnInfo{}, err
	}

	return SpawnInfo{
		Example:     example,
		Description: describeSpawnShape(desc, typeName),
	}, nil
}

// describeSpawnShape produces the human-readable summary attached to a spawn
// example.
func describeSpawnShape(desc registry.TypeDescriptor, typeName string) string {
	switch desc.Kind {
	case registry.KindStruct:
		return fmt.Sprintf("Struct with %d fields", len(desc.Fields))
	case registry.KindTupleStruct:
		if len(desc.Elements) == 1 {
			return fmt.Sprintf("Newtype wrapper around %s", desc.Elements[0])
		}
		return fmt.Sprintf("Tuple struct with %d fields", len(desc.Elements))
	case registry.KindTuple:
		return fmt.Sprintf("Tuple with %d elements", len(desc.Elements))
	case registry.KindEnum:
		return fmt.Sprintf("Enum with %d variants", len(desc.Variants))
	case registry.KindList, registry.KindArray:
		return fmt.Sprintf("Sequence of %s", desc.Element)
	case registry.KindMap:
		return fmt.Sprintf("Map from %s to %s", desc.Key, desc.Value)
	default:
		return fmt.Sprintf("Spawn format for %s", typeName)
	}
}

// exampleForType resolves a type name and produces its example. Unregistered
// names are treated as opaque leaves and routed to the primitive table.
func exampleForType(reg *registry.Registry, typeName string, trace *Trace) (any, error) {
	trace.Add("Discovering recursive format for: %s", typeName)

	desc, err := reg.Resolve(typeName)
	if err != nil {
		trace.Add("Type not in registry, using primitive example: %s", typeName)
		return PrimitiveExample(typeName)
	}
	trace.Add("Found type in registry: %s", typeName)
	return descriptorExample(reg, desc, typeName, trace)
}

// descriptorExample dispatches example generation by descriptor category.
// There is no recursion depth limit and no cycle guard: a self-referential
// registered type recurses until resource exhaustion.
func descriptorExample(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (any, error) {
	switch desc.Kind {
	case registry.KindStruct:
		return structExample(reg, desc, typeName, trace)
	case registry.KindTupleStruct:
		return tupleStructExample(reg, desc, typeName, trace)
	case registry.KindTuple:
		return tupleExample(reg, desc, trace)
	case registry.KindEnum:
		return enumExample(reg, desc, typeName, trace)
	case registry.KindList, registry.KindArray:
		trace.Add("Type is List/Array, using empty array: %s", typeName)
		return []any{}, nil
	case registry.KindMap:
		trace.Add("Type is Map, using empty object: %s", typeName)
		return map[string]any{}, nil
	case registry.KindOpaque:
		trace.Add("Type is opaque, using primitive example: %s", typeName)
		return PrimitiveExample(desc.TypeName)
	default:
		return nil, typeNotSupportedFor(typeName, "Spawn format generation")
	}
}

// structExample builds a keyed object whose key set equals exactly the
// declared field names. A single failing field fails the whole struct, but
// every failing field is reported.
func structExample(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (any, error) {
	example := make(map[string]any, len(desc.Fields))
	var failed failureAccumulator

	for _, field := range desc.Fields {
		trace.Add("Processing struct field: %s: %s", field.Name, field.Type)

		value, err := exampleForType(reg, field.Type, trace)
		if err != nil {
			trace.Add("Field failed: %s: %v", field.Name, err)
			failed.add(field.Name, field.Type, err)
			continue
		}
		example[field.Name] = value
	}

	if !failed.empty() {
		return nil, failed.err(typeName)
	}
	return example, nil
}

// tupleStructExample builds the example for an ordered-field struct. A
// single-field newtype is transparent: the example is the inner field's
// example directly, not wrapped in an array.
func tupleStructExample(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (any, error) {
	if len(desc.Elements) == 1 {
		trace.Add("Newtype struct, unwrapping inner field: %s", desc.Elements[0])
		value, err := exampleForType(reg, desc.Elements[0], trace)
		if err != nil {
			var failed failureAccumulator
			failed.add("0", desc.Elements[0], err)
			return nil, failed.err(typeName)
		}
		return value, nil
	}

	example := make([]any, 0, len(desc.Elements))
	var failed failureAccumulator

	for i, elemType := range desc.Elements {
		trace.Add("Processing tuple struct field %d: %s", i, elemType)

		value, err := exampleForType(reg, elemType, trace)
		if err != nil {
			failed.add(fmt.Sprintf("%d", i), elemType, err)
			continue
		}
		example = append(example, value)
	}

	if !failed.empty() {
		return nil, failed.err(typeName)
	}
	return example, nil
}

// tupleExample builds an array of element examples for an anonymous tuple.
func tupleExample(reg *registry.Registry, desc registry.TypeDescriptor, trace *Trace) (any, error) {
	example := make([]any, 0, len(desc.Elements))
	for i, elemType := range desc.Elements {
		trace.Add("Processing tuple element %d: %s", i, elemType)
		value, err := exampleForType(reg, elemType, trace)
		if err != nil {
			return nil, err
		}
		example = append(example, value)
	}
	return example, nil
}

// enumExample builds the example for an enum using the first declared
// variant. Unit variants serialize to the variant name; tuple variants with
// one field unwrap the payload; wider tuple variants use an array; struct
// variants use a keyed object.
func enumExample(reg *registry.Registry, desc registry.TypeDescriptor, typeName string, trace *Trace) (any, error) {
	if len(desc.Variants) == 0 {
		return nil, newFormatGeneration("enum '%s' has no variants", typeName)
	}

	variant := desc.Variants[0]
	trace.Add("Using first enum variant: %s", variant.Name)

	switch variant.Kind {
	case registry.VariantUnit:
		return variant.Name, nil

	case registry.VariantTuple:
		if len(variant.Elements) == 1 {
			value, err := exampleForType(reg, variant.Elements[0], trace)
			if err != nil {
				return nil, err
			}
			return map[string]any{variant.Name: value}, nil
		}
		values := make([]any, 0, len(variant.Elements))
		for _, elemType := range variant.Elements {
			value, err := exampleForType(reg, elemType, trace)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return map[string]any{variant.Name: values}, nil

	case registry.VariantStruct:
		fields := make(map[string]any, len(variant.Fields))
		for _, field := range variant.Fields {
			value, err := exampleForType(reg, field.Type, trace)
			if err != nil {
				return nil, err
			}
			fields[field.Name] = value
		}
		return map[string]any{variant.Name: fields}, nil

	default:
		return nil, newFormatGeneration("enum '%s' has variant '%s' with unknown kind '%s'",
			typeName, variant.Name, variant.Kind)
	}
}
