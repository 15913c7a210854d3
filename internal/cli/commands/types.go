package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/natepiano/bevy-brp-extras/internal/cli/config"
	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

// NewTypesCommand creates the types command
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered types",
		Long:  "List every type in the registry snapshot with its structural category.",
		Example: `  # List all registered types
  brp-extras types

  # List types from a specific snapshot
  brp-extras types --registry ./snapshots/app.json`,
		RunE: runTypes,
	}
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	types := engine.Registry().Types()
	if cfg.Output.Format == "json" {
		return printJSON(cmd, registry.Snapshot{Types: types})
	}

	out := cmd.OutOrStdout()
	for _, desc := range types {
		fmt.Fprintf(out, "%-12s %s%s\n", desc.Kind, desc.TypeName, typeDetail(desc))
	}
	fmt.Fprintf(out, "\n%d types registered\n", len(types))
	return nil
}

// typeDetail summarizes the shape-specific part of a descriptor.
func typeDetail(desc registry.TypeDescriptor) string {
	switch desc.Kind {
	case registry.KindStruct:
		return " (" + strconv.Itoa(len(desc.Fields)) + " fields)"
	case registry.KindTupleStruct, registry.KindTuple:
		return " (" + strconv.Itoa(len(desc.Elements)) + " fields)"
	case registry.KindEnum:
		return " (" + strconv.Itoa(len(desc.Variants)) + " variants)"
	case registry.KindList, registry.KindArray, registry.KindSet:
		return " of " + desc.Element
	case registry.KindMap:
		return " of " + desc.Key + " -> " + desc.Value
	default:
		return ""
	}
}
