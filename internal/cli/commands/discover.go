package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natepiano/bevy-brp-extras/internal/cli/config"
	"github.com/natepiano/bevy-brp-extras/internal/cli/ui"
	"github.com/natepiano/bevy-brp-extras/runtime/discovery"
	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

var (
	// Global flags for discover/types commands
	registryFile string
	outputFormat string
	debugMode    bool
	verbose      bool
	noColor      bool
)

// NewDiscoverCommand creates the discover command
func NewDiscoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [types...]",
		Short: "Discover component formats",
		Long: `Discover the wire format of one or more registered component types.

For each type this reports a spawn example (the JSON shape used to construct
a new instance) and the available mutation paths (addressable sub-values for
partial updates), along with per-type errors for undiscoverable types.`,
		Example: `  # Discover a single component format
  brp-extras discover bevy_transform::components::transform::Transform

  # Discover several types at once
  brp-extras discover game::Player game::Health

  # Try the commonly registered component types
  brp-extras discover --common

  # JSON output with discovery traces
  brp-extras discover game::Player --format json --debug`,
		RunE: runDiscover,
	}

	cmd.Flags().Bool("common", false, "Discover the commonly registered component types")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Attach discovery traces to the output")

	return cmd
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	common, _ := cmd.Flags().GetBool("common")
	typeNames := args
	if common {
		typeNames = append(typeNames, discovery.CommonComponentTypes()...)
	}
	if len(typeNames) == 0 {
		return fmt.Errorf("no types specified: pass type names or use --common")
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	discovery.InitDebugMode(cfg.Debug)

	var trace *discovery.Trace
	if discovery.DebugEnabled() {
		trace = discovery.NewTrace()
	}

	result := engine.DiscoverFormats(typeNames, trace)

	if cfg.Output.Format == "json" {
		return printJSON(cmd, discovery.BuildResponse(result, trace))
	}
	printDiscoveryTables(cmd, engine, result, trace, cfg.Output.NoColor)
	return nil
}

// applyFlagOverrides layers explicit command-line flags over the loaded
// configuration.
func applyFlagOverrides(cfg *config.Config) {
	if registryFile != "" {
		cfg.RegistryFile = registryFile
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if debugMode {
		cfg.Debug = true
	}
	if noColor {
		cfg.Output.NoColor = true
	}
}

// buildEngine loads the registry snapshot and assembles a discovery engine.
func buildEngine(cfg *config.Config) (*discovery.Engine, error) {
	data, err := os.ReadFile(cfg.RegistryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry snapshot '%s': %w", cfg.RegistryFile, err)
	}

	reg := registry.New()
	if err := reg.LoadJSON(data); err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	return discovery.NewEngine(reg, discovery.WithLogger(logger)), nil
}

func printJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printDiscoveryTables renders the human-readable view of a batch result.
func printDiscoveryTables(cmd *cobra.Command, engine *discovery.Engine, result *discovery.Result, trace *discovery.Trace, noColor bool) {
	out := cmd.OutOrStdout()

	for _, typeName := range sortedKeys(result.Formats) {
		info := result.Formats[typeName]

		header := color.New(color.Bold)
		if noColor {
			header.DisableColor()
		}
		header.Fprintf(out, "%s\n", typeName)
		fmt.Fprintf(out, "  %s\n", info.SpawnFormat.Description)

		if example, err := json.MarshalIndent(info.SpawnFormat.Example, "  ", "  "); err == nil {
			fmt.Fprintf(out, "  spawn example: %s\n", example)
		}

		if len(info.MutationInfo.Fields) > 0 {
			fmt.Fprintln(out)
			table := ui.NewTable(out, []string{"PATH", "TYPE", "EXAMPLE"}, noColor)
			for _, path := range sortedKeys(info.MutationInfo.Fields) {
				field := info.MutationInfo.Fields[path]
				example, _ := json.Marshal(field.Example)
				table.AddRow(field.Path, field.ValueType, string(example))
			}
			table.Render()
		}
		fmt.Fprintln(out)
	}

	for _, typeName := range sortedKeys(result.Errors) {
		discErr := result.Errors[typeName]
		if discErr.Reason == discovery.ReasonTypeNotFound {
			fmt.Fprint(out, ui.TypeNotFoundError(typeName, suggestTypes(engine, typeName), noColor))
		} else {
			ui.WriteError(out, ui.ErrorOptions{
				Context: string(discErr.Reason),
				Problem: discErr.Details,
				NoColor: noColor,
			})
		}
		fmt.Fprintln(out)
	}

	summary := result.Summary()
	ui.WriteSuccess(out, fmt.Sprintf("%d/%d types discovered (success rate %.0f%%)",
		summary.SuccessfulDiscoveries, summary.TotalRequested, summary.SuccessRate*100), noColor)

	if messages := trace.Messages(); len(messages) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "debug trace:")
		for _, message := range messages {
			fmt.Fprintf(out, "  %s\n", message)
		}
	}
}

// suggestTypes finds registered type names that loosely match a missing one.
func suggestTypes(engine *discovery.Engine, typeName string) []string {
	short := strings.ToLower(shortName(typeName))
	var suggestions []string
	for _, desc := range engine.Registry().Types() {
		if strings.Contains(strings.ToLower(shortName(desc.TypeName)), short) ||
			strings.Contains(short, strings.ToLower(shortName(desc.TypeName))) {
			suggestions = append(suggestions, desc.TypeName)
		}
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func shortName(typeName string) string {
	if idx := strings.LastIndex(typeName, "::"); idx >= 0 {
		return typeName[idx+2:]
	}
	return typeName
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
