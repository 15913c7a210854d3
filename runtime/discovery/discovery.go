package discovery

import (
	"go.uber.org/zap"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

// Engine runs format discovery against a type registry. Discovery is
// synchronous and stateless: every call builds fresh FormatInfo values and
// nothing is cached between calls.
type Engine struct {
	registry *registry.Registry
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger for operational logging. The
// logger is separate from the per-call Trace, which carries the diagnostic
// detail attached to responses in debug mode.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a discovery engine over the given registry.
func NewEngine(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves types against.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Result is the outcome of a batch discovery call. A type name never appears
// in both Formats and Errors.
type Result struct {
	Formats   map[string]FormatInfo `json:"formats"` // Successful discoveries keyed by type name
	Errors    map[string]*Error     `json:"errors"`  // Failed discoveries keyed by type name
	Requested []string              `json:"requested_types"`
}

// Summary aggregates counts over a batch result.
type Summary struct {
	TotalRequested        int     `json:"total_requested"`
	SuccessfulDiscoveries int     `json:"successful_discoveries"`
	FailedDiscoveries     int     `json:"failed_discoveries"`
	SuccessRate           float64 `json:"success_rate"`
}

// Summary computes the batch summary. The success rate is 0.0, never NaN,
// when nothing was requested.
func (r *Result) Summary() Summary {
	s := Summary{
		TotalRequested:        len(r.Requested),
		SuccessfulDiscoveries: len(r.Formats),
		FailedDiscoveries:     len(r.Errors),
	}
	if s.TotalRequested > 0 {
		s.SuccessRate = float64(s.SuccessfulDiscoveries) / float64(s.TotalRequested)
	}
	return s
}

// DiscoverFormat discovers format information for a single type. A registry
// miss or spawn generation failure fails the type; a mutation generation
// failure is absorbed into an empty MutationInfo because mutation support is
// optional per type.
func (e *Engine) DiscoverFormat(typeName string, trace *Trace) (*FormatInfo, error) {
	trace.Add("Discovering format for type: %s", typeName)

	desc, err := e.registry.Resolve(typeName)
	if err != nil {
		trace.Add("Type not found in registry: %s", typeName)
		return nil, asDiscoveryError(err)
	}
	trace.Add("Found type in registry: %s", typeName)

	spawnInfo, err := GenerateSpawnFormat(e.registry, desc, typeName, trace)
	if err != nil {
		return nil, asDiscoveryError(err)
	}

	var mutationInfo MutationInfo
	if desc.Mutable() {
		mutationInfo, err = GenerateMutationInfo(e.registry, desc, typeName, trace)
		if err != nil {
			trace.Add("Mutation info generation failed, substituting empty info: %v", err)
			mutationInfo = emptyMutationInfo(typeName)
		}
	} else {
		trace.Add("Type is not mutable, creating empty mutation info")
		mutationInfo = emptyMutationInfo(typeName)
	}

	trace.Add("Successfully generated format info for: %s", typeName)
	return &FormatInfo{
		TypeName:     typeName,
		SpawnFormat:  spawnInfo,
		MutationInfo: mutationInfo,
	}, nil
}

// DiscoverFormats discovers format information for a batch of type names.
// Each name is processed independently; per-type failures never abort the
// batch.
func (e *Engine) DiscoverFormats(typeNames []string, trace *Trace) *Result {
	trace.Add("Discovering formats for %d types", len(typeNames))
	e.logger.Debug("starting format discovery",
		zap.Int("requested", len(typeNames)),
		zap.String("trace_id", trace.ID()))

	result := &Result{
		Formats:   make(map[string]FormatInfo),
		Errors:    make(map[string]*Error),
		Requested: append([]string(nil), typeNames...),
	}

	for _, typeName := range typeNames {
		trace.Add("Processing type: %s", typeName)

		info, err := e.DiscoverFormat(typeName, trace)
		if err != nil {
			de := asDiscoveryError(err)
			trace.Add("Failed to discover format for: %s", typeName)
			e.logger.Debug("discovery failed for type",
				zap.String("type", typeName),
				zap.String("reason", string(de.Reason)))
			result.Errors[typeName] = de
			continue
		}
		result.Formats[typeName] = *info
	}

	trace.Add("Discovery complete: %d successful, %d errors",
		len(result.Formats), len(result.Errors))
	e.logger.Info("format discovery complete",
		zap.Int("successful", len(result.Formats)),
		zap.Int("failed", len(result.Errors)))

	return result
}

// CommonComponentTypes returns component types that are typically registered
// in a host application, useful as a starting point for exploration.
func CommonComponentTypes() []string {
	return []string{
		"bevy_transform::components::transform::Transform",
		"bevy_core::name::Name",
		"bevy_render::color::LinearRgba",
		"bevy_sprite::sprite::Sprite",
		"bevy_render::camera::camera::Camera",
	}
}
