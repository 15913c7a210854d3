package discovery

import (
	"encoding/json"
	"fmt"
)

// ParamError reports an invalid or missing request parameter. It is raised
// before discovery begins; the transport layer maps it onto its own
// invalid-params error code.
type ParamError struct {
	Message string
}

func (e *ParamError) Error() string {
	return e.Message
}

func invalidParams(message string) *ParamError {
	return &ParamError{Message: message}
}

const missingTypesMessage = "Missing required 'types' parameter. Specify component types to get format information for."

// ParseTypesParam extracts the required 'types' parameter from raw request
// params. It accepts a single string or an array of strings and rejects
// everything else before any discovery work starts.
func ParseTypesParam(params []byte) ([]string, error) {
	if len(params) == 0 {
		return nil, invalidParams(missingTypesMessage)
	}

	var wrapper struct {
		Types json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(params, &wrapper); err != nil {
		return nil, invalidParams(fmt.Sprintf("Invalid request parameters: %v", err))
	}
	if len(wrapper.Types) == 0 {
		return nil, invalidParams(missingTypesMessage)
	}

	typeNames, err := extractTypeNames(wrapper.Types)
	if err != nil {
		return nil, err
	}
	if len(typeNames) == 0 {
		return nil, invalidParams("At least one type must be specified in the 'types' parameter")
	}
	return typeNames, nil
}

// extractTypeNames decodes the 'types' value as either a string or an array
// of strings. A null value is rejected and non-string array entries,
// including nulls, are skipped. Decoding goes through *string because
// unmarshalling null into a plain string succeeds as a no-op.
func extractTypeNames(raw json.RawMessage) ([]string, error) {
	var single *string
	if err := json.Unmarshal(raw, &single); err == nil && single != nil {
		return []string{*single}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, invalidParams("Parameter 'types' must be a string or array of strings")
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		var name *string
		if err := json.Unmarshal(item, &name); err == nil && name != nil {
			names = append(names, *name)
		}
	}
	return names, nil
}

// HandleFormatDiscovery processes a raw format discovery request end to end:
// parameter validation, batch discovery, and response assembly. Returns a
// *ParamError for malformed requests.
func (e *Engine) HandleFormatDiscovery(params []byte) (map[string]any, error) {
	typeNames, err := ParseTypesParam(params)
	if err != nil {
		return nil, err
	}

	// The debug flag is read once here, before dispatch, not inside the
	// recursion.
	var trace *Trace
	if DebugEnabled() {
		trace = NewTrace()
		trace.Add("Processing request for %d types", len(typeNames))
	}

	result := e.DiscoverFormats(typeNames, trace)
	return BuildResponse(result, trace), nil
}

// BuildResponse assembles the wire response for a batch discovery result.
// Error and debug sections are attached only when non-empty.
func BuildResponse(result *Result, trace *Trace) map[string]any {
	response := map[string]any{
		"success":          true,
		"formats":          result.Formats,
		"requested_types":  result.Requested,
		"discovered_count": len(result.Formats),
		"summary":          result.Summary(),
	}

	if len(result.Errors) > 0 {
		response["errors"] = result.Errors
		response["error_count"] = len(result.Errors)
	}

	if trace.Len() > 0 {
		response["debug_info"] = trace.Messages()
	}

	return response
}

// HandleSetDebugMode processes a debug mode change request. The required
// 'enabled' parameter must be a boolean.
func HandleSetDebugMode(params []byte) (map[string]any, error) {
	if len(params) == 0 {
		return nil, invalidParams("Missing required 'enabled' parameter")
	}

	var wrapper struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.Unmarshal(params, &wrapper); err != nil {
		return nil, invalidParams("Parameter 'enabled' must be a boolean")
	}
	if wrapper.Enabled == nil {
		return nil, invalidParams("Missing required 'enabled' parameter")
	}

	SetDebugEnabled(*wrapper.Enabled)

	message := "Debug mode disabled - detailed discovery information will be excluded from responses"
	if *wrapper.Enabled {
		message = "Debug mode enabled - detailed discovery information will be included in responses"
	}

	return map[string]any{
		"success":       true,
		"debug_enabled": *wrapper.Enabled,
		"message":       message,
	}, nil
}
