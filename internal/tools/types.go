// Package tools defines the callable tool surface of the weather gateway:
// the schema types describing each tool to callers, the executor contract,
// and the registry that dispatches invocations by name.
package tools

// Tool is the caller-facing description of one callable operation, shaped
// as the common JSON Schema function format.
type Tool struct {
	// Name is the operation identifier, e.g. "get-alerts".
	Name string `json:"name"`
	// Description tells the caller what the tool does.
	Description string `json:"description"`
	// Parameters defines the accepted arguments as a JSON Schema object.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema is a structured, type-safe representation of the JSON Schema
// used for tool parameters. Using this struct instead of
// map[string]interface{} keeps tool definitions clear and prevents schema
// typos.
type JSONSchema struct {
	// Type is the data type of a schema node. For the top-level parameters
	// object this is always "object".
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties maps parameter names to their schema definitions.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the parameter names that are mandatory.
	Required []string `json:"required,omitempty"`
}

// NewTool builds a Tool definition. All tools construct their definition
// through this helper for consistency.
func NewTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  parameters,
	}
}
