// Package tool defines the callable-tool contract consumed by the agent
// runtime: a name, a description, a JSON-schema parameter description and
// an execute call that resolves to text.
package tool

import "context"

// Property describes one parameter in a tool's object schema
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Schema is the JSON schema for a tool's parameters object
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Tool is one callable capability exposed to the model
type Tool interface {
	Name() string
	Description() string
	Parameters() Schema
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Function is the inner function description of a serialized tool
type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

// FunctionSchema is the function-call envelope handed to the model
type FunctionSchema struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// ToSchema wraps a tool in the function-call envelope
func ToSchema(t Tool) FunctionSchema {
	return FunctionSchema{
		Type: "function",
		Function: Function{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		},
	}
}
