package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ErrUnauthenticated is returned by tools invoked without a bound caller
// identity. The orchestrator terminates the turn with a fixed denial.
var ErrUnauthenticated = errors.New("caller identity required")

// Identity is the caller bound to an invocation. It is attached by the
// server out-of-band; the model can never supply or alter it.
type Identity struct {
	ID    string
	Email string
}

// Tool is a capability the model may request by name. Implementations are
// read-only over caller-scoped data.
type Tool interface {
	Name() string
	Description() string
	Parameters() *jsonschema.Schema
	Execute(ctx context.Context, args json.RawMessage, caller Identity) (json.RawMessage, error)
}

// ToolDescriptor is the wire form of a tool handed to the model.
type ToolDescriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// Registry resolves tool names to implementations and exports their
// descriptors verbatim.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, tool := range tools {
		if _, exists := r.tools[tool.Name()]; exists {
			continue
		}
		r.tools[tool.Name()] = tool
		r.order = append(r.order, tool.Name())
	}
	return r
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Descriptors returns tool descriptors in registration order.
func (r *Registry) Descriptors() []ToolDescriptor {
	out := make([]ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		out = append(out, ToolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return out
}

// Execute runs the named tool. Unknown names surface as errors so the
// orchestrator can report them back to the model.
func (r *Registry) Execute(ctx context.Context, req ToolRequest, caller Identity) (json.RawMessage, error) {
	tool, ok := r.Lookup(req.Name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", req.Name)
	}
	return tool.Execute(ctx, req.Args, caller)
}

// reflectSchema builds an inline JSON schema for a tool argument struct.
func reflectSchema(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return reflector.Reflect(v)
}
