// Package engine provides the conversation execution loop.
package engine

import (
	"sync"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/tools"
)

// ToolRegistry manages the tools available to one conversation turn.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]*tools.Tool
	order []string
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]*tools.Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool *tools.Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// RegisterAll adds multiple tools to the registry.
func (r *ToolRegistry) RegisterAll(ts ...*tools.Tool) {
	for _, tool := range ts {
		r.Register(tool)
	}
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (*tools.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tool names in registration order.
func (r *ToolRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// ToAPITools converts registered tools to Claude API format, in registration
// order so the tool listing is stable across requests.
func (r *ToolRegistry) ToAPITools() []anthropic.ToolUnionParam {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]anthropic.ToolUnionParam, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		schema := tool.Schema()
		out = append(out, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: schema.Properties,
					Required:   schema.Required,
				},
			},
		})
	}
	return out
}
