// Package tools defines the assistant's tool surface: declarative
// definitions with natural-language descriptions the model plans against,
// JSON schemas for their inputs, and handlers bound to one request's account
// snapshot. Descriptions carry the full usage contract, including when to
// invoke a tool, because they are the only signal the model gets.
package tools

import (
	"context"
	"encoding/json"
)

// Handler executes one tool call. The returned string is handed to the model
// verbatim as the tool result; a non-nil error becomes an error result
// without aborting the conversation.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Schema is a JSON-schema object description of a tool's input.
type Schema struct {
	Properties map[string]any
	Required   []string
}

// Tool is one registered capability.
type Tool struct {
	name        string
	description string
	schema      Schema
	handler     Handler
}

func (t *Tool) Name() string        { return t.name }
func (t *Tool) Description() string { return t.description }
func (t *Tool) Schema() Schema      { return t.schema }

// Execute runs the tool's handler.
func (t *Tool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	return t.handler(ctx, input)
}

// Builder assembles a Tool.
type Builder struct {
	tool Tool
}

// New starts building a tool with the given name.
func New(name string) *Builder {
	return &Builder{tool: Tool{name: name, schema: ObjectSchema(map[string]any{})}}
}

// Description sets the natural-language contract the model sees.
func (b *Builder) Description(description string) *Builder {
	b.tool.description = description
	return b
}

// Schema sets the input schema.
func (b *Builder) Schema(schema Schema) *Builder {
	b.tool.schema = schema
	return b
}

// HandlerFunc sets the execution handler.
func (b *Builder) HandlerFunc(handler Handler) *Builder {
	b.tool.handler = handler
	return b
}

// Build returns the finished tool.
func (b *Builder) Build() *Tool {
	t := b.tool
	return &t
}
