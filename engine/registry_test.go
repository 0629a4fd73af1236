package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/tools"
)

func newTestTool(name string) *tools.Tool {
	return tools.New(name).
		Description("test tool " + name).
		Schema(tools.ObjectSchema(map[string]any{
			"query": tools.StringProperty("free text query"),
		}, "query")).
		HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
			return "ok", nil
		}).
		Build()
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewToolRegistry()
	names := []string{"charlie", "alpha", "bravo"}
	for _, name := range names {
		registry.Register(newTestTool(name))
	}

	assert.Equal(t, names, registry.List())

	apiTools := registry.ToAPITools()
	require.Len(t, apiTools, len(names))
	for i, name := range names {
		require.NotNil(t, apiTools[i].OfTool)
		assert.Equal(t, name, apiTools[i].OfTool.Name)
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(newTestTool("lookup"))

	tool, ok := registry.Get("lookup")
	require.True(t, ok)
	assert.Equal(t, "lookup", tool.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryReRegisterKeepsSingleEntry(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(newTestTool("dup"))
	registry.Register(newTestTool("dup"))

	assert.Equal(t, []string{"dup"}, registry.List())
	assert.Len(t, registry.ToAPITools(), 1)
}

func TestToAPIToolsCarriesSchema(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(newTestTool("schema_check"))

	apiTools := registry.ToAPITools()
	require.Len(t, apiTools, 1)
	param := apiTools[0].OfTool
	require.NotNil(t, param)
	assert.Equal(t, "test tool schema_check", param.Description.Value)
	assert.Contains(t, param.InputSchema.Properties, "query")
	assert.Equal(t, []string{"query"}, param.InputSchema.Required)
}
