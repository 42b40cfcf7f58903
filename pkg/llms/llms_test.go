package llms_test

import (
	"reflect"
	"testing"

	"github.com/effective-security/gentools/pkg/llms"
	"github.com/effective-security/gentools/pkg/llmutils"
	"github.com/effective-security/gentools/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherRequest struct {
	Location string `json:"location" jsonschema:"description=City and state."`
	Unit     string `json:"unit,omitempty"`
}

func TestNewFunctionTool(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(weatherRequest{}))
	require.NoError(t, err)

	tool := llms.NewFunctionTool("get_weather", "Returns the current weather.", sc.Parameters)
	assert.Equal(t, llms.ToolType, tool.Type)
	require.NotNil(t, tool.Function)
	assert.Equal(t, "get_weather", tool.Function.Name)

	exp := `{
	"type": "function",
	"function": {
		"name": "get_weather",
		"description": "Returns the current weather.",
		"parameters": {
			"type": "object",
			"properties": {
				"location": {
					"type": "string",
					"description": "City and state."
				},
				"unit": {
					"type": "string"
				}
			},
			"required": [
				"location"
			]
		}
	}
}`
	assert.Equal(t, exp, llmutils.ToJSONIndent(tool))
}

func TestNewFunctionTool_NoParams(t *testing.T) {
	type empty struct{}
	sc, err := schema.New(reflect.TypeOf(empty{}))
	require.NoError(t, err)

	tool := llms.NewFunctionTool("ping", "Checks liveness.", sc.Parameters)
	exp := `{"type":"function","function":{"name":"ping","description":"Checks liveness.","parameters":{"type":"object","properties":{},"required":[]}}}`
	assert.Equal(t, exp, llmutils.ToJSON(tool))
}

func TestToolCallString(t *testing.T) {
	tc := llms.ToolCall{
		ID:   "call_1",
		Type: llms.ToolType,
		FunctionCall: &llms.FunctionCall{
			Name:      "get_weather",
			Arguments: `{"location":"Seattle, WA"}`,
		},
	}
	assert.Equal(t, `ToolCall: call_1 (get_weather), input: {"location":"Seattle, WA"}`, tc.String())

	empty := llms.ToolCall{ID: "call_2", Type: llms.ToolType}
	assert.Equal(t, "ToolCall: call_2 (no function)", empty.String())

	res := llms.ToolCallResponse{
		ToolCallID: "call_1",
		Name:       "get_weather",
		Content:    "sunny",
	}
	assert.Equal(t, "ToolCallResponse: call_1 (get_weather): sunny", res.String())
}
