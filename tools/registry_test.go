package tools_test

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gentools/pkg/llms"
	"github.com/effective-security/gentools/pkg/llmutils"
	"github.com/effective-security/gentools/tools"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Text string `json:"text"`
}

func newEchoTool(t *testing.T, name, description string) tools.ITool {
	t.Helper()
	tool, err := tools.NewFunc(name, description,
		func(_ context.Context, req *echoRequest) (*string, error) {
			return &req.Text, nil
		})
	require.NoError(t, err)
	return tool
}

func TestRegistry(t *testing.T) {
	r := tools.NewRegistry()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())
	assert.Empty(t, r.Tools())

	add := newAddTool(t)
	echo := newEchoTool(t, "echo", "Echoes the input.")
	got := r.Register(add)
	assert.Same(t, tools.ITool(add), got)
	r.Register(echo)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"add", "echo"}, r.Names())

	found, err := r.Lookup("add")
	require.NoError(t, err)
	assert.Equal(t, "add", found.Name())

	_, err = r.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tools.ErrToolNotFound))
	assert.EqualError(t, err, "missing: tool not found")
}

func TestRegistryOverwrite(t *testing.T) {
	r := tools.NewRegistry()
	r.Register(newEchoTool(t, "echo", "First."))
	r.Register(newAddTool(t))
	r.Register(newEchoTool(t, "echo", "Second."))

	// last registration wins, the slot keeps its position
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"echo", "add"}, r.Names())

	found, err := r.Lookup("echo")
	require.NoError(t, err)
	assert.Equal(t, "Second.", found.Description())
}

func TestRegistryConcurrent(t *testing.T) {
	r := tools.NewRegistry()
	catalog := []tools.ITool{
		newAddTool(t),
		newEchoTool(t, "echo", "Echoes the input."),
		newEchoTool(t, "upper", "Uppercases the input."),
	}

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := range 100 {
				r.Register(catalog[(i+j)%len(catalog)])
			}
		}(i)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _ = r.Lookup("echo")
				_ = r.Names()
				_ = r.Tools()
				_ = r.Len()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, r.Len())
	assert.ElementsMatch(t, []string{"add", "echo", "upper"}, r.Names())
}

func TestRegistryTools(t *testing.T) {
	r := tools.NewRegistry()
	r.Register(newAddTool(t))
	r.Register(newEchoTool(t, "echo", "Echoes the input."))

	list := r.Tools()
	require.Len(t, list, 2)
	for _, tool := range list {
		assert.Equal(t, llms.ToolType, tool.Type)
		require.NotNil(t, tool.Function)
	}
	assert.Equal(t, "add", list[0].Function.Name)
	assert.Equal(t, "echo", list[1].Function.Name)

	exp := `{
	"type": "function",
	"function": {
		"name": "echo",
		"description": "Echoes the input.",
		"parameters": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				}
			},
			"required": [
				"text"
			]
		}
	}
}`
	if diff := cmp.Diff(exp, llmutils.ToJSONIndent(list[1])); diff != "" {
		t.Errorf("unexpected tool definition (-want +got):\n%s", diff)
	}
}

func TestRegistryDescriptions(t *testing.T) {
	r := tools.NewRegistry()
	r.Register(newAddTool(t))

	d := r.Descriptions()
	assert.Contains(t, d, `"Name": "add"`)
	assert.Contains(t, d, `"Description": "Adds two integers."`)
}
