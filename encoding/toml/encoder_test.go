package toml_test

import (
	"testing"

	tomlenc "github.com/effective-security/gentools/encoding/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRequest struct {
	Query string `toml:"query" validate:"required"`
	Limit int    `toml:"limit"`
}

func TestRoundTrip(t *testing.T) {
	enc := tomlenc.NewEncoder(searchRequest{})

	bs, err := enc.Marshal(&searchRequest{Query: "golang", Limit: 5})
	require.NoError(t, err)

	var req searchRequest
	require.NoError(t, enc.Unmarshal(bs, &req))
	assert.Equal(t, searchRequest{Query: "golang", Limit: 5}, req)
}

func TestUnmarshal_Backticks(t *testing.T) {
	enc := tomlenc.NewEncoder(searchRequest{})

	var req searchRequest
	require.NoError(t, enc.Unmarshal([]byte("```toml\nquery = \"golang\"\n```"), &req))
	assert.Equal(t, "golang", req.Query)
}

func TestValidate(t *testing.T) {
	enc := tomlenc.NewEncoder(searchRequest{})
	assert.Error(t, enc.Validate(&searchRequest{}))
	assert.NoError(t, enc.Validate(&searchRequest{Query: "golang"}))
}

func TestGetFormatInstructions(t *testing.T) {
	enc := tomlenc.NewEncoder(searchRequest{})
	instr := enc.GetFormatInstructions()
	assert.Contains(t, instr, "```toml")
	assert.Contains(t, instr, "query")
}
