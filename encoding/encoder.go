// Package encoding provides codecs for tool arguments and results.
// The model returns serialized arguments as text; a codec decodes them
// into the typed input a tool declares, and produces the format
// instructions advertised to the model.
package encoding

import (
	"github.com/cockroachdb/errors"

	dummyenc "github.com/effective-security/gentools/encoding/dummy"
	jsonenc "github.com/effective-security/gentools/encoding/json"
	tomlenc "github.com/effective-security/gentools/encoding/toml"
	yamlenc "github.com/effective-security/gentools/encoding/yaml"
)

type Codec interface {
	Marshal(req any) ([]byte, error)
	Unmarshal([]byte, any) error
	// GetFormatInstructions returns the wrapped message with the argument schema for the prompt
	GetFormatInstructions() string
}

type Validator interface {
	Validate(any) error
}

type Mode = string

const (
	ModeJSON        Mode = "json"
	ModeJSONLenient Mode = "json_lenient"
	ModeYAML        Mode = "yaml"
	ModeTOML        Mode = "toml"
	ModePlainText   Mode = "plain_text"
	ModeCustom      Mode = "custom"
)

// ModeDefault is the default mode for tool arguments.
// Allow to override in apps
var ModeDefault = ModeJSON

func ForMode(mode Mode, req any) (Codec, error) {
	var (
		enc Codec
		err error
	)
	switch mode {
	case ModeJSON:
		enc, err = jsonenc.NewEncoder(req)
	case ModeJSONLenient:
		var e *jsonenc.Encoder
		e, err = jsonenc.NewEncoder(req)
		if e != nil {
			enc = e.WithLenient(true)
		}
	case ModeYAML:
		enc = yamlenc.NewEncoder(req)
	case ModeTOML:
		enc = tomlenc.NewEncoder(req)
	case ModePlainText:
		enc = dummyenc.NewEncoder()
	default:
		return nil, errors.Newf("no predefined codec: %s", mode)
	}
	if err != nil {
		return nil, err
	}
	return enc, nil
}

var (
	_ Codec = (*dummyenc.Encoder)(nil)
	_ Codec = (*jsonenc.Encoder)(nil)
	_ Codec = (*tomlenc.Encoder)(nil)
	_ Codec = (*yamlenc.Encoder)(nil)

	_ Validator = (*jsonenc.Encoder)(nil)
	_ Validator = (*tomlenc.Encoder)(nil)
	_ Validator = (*yamlenc.Encoder)(nil)
)
