package json

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/bububa/ljson"
	"github.com/effective-security/gentools/pkg/llmutils"
	"github.com/effective-security/gentools/schema"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Encoder decodes JSON tool arguments into the declared input type.
// Values are coerced weakly: the model frequently quotes numbers and
// booleans, so "2" is accepted for an integer field. In lenient mode
// the decoder additionally repairs malformed JSON via ljson; by default
// a malformed payload is an error, the tool is never invoked with
// partial data.
type Encoder struct {
	schema  *schema.Schema
	lenient bool
}

func NewEncoder(req any) (*Encoder, error) {
	t := reflect.TypeOf(req)
	schema, err := schema.New(t)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		schema: schema,
	}, nil
}

func (e *Encoder) WithLenient(lenient bool) *Encoder {
	e.lenient = lenient
	return e
}

func (e *Encoder) Marshal(req any) ([]byte, error) {
	return json.Marshal(req)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := llmutils.CleanJSON(bs)

	var raw map[string]any
	if err := e.decode(data, &raw); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           ret,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		// not a struct or map target
		return e.decode(data, ret)
	}
	return dec.Decode(raw)
}

func (e *Encoder) decode(data []byte, ret any) error {
	if e.lenient {
		return ljson.Unmarshal(data, ret)
	}
	return json.Unmarshal(data, ret)
}

func (e *Encoder) Validate(req any) error {
	validate := validator.New()
	return validate.Struct(req)
}

func (e *Encoder) GetFormatInstructions() string {
	var b bytes.Buffer
	b.WriteString("\nProvide arguments as JSON in the following JSON schema:\n")
	b.WriteString("```json\n")
	b.WriteString(e.schema.String())
	b.WriteString("\n```")
	b.WriteString("\nMake sure to return an instance of the JSON, not the schema itself.\n")
	b.WriteString("Use the exact field names as they are defined in the schema.\n")
	return b.String()
}

func (e *Encoder) Schema() *schema.Schema {
	return e.schema
}
