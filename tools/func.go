package tools

import (
	"context"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gentools/encoding"
	dummyenc "github.com/effective-security/gentools/encoding/dummy"
	jsonenc "github.com/effective-security/gentools/encoding/json"
	"github.com/effective-security/gentools/schema"
)

// outputCodec renders tool results: string results pass through
// unmodified, everything else is marshaled to JSON.
var outputCodec = dummyenc.NewEncoder()

// Func adapts a typed Go function to the ITool contract. The JSON schema
// of the input type is derived once at construction time, and serialized
// arguments are decoded into a fresh input value on every call.
type Func[I any, O any] struct {
	name        string
	description string
	funcParams  *schema.Parameters
	codec       encoding.Codec
	validate    bool
	fn          func(context.Context, *I) (*O, error)
}

// NewFunc builds a tool from a typed function. The input type I must be a
// struct; its exported fields define the tool parameters, and fields
// marked `omitempty` are optional.
func NewFunc[I any, O any](name, description string, fn func(context.Context, *I) (*O, error)) (*Func[I, O], error) {
	var def I
	sc, err := schema.New(reflect.TypeOf(def))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create schema for tool %s", name)
	}
	codec, err := jsonenc.NewEncoder(def)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create codec for tool %s", name)
	}
	return &Func[I, O]{
		name:        name,
		description: description,
		funcParams:  sc.Parameters,
		codec:       codec,
		fn:          fn,
	}, nil
}

// WithCodec overrides the default JSON argument codec.
func (t *Func[I, O]) WithCodec(codec encoding.Codec) *Func[I, O] {
	t.codec = codec
	return t
}

// WithValidation enables struct validation of the decoded input.
func (t *Func[I, O]) WithValidation(validate bool) *Func[I, O] {
	t.validate = validate
	return t
}

// WithDescription sets the description of the tool, to be used in the prompt.
func (t *Func[I, O]) WithDescription(description string) *Func[I, O] {
	t.description = description
	return t
}

func (t *Func[I, O]) Name() string {
	return t.name
}

func (t *Func[I, O]) Description() string {
	return t.description
}

func (t *Func[I, O]) Parameters() any {
	return t.funcParams
}

// FormatInstructions returns the argument format message for the prompt.
func (t *Func[I, O]) FormatInstructions() string {
	return t.codec.GetFormatInstructions()
}

func (t *Func[I, O]) Run(ctx context.Context, req *I) (*O, error) {
	return t.fn(ctx, req)
}

func (t *Func[I, O]) Call(ctx context.Context, input string) (string, error) {
	var req I
	if err := t.codec.Unmarshal([]byte(input), &req); err != nil {
		return "", errors.Mark(errors.WithMessagef(err, "tool %s", t.name), ErrFailedUnmarshalInput)
	}
	if t.validate {
		if v, ok := t.codec.(encoding.Validator); ok {
			if err := v.Validate(req); err != nil {
				// the payload parsed, the values are wrong
				return "", errors.Mark(errors.WithMessagef(err, "tool %s: invalid input", t.name), ErrToolFailed)
			}
		}
	}

	out, err := t.fn(ctx, &req)
	if err != nil {
		return "", err
	}

	bs, err := outputCodec.Marshal(out)
	if err != nil {
		return "", errors.WithMessagef(err, "failed to marshal output of tool %s", t.name)
	}
	return string(bs), nil
}
