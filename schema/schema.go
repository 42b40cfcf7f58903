// Package schema derives function-parameter JSON schemas from Go types.
// The schema is produced once per type and cached for the process lifetime,
// so tool registration stays cheap even when the same input type backs
// several tools.
package schema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/gentools/pkg/llmutils"
	"github.com/effective-security/x/values"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Faker is a interface for generating structures
// with fake data. It is used for generating test data.
type Faker interface {
	Fake() any
}

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.RWMutex
)

// Parameters is the flattened function-parameters object sent to the
// tool-use API. Properties and Required are always present in the
// marshaled form, even when empty, as the wire contract requires.
type Parameters struct {
	Type       string                                            `json:"type"`
	Properties *orderedmap.OrderedMap[string, *jsonschema.Schema] `json:"properties"`
	Required   []string                                          `json:"required"`
}

type Schema struct {
	*jsonschema.Schema
	// Parameters represents the Function parameters definition
	Parameters *Parameters
}

// ParamDef describes a single parameter.
type ParamDef struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Params lists the parameters as (name, type, required) triples in
// declaration order.
func (p *Parameters) Params() []ParamDef {
	req := make(map[string]bool, len(p.Required))
	for _, name := range p.Required {
		req[name] = true
	}
	var res []ParamDef
	for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, ParamDef{
			Name:     pair.Key,
			Type:     values.StringsCoalesce(pair.Value.Type, "string"),
			Required: req[pair.Key],
		})
	}
	return res
}

// New creates a new schema from the given type
func New(t reflect.Type) (*Schema, error) {
	cacheMu.RLock()
	s, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := buildSchema(t)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[t] = s
	cacheMu.Unlock()

	return s, nil
}

func (s *Schema) String() string {
	return llmutils.ToJSONIndent(s.Parameters)
}

func buildSchema(t reflect.Type) (*Schema, error) {
	schema := JSONSchema(t)

	funcParams, err := ToFunctionParameters(schema)
	if err != nil {
		return nil, err
	}
	s := &Schema{
		Schema:     schema,
		Parameters: funcParams,
	}

	return s, nil
}

// ToFunctionParameters flattens the reflected schema into an inline
// parameters object: the top-level $ref is resolved and any nested $defs
// references are inlined, as tool-use APIs do not follow refs.
func ToFunctionParameters(tSchema *jsonschema.Schema) (*Parameters, error) {
	refID := strings.TrimPrefix(tSchema.Ref, "#/$defs/")

	var defs = make(map[string]*jsonschema.Schema)
	var root *jsonschema.Schema

	for name, def := range tSchema.Definitions {
		if name == refID {
			root = def
		} else {
			defs[name] = def
		}
	}
	if root == nil {
		return nil, errors.Newf("unsupported type: no root definition in schema %q", tSchema.Ref)
	}

	res := &Parameters{
		Type:       root.Type,
		Properties: root.Properties,
		Required:   root.Required,
	}
	if res.Properties == nil {
		res.Properties = orderedmap.New[string, *jsonschema.Schema]()
	}
	if res.Required == nil {
		res.Required = []string{}
	}

	resolveRefs(res.Properties, defs)

	return res, nil
}

func resolveRefs(props *orderedmap.OrderedMap[string, *jsonschema.Schema], defs map[string]*jsonschema.Schema) {
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		if child.Ref != "" {
			name := strings.TrimPrefix(child.Ref, "#/$defs/")
			if def, ok := defs[name]; ok {
				pair.Value = def
			} else {
				pair.Value = &jsonschema.Schema{
					Type:        "object",
					Description: child.Description,
					Properties:  child.Properties,
					Required:    child.Required,
				}
			}
		}
		if child.Properties != nil {
			resolveRefs(child.Properties, defs)
		}
		if child.Items != nil && child.Items.Ref != "" {
			name := strings.TrimPrefix(child.Items.Ref, "#/$defs/")
			if def, ok := defs[name]; ok {
				child.Items = def
			} else {
				child.Items = &jsonschema.Schema{
					Type:        "object",
					Description: child.Description,
					Properties:  child.Properties,
					Required:    child.Required,
				}
			}
		}
	}
}

func (s *Schema) NameFromRef() string {
	return strings.Split(s.Ref, "/")[2] // ex: '#/$defs/MyStruct'
}

// JSONSchema return the json schema of the configuration
func JSONSchema(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)

	// The Struct name could be same, but the package name is different.
	// This would cause the json schema to produce a wrong `$ref` to the same name,
	// so the package path is hashed into the struct name.
	// p.s. this issue has been reported in: https://github.com/invopop/jsonschema/issues/42
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			v := reflect.New(t)
			vt := v.Elem().Type()
			fullname := vt.PkgPath() + "/" + vt.Name()
			// add hash to name
			name = vt.Name() + "@" + strconv.FormatUint(xxhash.Sum64String(fullname), 10)
		}
		return name
	}

	return r.ReflectFromType(t)
}

// TypeName maps a Go type to the small fixed vocabulary used for
// tool parameters. Serialized arguments always arrive as text, so
// anything that is not a scalar falls back to "string", which is
// coercible in every case.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "string"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return "string"
	}
}
