package subsumecheck

import (
	"maps"

	"github.com/goccy/go-json"
)

// knownSchemaFields contains every keyword this package understands, used to
// detect unknown assertions that must cause a structured rejection rather
// than being silently ignored.
var knownSchemaFields = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {}, "$anchor": {}, "$defs": {}, "definitions": {}, "$comment": {},

	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"if": {}, "then": {}, "else": {}, "dependentSchemas": {},
	"prefixItems": {}, "items": {}, "contains": {},
	"properties": {}, "patternProperties": {}, "additionalProperties": {}, "propertyNames": {},

	"type": {}, "enum": {}, "const": {},
	"multipleOf": {}, "maximum": {}, "exclusiveMaximum": {}, "minimum": {}, "exclusiveMinimum": {},
	"maxLength": {}, "minLength": {}, "pattern": {},
	"maxItems": {}, "minItems": {}, "uniqueItems": {}, "maxContains": {}, "minContains": {},
	"maxProperties": {}, "minProperties": {}, "required": {}, "dependentRequired": {},

	"format": {},

	"title": {}, "description": {}, "default": {}, "deprecated": {},
	"readOnly": {}, "writeOnly": {}, "examples": {},
}

// Schema is the document model for a JSON Schema, covering the subset of
// Draft 2020-12 keywords the Schema Compiler translates (spec.md §4.3).
// Unlike a validating library's Schema type, this one carries no compiler
// cache, no $dynamicRef/$anchor machinery, and no live URI resolution — the
// Reference Resolver inlines every $ref before a Schema ever reaches the
// compiler, so none of that state is needed once the document is parsed.
type Schema struct {
	// Boolean JSON Schemas: `true` accepts everything, `false` rejects everything.
	Boolean *bool `json:"-"`

	ID     string `json:"$id,omitempty"`
	Schema string `json:"$schema,omitempty"`

	Ref         string             `json:"$ref,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	If               *Schema            `json:"if,omitempty"`
	Then             *Schema            `json:"then,omitempty"`
	Else             *Schema            `json:"else,omitempty"`
	DependentSchemas map[string]*Schema `json:"dependentSchemas,omitempty"`

	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	Items       *Schema   `json:"items,omitempty"`
	Contains    *Schema   `json:"contains,omitempty"`
	MinContains *float64  `json:"minContains,omitempty"`
	MaxContains *float64  `json:"maxContains,omitempty"`

	Properties           *SchemaMap `json:"properties,omitempty"`
	PatternProperties    *SchemaMap `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema    `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema    `json:"propertyNames,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	MultipleOf       *Rat `json:"multipleOf,omitempty"`
	Maximum          *Rat `json:"maximum,omitempty"`
	ExclusiveMaximum *Rat `json:"exclusiveMaximum,omitempty"`
	Minimum          *Rat `json:"minimum,omitempty"`
	ExclusiveMinimum *Rat `json:"exclusiveMinimum,omitempty"`

	MaxLength *float64 `json:"maxLength,omitempty"`
	MinLength *float64 `json:"minLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`

	MaxItems    *float64 `json:"maxItems,omitempty"`
	MinItems    *float64 `json:"minItems,omitempty"`
	UniqueItems *bool    `json:"uniqueItems,omitempty"`

	MaxProperties     *float64            `json:"maxProperties,omitempty"`
	MinProperties     *float64            `json:"minProperties,omitempty"`
	Required          []string            `json:"required,omitempty"`
	DependentRequired map[string][]string `json:"dependentRequired,omitempty"`

	Format *string `json:"format,omitempty"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Default     any     `json:"default,omitempty"`
	Deprecated  *bool   `json:"deprecated,omitempty"`
	ReadOnly    *bool   `json:"readOnly,omitempty"`
	WriteOnly   *bool   `json:"writeOnly,omitempty"`
	Examples    []any   `json:"examples,omitempty"`

	// Extra holds keywords this package does not recognize. ParseSchema only
	// records them; CompileSchema tolerates annotation-only extras and rejects
	// any other with an UnsupportedKeywordError.
	Extra map[string]any `json:"-"`
}

// ParseSchema decodes raw JSON bytes into a Schema. Keywords it does not
// recognize are kept in Extra rather than rejected here; CompileSchema
// decides whether they are acceptable.
func ParseSchema(raw []byte) (*Schema, error) {
	var asBool bool
	if err := json.Unmarshal(raw, &asBool); err == nil {
		return &Schema{Boolean: &asBool}, nil
	}

	schema := &Schema{}
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, &MalformedSchemaError{Err: err}
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, &MalformedSchemaError{Err: err}
	}
	extra := map[string]any{}
	for key, value := range generic {
		if _, known := knownSchemaFields[key]; known {
			continue
		}
		extra[key] = value
	}
	if len(extra) > 0 {
		schema.Extra = extra
	}

	return schema, nil
}

// SchemaMap represents a map of string keys to *Schema values, used for
// properties and patternProperties.
type SchemaMap map[string]*Schema

func (sm SchemaMap) MarshalJSON() ([]byte, error) {
	m := make(map[string]*Schema)
	maps.Copy(m, sm)
	return json.Marshal(m, json.Deterministic(true))
}

func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	m := make(map[string]*Schema)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*sm = SchemaMap(m)
	return nil
}

// SchemaType holds the set of type names a "type" keyword accepts, whether
// the JSON value was a single string or an array of strings.
type SchemaType []string

func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}

	return ErrInvalidSchemaType
}

// ConstValue represents the "const" keyword's value, distinguishing "not
// present" from "present and null".
type ConstValue struct {
	Value any
	IsSet bool
}

func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	if cv == nil {
		return ErrNilConstValue
	}
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

// walkSubschemas calls visit on every direct subschema field of s, the one
// traversal shared by the Reference Resolver's registry, universe
// collection, and boundary collection. Map-valued fields are visited in
// sorted key order so callers don't need their own sorting.
func (s *Schema) walkSubschemas(visit func(path string, child *Schema)) {
	if s == nil || s.Boolean != nil {
		return
	}

	visitMap := func(field string, m *SchemaMap) {
		if m == nil {
			return
		}
		for _, key := range sortedKeys(*m) {
			visit(field+"/"+jsonPointerEscape(key), (*m)[key])
		}
	}
	visitSlice := func(field string, children []*Schema) {
		for i, child := range children {
			visit(field+"/"+itoa(i), child)
		}
	}
	visitNamedMap := func(field string, m map[string]*Schema) {
		for _, key := range sortedKeysAny(m) {
			visit(field+"/"+jsonPointerEscape(key), m[key])
		}
	}

	visitSlice("allOf", s.AllOf)
	visitSlice("anyOf", s.AnyOf)
	visitSlice("oneOf", s.OneOf)
	if s.Not != nil {
		visit("not", s.Not)
	}
	if s.If != nil {
		visit("if", s.If)
	}
	if s.Then != nil {
		visit("then", s.Then)
	}
	if s.Else != nil {
		visit("else", s.Else)
	}
	visitNamedMap("dependentSchemas", s.DependentSchemas)
	visitSlice("prefixItems", s.PrefixItems)
	if s.Items != nil {
		visit("items", s.Items)
	}
	if s.Contains != nil {
		visit("contains", s.Contains)
	}
	visitMap("properties", s.Properties)
	visitMap("patternProperties", s.PatternProperties)
	if s.AdditionalProperties != nil {
		visit("additionalProperties", s.AdditionalProperties)
	}
	if s.PropertyNames != nil {
		visit("propertyNames", s.PropertyNames)
	}
	visitNamedMap("$defs", s.Defs)
	visitNamedMap("definitions", s.Definitions)
}
