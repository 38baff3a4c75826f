package subsumecheck

import (
	"net/url"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// SchemaRegistry indexes every subschema reachable from a document's root by
// its JSON Pointer path, so $ref targets resolve by direct lookup rather
// than a live walk each time.
type SchemaRegistry struct {
	root  *Schema
	byPtr map[string]*Schema
}

// buildRegistry walks root's entire subschema tree and records each node
// under its JSON Pointer path ("", "/$defs/Foo", "/properties/bar/$defs/Baz", ...).
func buildRegistry(root *Schema) *SchemaRegistry {
	reg := &SchemaRegistry{root: root, byPtr: map[string]*Schema{"": root}}
	var walk func(prefix string, s *Schema)
	walk = func(prefix string, s *Schema) {
		s.walkSubschemas(func(path string, child *Schema) {
			if child == nil {
				return
			}
			full := prefix + "/" + path
			reg.byPtr[full] = child
			walk(full, child)
		})
	}
	walk("", root)
	return reg
}

// resolvePointer resolves a "#/..." style reference against the registry,
// decoding both RFC 6901 (~0/~1) and URI percent-encoding, the way the
// teacher's resolveJSONPointer combines jsonpointer.Parse with
// url.PathUnescape for Draft 2020-12 compatibility.
func (reg *SchemaRegistry) resolvePointer(ref string) (*Schema, error) {
	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" || pointer == "/" {
		return reg.root, nil
	}

	segments := jsonpointer.Parse(pointer)
	full := ""
	for _, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrUnresolvedReference
		}
		full += "/" + jsonPointerEscape(decoded)
	}

	schema, ok := reg.byPtr[full]
	if !ok {
		return nil, ErrUnresolvedReference
	}
	return schema, nil
}

// resolveExternal handles a $ref that is not a local "#/..." pointer: the
// only supported case is a document whose root carries an embedded $defs/
// definitions entry with a matching $id (no network fetch — Non-goal).
func (reg *SchemaRegistry) resolveExternal(ref string) (*Schema, error) {
	baseURI, _, _ := strings.Cut(ref, "#")
	var found *Schema
	for _, s := range reg.byPtr {
		if s.ID != "" && s.ID == baseURI {
			found = s
			break
		}
	}
	if found == nil {
		return nil, ErrUnresolvedReference
	}
	if fragment := strings.SplitN(ref, "#", 2); len(fragment) == 2 && fragment[1] != "" {
		sub := buildRegistry(found)
		return sub.resolvePointer("#" + fragment[1])
	}
	return found, nil
}

// resolve dispatches a $ref value to the local-pointer or external-URI path.
func (reg *SchemaRegistry) resolve(ref string) (*Schema, error) {
	if strings.HasPrefix(ref, "#") {
		return reg.resolvePointer(ref)
	}
	return reg.resolveExternal(ref)
}

// refGraph builds the $ref dependency graph over registry paths, used to
// detect cyclic schemas (§4.1) before any inlining is attempted. Each node
// also has an edge to its direct subschemas, so a $ref nested anywhere in a
// definition's body that points back to that definition closes a cycle.
func (reg *SchemaRegistry) refGraph() (map[string][]string, error) {
	graph := map[string][]string{}
	for path, s := range reg.byPtr {
		graph[path] = nil
		s.walkSubschemas(func(sub string, child *Schema) {
			if child != nil {
				graph[path] = append(graph[path], path+"/"+sub)
			}
		})
		if s.Ref == "" {
			continue
		}
		target, err := reg.resolve(s.Ref)
		if err != nil {
			return nil, err
		}
		targetPath := reg.pathOf(target)
		graph[path] = append(graph[path], targetPath)
	}
	return graph, nil
}

func (reg *SchemaRegistry) pathOf(target *Schema) string {
	for path, s := range reg.byPtr {
		if s == target {
			return path
		}
	}
	return ""
}

// ResolveAndInline validates root's $ref graph is acyclic, then returns a
// fully-inlined copy of root with every $ref replaced by its resolved
// target — the Schema Compiler never has to perform reference resolution
// itself (§4.1 step 5).
func ResolveAndInline(root *Schema) (*Schema, error) {
	if root == nil || root.Boolean != nil {
		return root, nil
	}

	reg := buildRegistry(root)
	graph, err := reg.refGraph()
	if err != nil {
		return nil, err
	}
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 {
			return nil, ErrCyclicSchema
		}
	}
	for node, targets := range graph {
		for _, t := range targets {
			if t == node {
				return nil, ErrCyclicSchema
			}
		}
	}

	memo := map[*Schema]*Schema{}
	var inline func(s *Schema) (*Schema, error)
	inline = func(s *Schema) (*Schema, error) {
		if s == nil || s.Boolean != nil {
			return s, nil
		}
		if cached, ok := memo[s]; ok {
			return cached, nil
		}

		out := *s
		memo[s] = &out

		if s.Ref != "" {
			target, err := reg.resolve(s.Ref)
			if err != nil {
				return nil, err
			}
			resolved, err := inline(target)
			if err != nil {
				return nil, err
			}
			out.Ref = ""
			if hasOnlyRef(s) {
				*memo[s] = *resolved
				return memo[s], nil
			}
			withoutRef := out
			if err := inlineSubschemas(&withoutRef, inline); err != nil {
				return nil, err
			}
			merged := Schema{AllOf: []*Schema{resolved, &withoutRef}}
			*memo[s] = merged
			return memo[s], nil
		}

		if err := inlineSubschemas(&out, inline); err != nil {
			return nil, err
		}
		*memo[s] = out
		return memo[s], nil
	}

	return inline(root)
}

// hasOnlyRef reports whether s carries a $ref and no other constraining
// keyword (2020-12 allows siblings, but the common case has none).
func hasOnlyRef(s *Schema) bool {
	return schemaHasNoAssertions(s)
}

func schemaHasNoAssertions(s *Schema) bool {
	return s.Defs == nil && s.Definitions == nil &&
		s.AllOf == nil && s.AnyOf == nil && s.OneOf == nil && s.Not == nil &&
		s.If == nil && s.Then == nil && s.Else == nil && s.DependentSchemas == nil &&
		s.PrefixItems == nil && s.Items == nil && s.Contains == nil &&
		s.Properties == nil && s.PatternProperties == nil && s.AdditionalProperties == nil && s.PropertyNames == nil &&
		len(s.Type) == 0 && s.Enum == nil && s.Const == nil &&
		s.MultipleOf == nil && s.Maximum == nil && s.ExclusiveMaximum == nil && s.Minimum == nil && s.ExclusiveMinimum == nil &&
		s.MaxLength == nil && s.MinLength == nil && s.Pattern == nil &&
		s.MaxItems == nil && s.MinItems == nil && s.UniqueItems == nil &&
		s.MaxProperties == nil && s.MinProperties == nil && s.Required == nil && s.DependentRequired == nil &&
		s.Format == nil && len(s.Extra) == 0
}

// inlineSubschemas replaces every direct subschema field of s in place with
// its inlined form.
func inlineSubschemas(s *Schema, inline func(*Schema) (*Schema, error)) error {
	var err error
	mapInline := func(m *SchemaMap) error {
		if m == nil {
			return nil
		}
		out := make(SchemaMap, len(*m))
		for k, child := range *m {
			resolved, e := inline(child)
			if e != nil {
				return e
			}
			out[k] = resolved
		}
		*m = out
		return nil
	}
	sliceInline := func(list []*Schema) ([]*Schema, error) {
		out := make([]*Schema, len(list))
		for i, child := range list {
			resolved, e := inline(child)
			if e != nil {
				return nil, e
			}
			out[i] = resolved
		}
		return out, nil
	}
	namedMapInline := func(m map[string]*Schema) (map[string]*Schema, error) {
		if m == nil {
			return nil, nil
		}
		out := make(map[string]*Schema, len(m))
		for k, child := range m {
			resolved, e := inline(child)
			if e != nil {
				return nil, e
			}
			out[k] = resolved
		}
		return out, nil
	}

	if s.AllOf, err = sliceInline(s.AllOf); err != nil {
		return err
	}
	if s.AnyOf, err = sliceInline(s.AnyOf); err != nil {
		return err
	}
	if s.OneOf, err = sliceInline(s.OneOf); err != nil {
		return err
	}
	if s.Not != nil {
		if s.Not, err = inline(s.Not); err != nil {
			return err
		}
	}
	if s.If != nil {
		if s.If, err = inline(s.If); err != nil {
			return err
		}
	}
	if s.Then != nil {
		if s.Then, err = inline(s.Then); err != nil {
			return err
		}
	}
	if s.Else != nil {
		if s.Else, err = inline(s.Else); err != nil {
			return err
		}
	}
	if s.DependentSchemas, err = namedMapInline(s.DependentSchemas); err != nil {
		return err
	}
	if s.PrefixItems, err = sliceInline(s.PrefixItems); err != nil {
		return err
	}
	if s.Items != nil {
		if s.Items, err = inline(s.Items); err != nil {
			return err
		}
	}
	if s.Contains != nil {
		if s.Contains, err = inline(s.Contains); err != nil {
			return err
		}
	}
	if err = mapInline(s.Properties); err != nil {
		return err
	}
	if err = mapInline(s.PatternProperties); err != nil {
		return err
	}
	if s.AdditionalProperties != nil {
		if s.AdditionalProperties, err = inline(s.AdditionalProperties); err != nil {
			return err
		}
	}
	if s.PropertyNames != nil {
		if s.PropertyNames, err = inline(s.PropertyNames); err != nil {
			return err
		}
	}
	if s.Defs, err = namedMapInline(s.Defs); err != nil {
		return err
	}
	if s.Definitions, err = namedMapInline(s.Definitions); err != nil {
		return err
	}
	return nil
}
