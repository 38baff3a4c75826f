package subsumecheck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// replace substitutes {key} placeholders in template with values from params.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}

// itoa is strconv.Itoa under a short name matching the rest of the file's
// other thin wrappers.
func itoa(i int) string {
	return strconv.Itoa(i)
}

// jsonPointerEscape escapes a raw object key per RFC 6901 (~ -> ~0, / -> ~1)
// so it can be embedded as a JSON Pointer path segment in a constraint label.
func jsonPointerEscape(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// sortedKeys returns m's keys in lexical order, so label and path generation
// is deterministic across runs.
func sortedKeys(m SchemaMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedKeysAny is sortedKeys for plain map[string]*Schema fields ($defs,
// dependentSchemas) that don't carry the SchemaMap marshaling wrapper.
func sortedKeysAny(m map[string]*Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedStringSet returns a sorted copy of keys, used when iterating a
// Universe's Keys or graph nodes deterministically.
func sortedStringSet(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}
