package subsumecheck

// Universe is the finite domain the Solver Driver searches over for one
// Check call: the set of object keys worth considering and the longest
// array worth constructing. It is built once from the producer and consumer
// schemas and never mutated afterward — there is no package-level singleton
// (§5, §9 "Global state discipline"), each Check call owns its own Universe.
type Universe struct {
	Keys        []string
	keySet      map[string]struct{}
	MaxArrayLen int
}

// NewUniverse seals a Universe over the given key set and array-length bound.
func NewUniverse(keys []string, maxArrayLen int) *Universe {
	keySet := make(map[string]struct{}, len(keys))
	deduped := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, seen := keySet[k]; seen {
			continue
		}
		keySet[k] = struct{}{}
		deduped = append(deduped, k)
	}
	return &Universe{
		Keys:        sortedStringSet(deduped),
		keySet:      keySet,
		MaxArrayLen: maxArrayLen,
	}
}

// HasKey reports whether k is a member of the sealed key universe.
func (u *Universe) HasKey(k string) bool {
	if u == nil {
		return true
	}
	_, ok := u.keySet[k]
	return ok
}

// defaultMaxArrayLen bounds array length when neither schema mentions one,
// per the Non-goals' finite-universe requirement. Chosen at the low end of
// the 8-16 range so a handful of elements is always reachable even when
// prefixItems never pushes the bound higher, while staying cheap for the
// Solver Driver's combinatorial candidate construction.
const defaultMaxArrayLen = 8

// CollectUniverse walks both schemas (post $ref-inlining) and gathers every
// properties/required/dependentRequired/dependentSchemas key name mentioned
// by either, plus the longest prefixItems list, to build the Universe the
// solver will search over. patternProperties patterns contribute no keys.
func CollectUniverse(producer, consumer *Schema) *Universe {
	keySet := map[string]struct{}{}
	maxArrayLen := defaultMaxArrayLen

	var walk func(s *Schema)
	walk = func(s *Schema) {
		if s == nil || s.Boolean != nil {
			return
		}
		if s.Properties != nil {
			for k := range *s.Properties {
				keySet[k] = struct{}{}
			}
		}
		for _, k := range s.Required {
			keySet[k] = struct{}{}
		}
		for k := range s.DependentRequired {
			keySet[k] = struct{}{}
			for _, dep := range s.DependentRequired[k] {
				keySet[dep] = struct{}{}
			}
		}
		if s.DependentSchemas != nil {
			for k := range s.DependentSchemas {
				keySet[k] = struct{}{}
			}
		}
		if len(s.PrefixItems)+1 > maxArrayLen {
			maxArrayLen = len(s.PrefixItems) + 1
		}

		s.walkSubschemas(func(_ string, child *Schema) {
			walk(child)
		})
	}

	walk(producer)
	walk(consumer)

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	return NewUniverse(keys, maxArrayLen)
}
