package subsumecheck

// boundaryInfo collects the finite set of "interesting" scalar values the
// Solver Driver's bounded search draws candidates from — every numeric or
// string-length literal appearing anywhere in either schema, plus a few
// fixed points (0, empty string) that matter regardless of what either
// schema mentions.
type boundaryInfo struct {
	numbers        []*Rat
	stringLengths  []int
	stringLiterals []string
}

// collectBoundary walks producer and consumer (already $ref-inlined) and
// gathers the literals the search will use as boundary candidates (§4.4
// step 1: "a standard bounded/small-model argument").
func collectBoundary(schemas ...*Schema) boundaryInfo {
	info := boundaryInfo{}
	numSeen := map[string]bool{}
	lenSeen := map[int]bool{}
	strSeen := map[string]bool{}

	addNum := func(r *Rat) {
		if r == nil {
			return
		}
		key := FormatRat(r)
		if numSeen[key] {
			return
		}
		numSeen[key] = true
		info.numbers = append(info.numbers, r)
	}
	addLen := func(n int) {
		if lenSeen[n] {
			return
		}
		lenSeen[n] = true
		info.stringLengths = append(info.stringLengths, n)
	}
	addStr := func(s string) {
		if strSeen[s] {
			return
		}
		strSeen[s] = true
		info.stringLiterals = append(info.stringLiterals, s)
	}

	var walk func(s *Schema)
	walk = func(s *Schema) {
		if s == nil || s.Boolean != nil {
			return
		}
		addNum(s.Minimum)
		addNum(s.Maximum)
		addNum(s.ExclusiveMinimum)
		addNum(s.ExclusiveMaximum)
		addNum(s.MultipleOf)
		if s.MinLength != nil {
			addLen(int(*s.MinLength))
		}
		if s.MaxLength != nil {
			addLen(int(*s.MaxLength))
		}
		if s.Const != nil && s.Const.IsSet {
			switch v := s.Const.Value.(type) {
			case string:
				addStr(v)
			}
			if r := NewRat(s.Const.Value); r != nil {
				addNum(r)
			}
		}
		for _, e := range s.Enum {
			switch v := e.(type) {
			case string:
				addStr(v)
			}
			if r := NewRat(e); r != nil {
				addNum(r)
			}
		}
		if s.Pattern != nil {
			if witness, ok := synthesizeMatch(*s.Pattern); ok {
				addStr(witness)
			}
		}
		if s.Format != nil {
			if witness, ok := formatWitness(*s.Format); ok {
				addStr(witness)
			}
		}

		s.walkSubschemas(func(_ string, child *Schema) {
			walk(child)
		})
	}

	for _, s := range schemas {
		walk(s)
	}

	addNum(NewRat(0))
	addLen(0)
	addStr("")

	return info
}

// formatWitness returns a static, known-good example value for most of the
// formats the registry understands, so the search has a realistic string
// candidate even when the schema has no pattern to synthesize from. Formats
// without an entry below (e.g. "period", "uri-template") report ok=false.
func formatWitness(format string) (string, bool) {
	examples := map[string]string{
		"date-time":             "1970-01-01T00:00:00Z",
		"date":                  "1970-01-01",
		"time":                  "00:00:00Z",
		"duration":              "P1D",
		"hostname":              "example.com",
		"email":                 "a@example.com",
		"ipv4":                  "0.0.0.0",
		"ip-address":            "0.0.0.0",
		"ipv6":                  "::1",
		"uri":                   "https://example.com",
		"iri":                   "https://example.com",
		"uri-reference":         "/path",
		"iri-reference":         "/path",
		"json-pointer":          "/a/b",
		"relative-json-pointer": "0",
		"uuid":                  "00000000-0000-0000-0000-000000000000",
		"regex":                 "a",
	}
	w, ok := examples[format]
	return w, ok
}
