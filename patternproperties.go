package subsumecheck

import "regexp"

// compilePatternProperties translates "patternProperties": every object
// key matching a pattern must satisfy that pattern's subschema, for every
// pattern the key matches.
func compilePatternProperties(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.PatternProperties == nil || len(*s.PatternProperties) == 0 {
		return nil, nil
	}

	type compiledPattern struct {
		re *regexp.Regexp
		c  *Constraint
	}
	var compiled []compiledPattern
	var leaves []*Leaf
	for _, pattern := range sortedKeys(*s.PatternProperties) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &UnsupportedRegexError{Path: path + "/patternProperties", Pattern: pattern}
		}
		c, err := CompileSchema(cc, (*s.PatternProperties)[pattern], path+"/patternProperties/"+jsonPointerEscape(pattern))
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledPattern{re: re, c: c})
		leaves = append(leaves, c.Leaves...)
	}

	return &Constraint{
		Leaves: leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindObj {
				return true
			}
			for key, field := range v.Obj {
				for _, cp := range compiled {
					if cp.re.MatchString(key) && !cp.c.Eval(field, u) {
						return false
					}
				}
			}
			return true
		},
	}, nil
}
