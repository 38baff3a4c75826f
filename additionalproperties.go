package subsumecheck

import "regexp"

// compileAdditionalProperties translates "additionalProperties": it applies
// to every object key not named by "properties" and not matched by any
// "patternProperties" pattern.
func compileAdditionalProperties(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.AdditionalProperties == nil {
		return nil, nil
	}

	named := map[string]struct{}{}
	if s.Properties != nil {
		for key := range *s.Properties {
			named[key] = struct{}{}
		}
	}
	var patterns []*regexp.Regexp
	if s.PatternProperties != nil {
		for pattern := range *s.PatternProperties {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, &UnsupportedRegexError{Path: path + "/patternProperties", Pattern: pattern}
			}
			patterns = append(patterns, re)
		}
	}

	inner, err := CompileSchema(cc, s.AdditionalProperties, path+"/additionalProperties")
	if err != nil {
		return nil, err
	}

	return &Constraint{
		Leaves: inner.Leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindObj {
				return true
			}
			for key, field := range v.Obj {
				if _, ok := named[key]; ok {
					continue
				}
				matched := false
				for _, re := range patterns {
					if re.MatchString(key) {
						matched = true
						break
					}
				}
				if matched {
					continue
				}
				if !inner.Eval(field, u) {
					return false
				}
			}
			return true
		},
	}, nil
}
