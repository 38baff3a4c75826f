package subsumecheck

import "regexp"

// compilePattern translates "pattern" into an unanchored regexp match
// against string Values. Go's RE2 engine covers the supported pattern
// subset (§4.3); patterns using backreferences or lookaround fail to
// compile under RE2 and are reported as ErrUnsupportedRegex rather than
// silently ignored.
func compilePattern(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Pattern == nil {
		return nil, nil
	}
	re, err := regexp.Compile(*s.Pattern)
	if err != nil {
		return nil, &UnsupportedRegexError{Path: path, Pattern: *s.Pattern}
	}
	label := cc.labels.New(cc.side, path, "pattern")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindStr {
			return true
		}
		return re.MatchString(v.Str)
	}), nil
}
