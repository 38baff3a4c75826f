package subsumecheck

import "unicode/utf8"

// compileMinLength translates "minLength": non-string Values always
// satisfy it, string Values must have at least this many Unicode code
// points (JSON Schema counts characters, not bytes).
func compileMinLength(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MinLength == nil {
		return nil, nil
	}
	bound := int(*s.MinLength)
	label := cc.labels.New(cc.side, path, "minLength")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindStr {
			return true
		}
		return utf8.RuneCountInString(v.Str) >= bound
	}), nil
}
