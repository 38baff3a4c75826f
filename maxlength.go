package subsumecheck

import "unicode/utf8"

// compileMaxLength translates "maxLength": string Values must have at most
// this many Unicode code points.
func compileMaxLength(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MaxLength == nil {
		return nil, nil
	}
	bound := int(*s.MaxLength)
	label := cc.labels.New(cc.side, path, "maxLength")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindStr {
			return true
		}
		return utf8.RuneCountInString(v.Str) <= bound
	}), nil
}
