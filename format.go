package subsumecheck

// compileFormat translates the "format" keyword using the Formats registry
// (formats.go). Format is an assertion here, not an annotation — subsumption
// requires it to actually constrain acceptance.
func compileFormat(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Format == nil {
		return nil, nil
	}
	name := *s.Format
	validator, ok := Formats[name]
	if !ok {
		return nil, &UnsupportedKeywordError{Path: path, Keyword: "format:" + name}
	}
	label := cc.labels.New(cc.side, path, "format:"+name)
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindStr {
			return true
		}
		return validator(v.Str)
	}), nil
}
