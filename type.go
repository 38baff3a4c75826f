package subsumecheck

// compileType translates the "type" keyword: the value's Kind must be one
// of the named type strings, with "number" also accepting integer Values
// per the JSON Schema Draft 2020-12 special case.
func compileType(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.Type) == 0 {
		return nil, nil
	}
	wanted := make(map[string]struct{}, len(s.Type))
	for _, t := range s.Type {
		wanted[t] = struct{}{}
	}
	label := cc.labels.New(cc.side, path, "type")
	return leaf(label, func(v Value, u *Universe) bool {
		if _, ok := wanted[v.Kind.String()]; ok {
			return true
		}
		if v.Kind == KindInt {
			_, ok := wanted["number"]
			return ok
		}
		return false
	}), nil
}
