package subsumecheck

// compileRequired translates "required": every named key must be present
// on an object Value.
func compileRequired(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.Required) == 0 {
		return nil, nil
	}
	required := append([]string(nil), s.Required...)
	label := cc.labels.New(cc.side, path, "required")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindObj {
			return true
		}
		for _, key := range required {
			if _, ok := v.Obj[key]; !ok {
				return false
			}
		}
		return true
	}), nil
}
