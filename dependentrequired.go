package subsumecheck

// compileDependentRequired translates "dependentRequired": if the trigger
// key is present, every key in its dependency list must also be present.
func compileDependentRequired(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.DependentRequired) == 0 {
		return nil, nil
	}
	deps := make(map[string][]string, len(s.DependentRequired))
	for trigger, required := range s.DependentRequired {
		deps[trigger] = append([]string(nil), required...)
	}
	label := cc.labels.New(cc.side, path, "dependentRequired")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindObj {
			return true
		}
		for trigger, required := range deps {
			if _, present := v.Obj[trigger]; !present {
				continue
			}
			for _, key := range required {
				if _, ok := v.Obj[key]; !ok {
					return false
				}
			}
		}
		return true
	}), nil
}
