package subsumecheck

// compileContains translates "contains" together with "minContains"/
// "maxContains": the number of array elements satisfying the contains
// subschema must fall within [minContains, maxContains] (default [1, len]).
func compileContains(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Contains == nil {
		return nil, nil
	}
	inner, err := CompileSchema(cc, s.Contains, path+"/contains")
	if err != nil {
		return nil, err
	}

	minContains := 1
	if s.MinContains != nil {
		minContains = int(*s.MinContains)
	}
	maxContains := -1
	if s.MaxContains != nil {
		maxContains = int(*s.MaxContains)
	}

	return &Constraint{
		Leaves: inner.Leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindArr {
				return true
			}
			count := 0
			for _, elem := range v.Arr {
				if inner.Eval(elem, u) {
					count++
				}
			}
			if count < minContains {
				return false
			}
			if maxContains >= 0 && count > maxContains {
				return false
			}
			return true
		},
	}, nil
}
