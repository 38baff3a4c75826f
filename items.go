package subsumecheck

// compileItems translates "prefixItems" (tuple-typed leading slots) and
// "items" (the schema every remaining slot must satisfy), as one combined
// constraint since they jointly determine what each array index requires.
func compileItems(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Items == nil && len(s.PrefixItems) == 0 {
		return nil, nil
	}

	prefix := make([]*Constraint, len(s.PrefixItems))
	for i, child := range s.PrefixItems {
		compiled, err := CompileSchema(cc, child, path+"/prefixItems/"+itoa(i))
		if err != nil {
			return nil, err
		}
		prefix[i] = compiled
	}

	var items *Constraint
	if s.Items != nil {
		compiled, err := CompileSchema(cc, s.Items, path+"/items")
		if err != nil {
			return nil, err
		}
		items = compiled
	}

	// With prefixItems but no tail "items", the tuple is closed: arrays
	// longer than the tuple are rejected rather than left unconstrained.
	var tailCap *Leaf
	if items == nil && len(prefix) > 0 {
		bound := len(prefix)
		label := cc.labels.New(cc.side, path, "prefixItems:tailLength")
		tailCap = &Leaf{Label: label, Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindArr {
				return true
			}
			return len(v.Arr) <= bound
		}}
	}

	var leaves []*Leaf
	for _, c := range prefix {
		leaves = append(leaves, c.Leaves...)
	}
	if items != nil {
		leaves = append(leaves, items.Leaves...)
	}
	if tailCap != nil {
		leaves = append(leaves, tailCap)
	}

	return &Constraint{
		Leaves: leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindArr {
				return true
			}
			if tailCap != nil && !tailCap.Eval(v, u) {
				return false
			}
			for i, elem := range v.Arr {
				if i < len(prefix) {
					if !prefix[i].Eval(elem, u) {
						return false
					}
					continue
				}
				if items != nil && !items.Eval(elem, u) {
					return false
				}
			}
			return true
		},
	}, nil
}
