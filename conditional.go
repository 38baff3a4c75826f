package subsumecheck

// compileConditional translates "if"/"then"/"else": when the value
// satisfies "if", it must also satisfy "then" (if present); otherwise it
// must satisfy "else" (if present). A value that fails "if" with no "else"
// trivially passes, matching the JSON Schema Draft 2020-12 semantics where
// a missing branch imposes no constraint.
func compileConditional(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.If == nil {
		return nil, nil
	}
	ifC, err := CompileSchema(cc, s.If, path+"/if")
	if err != nil {
		return nil, err
	}

	var thenC, elseC *Constraint
	if s.Then != nil {
		thenC, err = CompileSchema(cc, s.Then, path+"/then")
		if err != nil {
			return nil, err
		}
	}
	if s.Else != nil {
		elseC, err = CompileSchema(cc, s.Else, path+"/else")
		if err != nil {
			return nil, err
		}
	}

	var leaves []*Leaf
	leaves = append(leaves, ifC.Leaves...)
	if thenC != nil {
		leaves = append(leaves, thenC.Leaves...)
	}
	if elseC != nil {
		leaves = append(leaves, elseC.Leaves...)
	}

	return &Constraint{
		Leaves: leaves,
		Eval: func(v Value, u *Universe) bool {
			if ifC.Eval(v, u) {
				if thenC != nil {
					return thenC.Eval(v, u)
				}
				return true
			}
			if elseC != nil {
				return elseC.Eval(v, u)
			}
			return true
		},
	}, nil
}
