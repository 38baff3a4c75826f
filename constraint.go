package subsumecheck

// EvalFunc decides whether a concrete Value satisfies one compiled
// constraint, within the bounds of the sealed Universe.
type EvalFunc func(v Value, u *Universe) bool

// Leaf is one labeled constraint the Witness Extractor can report on during
// diagnosis — every assertion keyword compiles to exactly one Leaf (or one
// Leaf per branch, for allOf/anyOf/oneOf).
type Leaf struct {
	Label *Label
	Eval  EvalFunc
}

// Constraint is the compiled form of a schema (or subschema): a predicate
// over Value plus the flat list of labeled leaves that predicate is built
// from, so the diagnosis step can evaluate each leaf independently against
// a counterexample.
type Constraint struct {
	Eval   EvalFunc
	Leaves []*Leaf
}

// always builds a Constraint with no leaves that accepts (or rejects)
// every Value — used for boolean schemas and empty keyword sets.
func always(accept bool) *Constraint {
	return &Constraint{Eval: func(Value, *Universe) bool { return accept }}
}

// leaf wraps a single labeled predicate as a one-leaf Constraint.
func leaf(label *Label, fn EvalFunc) *Constraint {
	l := &Leaf{Label: label, Eval: fn}
	return &Constraint{
		Eval:   fn,
		Leaves: []*Leaf{l},
	}
}

// and combines constraints conjunctively, short-circuiting evaluation but
// always merging every branch's leaves so diagnosis sees all of them.
func and(parts ...*Constraint) *Constraint {
	merged := mergeLeaves(parts)
	return &Constraint{
		Leaves: merged,
		Eval: func(v Value, u *Universe) bool {
			for _, p := range parts {
				if !p.Eval(v, u) {
					return false
				}
			}
			return true
		},
	}
}

// or combines constraints disjunctively.
func or(parts ...*Constraint) *Constraint {
	merged := mergeLeaves(parts)
	return &Constraint{
		Leaves: merged,
		Eval: func(v Value, u *Universe) bool {
			for _, p := range parts {
				if p.Eval(v, u) {
					return true
				}
			}
			return false
		},
	}
}

// exactlyOne combines constraints the way "oneOf" requires: exactly one
// branch matches.
func exactlyOne(parts ...*Constraint) *Constraint {
	merged := mergeLeaves(parts)
	return &Constraint{
		Leaves: merged,
		Eval: func(v Value, u *Universe) bool {
			count := 0
			for _, p := range parts {
				if p.Eval(v, u) {
					count++
				}
			}
			return count == 1
		},
	}
}

// negate wraps a single constraint's Eval in logical negation. Its leaves
// are still reported as they are (a "not" schema's sub-leaves are diagnostic
// context); the negation itself carries no Label of its own.
func negate(c *Constraint) *Constraint {
	return &Constraint{
		Leaves: c.Leaves,
		Eval: func(v Value, u *Universe) bool {
			return !c.Eval(v, u)
		},
	}
}

func mergeLeaves(parts []*Constraint) []*Leaf {
	var out []*Leaf
	for _, p := range parts {
		out = append(out, p.Leaves...)
	}
	return out
}
