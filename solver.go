package subsumecheck

import (
	"context"
	"math/big"
	"sort"
)

// maxBruteForceKeys bounds how many distinct object keys the solver will
// brute-force subsets of. Beyond this the candidate space for object shape
// alone exceeds what a bounded search can cover in reasonable time.
const maxBruteForceKeys = 12

// maxSearchDepth bounds how many levels of array/object nesting the
// candidate generator recurses into when building element values.
const maxSearchDepth = 3

// sampleSize bounds how many distinct representative element values are
// combined per array index or object key when building compound candidates.
// 5 covers one representative of each of Null, Bool, Int, Real, Str so
// positions can differ by Kind, which is what heterogeneous prefixItems/
// properties schemas need to be distinguished.
const sampleSize = 5

// cartesianBudget bounds how many positions (array indices or object keys)
// get a full cross product of sample values before the generator falls back
// to a cheaper baseline-plus-single-position variation scheme.
const cartesianBudget = 4

// SolveResult is the outcome of one bounded search for a counterexample.
type SolveResult struct {
	SAT     bool
	Witness Value
}

// Solve searches for a Value that satisfies producer but not consumer,
// within the sealed Universe, returning the first one found. It realizes
// spec.md's "decidable first-order theory" without an external SMT solver:
// no such binding exists anywhere in the retrieved corpus, so satisfiability
// here is decided by a schema-directed boundary-point search instead (see
// DESIGN.md).
func Solve(ctx context.Context, producer, consumer *Constraint, universe *Universe, info boundaryInfo) (*SolveResult, error) {
	if len(universe.Keys) > maxBruteForceKeys {
		return nil, ErrBoundExceeded
	}

	select {
	case <-ctx.Done():
		return nil, ErrSolverTimeout
	default:
	}

	candidates := candidateValues(universe, info, maxSearchDepth)

	checked := 0
	for _, v := range candidates {
		checked++
		if checked%256 == 0 {
			select {
			case <-ctx.Done():
				return nil, ErrSolverTimeout
			default:
			}
		}
		if producer.Eval(v, universe) && !consumer.Eval(v, universe) {
			return &SolveResult{SAT: true, Witness: minimizeWitness(producer, consumer, universe, v)}, nil
		}
	}

	select {
	case <-ctx.Done():
		return nil, ErrSolverTimeout
	default:
	}
	return &SolveResult{SAT: false}, nil
}

// candidateValues builds the bounded set of Values the search tries, in the
// defaulting order described in §4.4 step 5 (null, then false/0/""/[]/{}
// before anything larger) so the first SAT hit found is already close to
// minimal.
func candidateValues(universe *Universe, info boundaryInfo, depth int) []Value {
	values := []Value{NullValue(), BoolValue(false), BoolValue(true)}

	for _, n := range numberCandidates(info) {
		if n.IsInt() {
			values = append(values, IntValue(n))
		}
		values = append(values, RealValue(n))
	}

	for _, s := range stringCandidates(info) {
		values = append(values, StrValue(s))
	}

	if depth > 0 {
		elemCandidates := candidateValues(universe, info, depth-1)
		sample := representativeSample(elemCandidates, sampleSize)

		for length := 0; length <= universe.MaxArrayLen; length++ {
			for _, arr := range positionAssignments(length, sample) {
				values = append(values, ArrValue(arr))
			}
		}

		for _, subset := range keySubsets(universe.Keys) {
			for _, fields := range keyAssignments(subset, sample) {
				values = append(values, ObjValue(fields))
			}
		}
	} else {
		values = append(values, ArrValue(nil), ObjValue(map[string]Value{}))
	}

	return values
}

// representativeSample picks up to n candidates spanning as many distinct
// Kinds as possible (so array/object positions can be assigned values of
// different Kinds rather than all collapsing to the same type), then fills
// any remaining slots with further candidates in order.
func representativeSample(vs []Value, n int) []Value {
	if len(vs) == 0 {
		return []Value{NullValue()}
	}

	var out []Value
	seenKind := map[Kind]bool{}
	for _, v := range vs {
		if len(out) >= n {
			break
		}
		if seenKind[v.Kind] {
			continue
		}
		seenKind[v.Kind] = true
		out = append(out, v)
	}
	for _, v := range vs {
		if len(out) >= n {
			break
		}
		out = append(out, v)
	}
	return out
}

// positionAssignments returns the array candidates of length n built from
// sample, covering combinations where different indices hold values of
// different Kinds. Below cartesianBudget it enumerates the full cross
// product; above it, it falls back to a baseline vector with one index
// varied at a time, to keep the candidate count bounded.
func positionAssignments(n int, sample []Value) [][]Value {
	if n == 0 {
		return [][]Value{{}}
	}
	if n <= cartesianBudget {
		out := make([][]Value, 0, pow(len(sample), n))
		for idx := 0; idx < pow(len(sample), n); idx++ {
			assignment := make([]Value, n)
			rem := idx
			for pos := 0; pos < n; pos++ {
				assignment[pos] = sample[rem%len(sample)]
				rem /= len(sample)
			}
			out = append(out, assignment)
		}
		return out
	}

	baseline := make([]Value, n)
	for i := range baseline {
		baseline[i] = sample[0]
	}
	out := [][]Value{append([]Value(nil), baseline...)}
	for pos := 0; pos < n; pos++ {
		for _, v := range sample {
			variant := append([]Value(nil), baseline...)
			variant[pos] = v
			out = append(out, variant)
		}
	}
	return out
}

// keyAssignments is positionAssignments' object counterpart: it builds field
// maps over subset where different keys can hold values of different Kinds,
// rather than one shared value across the whole subset.
func keyAssignments(subset []string, sample []Value) []map[string]Value {
	n := len(subset)
	if n == 0 {
		return []map[string]Value{{}}
	}
	if n <= cartesianBudget {
		out := make([]map[string]Value, 0, pow(len(sample), n))
		for idx := 0; idx < pow(len(sample), n); idx++ {
			fields := make(map[string]Value, n)
			rem := idx
			for _, k := range subset {
				fields[k] = sample[rem%len(sample)]
				rem /= len(sample)
			}
			out = append(out, fields)
		}
		return out
	}

	baseline := make(map[string]Value, n)
	for _, k := range subset {
		baseline[k] = sample[0]
	}
	out := []map[string]Value{cloneFields(baseline)}
	for _, k := range subset {
		for _, v := range sample {
			fields := cloneFields(baseline)
			fields[k] = v
			out = append(out, fields)
		}
	}
	return out
}

func cloneFields(m map[string]Value) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

// numberCandidates expands each boundary literal into itself and its
// immediate integer neighbors, a standard small-model basis for monotone
// order constraints (minimum/maximum/exclusive bounds).
func numberCandidates(info boundaryInfo) []*Rat {
	seen := map[string]bool{}
	var out []*Rat
	add := func(r *Rat) {
		key := FormatRat(r)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, r)
	}

	one := big.NewRat(1, 1)
	for _, n := range info.numbers {
		add(n)
		add(&Rat{new(big.Rat).Sub(n.Rat, one)})
		add(&Rat{new(big.Rat).Add(n.Rat, one)})
	}
	if len(out) == 0 {
		add(NewRat(0))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j].Rat) < 0 })
	return out
}

// stringCandidates builds filler strings at every boundary length plus the
// literal/pattern/format witnesses collected from the schemas.
func stringCandidates(info boundaryInfo) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, s := range info.stringLiterals {
		add(s)
	}

	lengths := append([]int(nil), info.stringLengths...)
	lengths = append(lengths, 0, 1, 2, 3)
	for _, n := range lengths {
		if n < 0 || n > 64 {
			continue
		}
		filler := make([]byte, n)
		for i := range filler {
			filler[i] = 'a'
		}
		add(string(filler))
	}

	sort.Strings(out)
	return out
}

// keySubsets enumerates every subset of keys, in increasing size order so
// smaller object candidates are tried first — already bounded by
// maxBruteForceKeys at the Solve entry point.
func keySubsets(keys []string) [][]string {
	var subsets [][]string
	n := len(keys)
	for mask := 0; mask < (1 << n); mask++ {
		var subset []string
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, keys[i])
			}
		}
		subsets = append(subsets, subset)
	}
	sort.Slice(subsets, func(i, j int) bool { return len(subsets[i]) < len(subsets[j]) })
	return subsets
}

// minimizeWitness runs a narrower second pass (§4.4 "Minimization") that
// fixes the found witness's Kind and tries to shrink arrays/objects/strings
// further while the candidate still satisfies producer && !consumer.
func minimizeWitness(producer, consumer *Constraint, universe *Universe, found Value) Value {
	best := found
	switch found.Kind {
	case KindArr:
		for length := 0; length < len(found.Arr); length++ {
			candidate := ArrValue(append([]Value(nil), found.Arr[:length]...))
			if producer.Eval(candidate, universe) && !consumer.Eval(candidate, universe) {
				best = candidate
				break
			}
		}
	case KindObj:
		keys := found.sortedObjKeys()
		for dropCount := 1; dropCount <= len(keys); dropCount++ {
			trimmed := make(map[string]Value, len(keys)-dropCount)
			for _, k := range keys[dropCount:] {
				trimmed[k] = found.Obj[k]
			}
			candidate := ObjValue(trimmed)
			if producer.Eval(candidate, universe) && !consumer.Eval(candidate, universe) {
				best = candidate
				break
			}
		}
	case KindStr:
		for length := 0; length < len(found.Str); length++ {
			candidate := StrValue(found.Str[:length])
			if producer.Eval(candidate, universe) && !consumer.Eval(candidate, universe) {
				best = candidate
				break
			}
		}
	}
	return best
}
