package subsumecheck

import (
	"sort"

	"github.com/goccy/go-json"
)

// Kind tags the variant of a Value, mirroring the seven-variant JSON value
// sort data model: Null, Bool, Int, Real, Str, Arr, Obj.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindStr
	KindArr
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindReal:
		return "number"
	case KindStr:
		return "string"
	case KindArr:
		return "array"
	case KindObj:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a concrete JSON value drawn from the tagged sort the Solver
// Driver searches over. Exactly one field is meaningful per Kind; Int and
// Real both carry exact rational magnitudes via Rat so comparisons never
// lose precision at a boundary.
type Value struct {
	Kind Kind

	Bool bool
	Num  *Rat // set for KindInt and KindReal
	Str  string
	Arr  []Value
	Obj  map[string]Value
}

func NullValue() Value { return Value{Kind: KindNull} }
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func IntValue(n *Rat) Value  { return Value{Kind: KindInt, Num: n} }
func RealValue(n *Rat) Value { return Value{Kind: KindReal, Num: n} }
func StrValue(s string) Value { return Value{Kind: KindStr, Str: s} }
func ArrValue(items []Value) Value { return Value{Kind: KindArr, Arr: items} }
func ObjValue(fields map[string]Value) Value { return Value{Kind: KindObj, Obj: fields} }

// IsNumeric reports whether v is an Int or Real value.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindReal
}

// Equal implements the JSON-Schema notion of instance equality: same type
// family (numbers compare across Int/Real), same structural contents.
func (v Value) Equal(o Value) bool {
	switch {
	case v.IsNumeric() && o.IsNumeric():
		return ratEqual(v.Num, o.Num)
	case v.Kind != o.Kind:
		return false
	}

	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindStr:
		return v.Str == o.Str
	case KindArr:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(o.Arr[i]) {
				return false
			}
		}
		return true
	case KindObj:
		if len(v.Obj) != len(o.Obj) {
			return false
		}
		for k, fv := range v.Obj {
			ov, ok := o.Obj[k]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// ToJSON converts v back to a plain Go value suitable for json.Marshal,
// used when rendering a counterexample witness.
func (v Value) ToJSON() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInt, KindReal:
		if v.Num == nil {
			return json.Number("0")
		}
		return json.Number(FormatRat(v.Num))
	case KindStr:
		return v.Str
	case KindArr:
		out := make([]any, len(v.Arr))
		for i, item := range v.Arr {
			out[i] = item.ToJSON()
		}
		return out
	case KindObj:
		out := make(map[string]any, len(v.Obj))
		for k, fv := range v.Obj {
			out[k] = fv.ToJSON()
		}
		return out
	default:
		return nil
	}
}

// sortedObjKeys returns v.Obj's keys in lexical order, for deterministic
// iteration during search and witness rendering.
func (v Value) sortedObjKeys() []string {
	keys := make([]string, 0, len(v.Obj))
	for k := range v.Obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lift converts a Go literal (typically decoded from JSON via go-json, so
// numbers arrive as json.Number) into a Value, rejecting anything outside
// the sealed Universe's bounds (§4.2).
func Lift(literal any, u *Universe) (Value, error) {
	switch lit := literal.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(lit), nil
	case json.Number:
		r := NewRat(lit)
		if r == nil {
			return Value{}, ErrRatConversion
		}
		if r.IsInt() {
			return IntValue(r), nil
		}
		return RealValue(r), nil
	case float64:
		r := NewRat(lit)
		if r == nil {
			return Value{}, ErrRatConversion
		}
		if r.IsInt() {
			return IntValue(r), nil
		}
		return RealValue(r), nil
	case string:
		return StrValue(lit), nil
	case []any:
		if u != nil && len(lit) > u.MaxArrayLen {
			return Value{}, ErrArrayTooLong
		}
		items := make([]Value, len(lit))
		for i, item := range lit {
			lifted, err := Lift(item, u)
			if err != nil {
				return Value{}, err
			}
			items[i] = lifted
		}
		return ArrValue(items), nil
	case map[string]any:
		fields := make(map[string]Value, len(lit))
		for k, fv := range lit {
			if u != nil && !u.HasKey(k) {
				return Value{}, ErrKeyOutOfUniverse
			}
			lifted, err := Lift(fv, u)
			if err != nil {
				return Value{}, err
			}
			fields[k] = lifted
		}
		return ObjValue(fields), nil
	default:
		return Value{}, ErrUnliftableLiteral
	}
}
