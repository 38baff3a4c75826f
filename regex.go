package subsumecheck

import "regexp/syntax"

// synthesizeMatch attempts to build one string that the given pattern
// matches, walking its parsed regexp/syntax tree. It only handles the
// supported pattern subset (literals, concatenation, character classes,
// bounded/unbounded repetition, alternation, anchors, capture groups) —
// anything else (backreferences aren't representable in RE2 at all, so
// they never reach here) returns ok=false and the solver falls back to
// generic string candidates for that schema's string dimension.
func synthesizeMatch(pattern string) (string, bool) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", false
	}
	re = re.Simplify()
	return synthesizeNode(re)
}

func synthesizeNode(re *syntax.Regexp) (string, bool) {
	switch re.Op {
	case syntax.OpLiteral:
		return string(re.Rune), true
	case syntax.OpConcat:
		out := ""
		for _, sub := range re.Sub {
			s, ok := synthesizeNode(sub)
			if !ok {
				return "", false
			}
			out += s
		}
		return out, true
	case syntax.OpAlternate:
		if len(re.Sub) == 0 {
			return "", false
		}
		return synthesizeNode(re.Sub[0])
	case syntax.OpCapture:
		if len(re.Sub) != 1 {
			return "", false
		}
		return synthesizeNode(re.Sub[0])
	case syntax.OpStar, syntax.OpQuest:
		return "", true
	case syntax.OpPlus:
		if len(re.Sub) != 1 {
			return "", false
		}
		return synthesizeNode(re.Sub[0])
	case syntax.OpRepeat:
		if len(re.Sub) != 1 {
			return "", false
		}
		one, ok := synthesizeNode(re.Sub[0])
		if !ok {
			return "", false
		}
		count := re.Min
		if count == 0 {
			return "", true
		}
		out := ""
		for i := 0; i < count; i++ {
			out += one
		}
		return out, true
	case syntax.OpCharClass:
		if len(re.Rune) == 0 {
			return "", false
		}
		return string(rune(re.Rune[0])), true
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return "x", true
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText, syntax.OpEmptyMatch, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return "", true
	default:
		return "", false
	}
}
