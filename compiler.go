package subsumecheck

// compileCtx threads the state a single CompileSchema call shares across
// every keyword file: which side of the check this schema belongs to (for
// label construction) and the registry that disambiguates repeated labels.
// It carries no mutable schema-wide cache — compilation is purely
// structural recursion over an already-$ref-inlined Schema tree, so two
// concurrent Check calls never share a compileCtx (§5).
type compileCtx struct {
	side   Side
	labels *labelRegistry
}

// CompileSchema translates an inlined Schema into a Constraint tree,
// labeling every leaf assertion along the way. path is the JSON-Pointer-like
// location of s within its document, used verbatim in labels.
func CompileSchema(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s == nil {
		return always(true), nil
	}
	if s.Boolean != nil {
		return always(*s.Boolean), nil
	}

	var parts []*Constraint

	compilers := []func(*compileCtx, *Schema, string) (*Constraint, error){
		compileType,
		compileConst,
		compileEnum,
		compileMinimum,
		compileMaximum,
		compileExclusiveMinimum,
		compileExclusiveMaximum,
		compileMultipleOf,
		compileMinLength,
		compileMaxLength,
		compilePattern,
		compileFormat,
		compileMinItems,
		compileMaxItems,
		compileUniqueItems,
		compileItems,
		compileContains,
		compileProperties,
		compilePatternProperties,
		compileAdditionalProperties,
		compilePropertyNames,
		compileRequired,
		compileDependentRequired,
		compileMinProperties,
		compileMaxProperties,
		compileAllOf,
		compileAnyOf,
		compileOneOf,
		compileNot,
		compileConditional,
		compileDependentSchemas,
	}

	for _, f := range compilers {
		c, err := f(cc, s, path)
		if err != nil {
			return nil, err
		}
		if c != nil {
			parts = append(parts, c)
		}
	}

	if len(s.Extra) > 0 {
		for k := range s.Extra {
			if !isAnnotationOnlyExtra(k) {
				return nil, &UnsupportedKeywordError{Path: path, Keyword: k}
			}
		}
	}

	if len(parts) == 0 {
		return always(true), nil
	}
	return and(parts...), nil
}

func isAnnotationOnlyExtra(keyword string) bool {
	switch keyword {
	case "title", "description", "default", "deprecated", "readOnly", "writeOnly", "examples", "$comment", "$id", "$schema", "$anchor":
		return true
	default:
		return false
	}
}

// UnsupportedKeywordError names the schema path and keyword that the
// compiler cannot translate (§4.3 "State / failure").
type UnsupportedKeywordError struct {
	Path    string
	Keyword string
}

func (e *UnsupportedKeywordError) Error() string {
	return ErrUnsupportedKeyword.Error() + ": " + e.Path + "/" + e.Keyword
}

func (e *UnsupportedKeywordError) Unwrap() error { return ErrUnsupportedKeyword }

// UnsupportedRegexError names the schema path whose "pattern" uses a regex
// feature outside the supported subset.
type UnsupportedRegexError struct {
	Path    string
	Pattern string
}

func (e *UnsupportedRegexError) Error() string {
	return ErrUnsupportedRegex.Error() + ": " + e.Path + " (" + e.Pattern + ")"
}

func (e *UnsupportedRegexError) Unwrap() error { return ErrUnsupportedRegex }
