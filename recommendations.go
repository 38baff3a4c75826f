package subsumecheck

import "strings"

// recommendationTable maps a violated consumer keyword name to a short,
// actionable suggestion for widening the consumer schema to accept the
// witness (§6 step 4: "structured diagnosis ... with a recommendation").
var recommendationTable = map[string]string{
	"type":                 "widen the consumer's type list to include the producer's type",
	"const":                "replace the consumer's const with an enum covering both values, or drop it",
	"enum":                 "add the missing value to the consumer's enum",
	"minimum":              "lower the consumer's minimum to match or fall below the producer's",
	"maximum":              "raise the consumer's maximum to match or exceed the producer's",
	"exclusiveMinimum":     "lower the consumer's exclusiveMinimum, or switch to an inclusive minimum",
	"exclusiveMaximum":     "raise the consumer's exclusiveMaximum, or switch to an inclusive maximum",
	"multipleOf":           "relax or remove the consumer's multipleOf constraint",
	"minLength":            "lower the consumer's minLength",
	"maxLength":            "raise the consumer's maxLength",
	"pattern":              "relax the consumer's pattern or replace it with one matching the producer's strings",
	"format":               "relax or remove the consumer's format constraint",
	"minItems":             "lower the consumer's minItems",
	"maxItems":             "raise the consumer's maxItems",
	"uniqueItems":          "remove the consumer's uniqueItems constraint",
	"items":                "widen the consumer's items subschema to accept the producer's element shapes",
	"prefixItems":          "widen the consumer's prefixItems tuple slots",
	"contains":             "relax the consumer's contains subschema or its minContains/maxContains bounds",
	"properties":           "widen the consumer's property subschemas to accept the producer's values",
	"patternProperties":    "widen the consumer's patternProperties subschemas",
	"additionalProperties": "set the consumer's additionalProperties to true or a wider subschema",
	"propertyNames":        "relax the consumer's propertyNames subschema",
	"required":             "remove the offending key from the consumer's required list, or ensure the producer always supplies it",
	"dependentRequired":    "relax the consumer's dependentRequired rules",
	"dependentSchemas":     "widen the consumer's dependentSchemas entries",
	"minProperties":        "lower the consumer's minProperties",
	"maxProperties":        "raise the consumer's maxProperties",
	"allOf":                "widen one of the consumer's allOf branches",
	"anyOf":                "add a branch to the consumer's anyOf that accepts the producer's shape",
	"oneOf":                "adjust the consumer's oneOf so exactly one branch accepts the producer's shape",
	"not":                  "remove or narrow the consumer's not subschema",
	"if":                   "revisit the consumer's if/then/else — the producer's shape lands on a branch the consumer rejects",
}

// recommendationFor strips a label's ordinal/path decoration down to its
// keyword and looks up the corresponding suggestion.
func recommendationFor(label *Label) string {
	return recommendationTable[baseKeyword(label.Keyword)]
}

// baseKeyword strips a label keyword's format decoration (e.g.
// "format:email") down to the plain keyword name.
func baseKeyword(keyword string) string {
	if idx := strings.IndexByte(keyword, ':'); idx >= 0 {
		keyword = keyword[:idx]
	}
	return keyword
}

// recommendationCode returns the go-i18n message code for a label keyword's
// recommendation, for callers that want it localized rather than in English.
func recommendationCode(keyword string) string {
	return "recommendation." + baseKeyword(keyword)
}
