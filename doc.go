// Package subsumecheck decides whether every JSON value accepted by a
// producer JSON Schema is also accepted by a consumer JSON Schema — the
// subsumption question that arises when checking a new producer schema
// version against an existing consumer's expectations. When subsumption
// fails, it returns a concrete counterexample value plus a structured
// diagnosis naming which producer constraints the witness satisfies and
// which consumer constraints it violates.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package subsumecheck
