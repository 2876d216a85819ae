// Package rlf is the ability parser & serializer (§4.5): a lex → parse →
// serialize pipeline turning rules text like "{Materialized}: {Dissolve
// (target:enemy-character)}" into an internal/ability AST, plus a small
// template engine ("RLF") substituting {Number, Phrase, PhraseId} variables
// bound from card metadata into the surrounding descriptive text. Grounded
// on the Rust original's parser_v2 (lex/parse/serialize split visible in
// parser_v2/src/{parser,serializer,builder}) and rendering/rlf_helper.rs
// (VariableValue{Integer,Subtype,Figment} mapped to RLF Number/Phrase
// values); the teacher repo has no equivalent package, so this one is
// built fresh around the teacher's closed-sum/error-taxonomy idioms.
//
// Two parsers exist in the original (v1 and v2); only the v2-shaped
// pipeline is implemented here, per the Open Question resolution recorded
// in DESIGN.md.
package rlf

// Span locates a token in the source rules text for error reporting.
type Span struct {
	Line   int
	Column int
}

// TokenKind distinguishes a literal text run from a brace-delimited
// directive.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenDirective
)

// Token is one lexed unit of rules text. A TokenText carries its literal
// Text in Text; a TokenDirective carries the directive name in Name and
// its parenthesized arguments in Args, e.g. "{energy-cost(e:1)}" lexes to
// Name "energy-cost", Args {"e": "1"}.
type Token struct {
	Kind TokenKind
	Text string
	Name string
	Args map[string]string
	Span Span
}
