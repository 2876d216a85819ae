package rlf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParamType is one of the three RLF parameter kinds named in §4.5.
type ParamType int

const (
	// ParamNumber substitutes a plain integer.
	ParamNumber ParamType = iota
	// ParamPhrase substitutes a literal phrase supplied directly by the
	// caller (no locale lookup), e.g. a subtype name already resolved by
	// internal/content.
	ParamPhrase
	// ParamPhraseId substitutes a phrase looked up by id from the active
	// Locale, so the same card text renders differently per locale.
	ParamPhraseId
)

// Variable is one binding a card supplies for its rules text, mirroring
// the original's VariableValue{Integer, Subtype, Figment} (subtype and
// figment values are resolved to a phrase id before reaching here, since
// phrase resolution is locale-specific and Variable is not).
//
// Plural/PluralPhrase/Count support §4.5's "pluralization": a Phrase or
// PhraseId binding with Plural set renders its plural form whenever Count
// != 1. Count is supplied on the noun's own binding (not derived from a
// separate {n} token) so a template can use the same noun variable with
// different counts in different sentences.
type Variable struct {
	Type         ParamType
	Number       int
	Phrase       string
	PhraseId     string
	Plural       bool
	PluralPhrase string
	Count        int
}

// Vars is the set of variable bindings for one card's rules text, keyed by
// the name used inside its directive braces, e.g. {count}.
type Vars map[string]Variable

// Locale is a phrase-id registry. LocaleEn is the source locale;
// LocaleBracketTest wraps every LocaleEn phrase in brackets so a missing
// translation in a non-source locale stands out as literal "[phrase-id]"
// text in a rendered string, per §4.5's "a bracket test locale is used to
// detect missing translations."
type Locale struct {
	Name    string
	Phrases map[string]string
}

// Lookup returns the phrase bound to id in l, or ("", false) if l has no
// translation for it.
func (l Locale) Lookup(id string) (string, bool) {
	phrase, ok := l.Phrases[id]
	return phrase, ok
}

// LocaleEn is the source-of-truth English locale for subtype and figment
// phrase ids referenced by card rules text (§4.5; names grounded on the
// original's CardSubtype/FigmentType enumerations).
var LocaleEn = Locale{
	Name: "en",
	Phrases: map[string]string{
		"subtype.agent": "Agent", "subtype.ancient": "Ancient", "subtype.avatar": "Avatar",
		"subtype.child": "Child", "subtype.detective": "Detective", "subtype.enigma": "Enigma",
		"subtype.explorer": "Explorer", "subtype.guide": "Guide", "subtype.hacker": "Hacker",
		"subtype.mage": "Mage", "subtype.monster": "Monster", "subtype.musician": "Musician",
		"subtype.outsider": "Outsider", "subtype.renegade": "Renegade", "subtype.robot": "Robot",
		"subtype.spirit_animal": "Spirit Animal", "subtype.super": "Super", "subtype.survivor": "Survivor",
		"subtype.synth": "Synth", "subtype.tinkerer": "Tinkerer", "subtype.trooper": "Trooper",
		"subtype.visionary": "Visionary", "subtype.visitor": "Visitor", "subtype.warrior": "Warrior",
		"figment.celestial": "Celestial", "figment.halcyon": "Halcyon",
		"figment.radiant": "Radiant", "figment.shadow": "Shadow",
	},
}

// LocaleBracketTest is derived from LocaleEn by bracketing every phrase,
// so translation-validation tests can assert every phrase id referenced by
// card text resolves in both locales without hardcoding a parallel phrase
// table.
var LocaleBracketTest = bracketLocale(LocaleEn)

func bracketLocale(source Locale) Locale {
	phrases := make(map[string]string, len(source.Phrases))
	for id, phrase := range source.Phrases {
		phrases[id] = "[" + phrase + "]"
	}
	return Locale{Name: "en-x-bracket", Phrases: phrases}
}

// EvalWarning is a non-fatal problem found while evaluating a template
// against a Locale: an unresolved variable, a missing phrase id, a binding
// with an unknown parameter type, or a template that fails to lex.
type EvalWarning struct {
	Variable string
	Message  string
}

func (w EvalWarning) Error() string {
	return fmt.Sprintf("rlf: variable %q: %s", w.Variable, w.Message)
}

// Substitute renders template's non-directive-grammar variable references
// against vars and locale, returning the rendered text and every
// EvalWarning encountered. Tokens recognized by the directive grammar
// (Dissolve, +cards, energy-cost, and so on — see directiveNames) are left
// untouched, since Substitute only fills in the descriptive-text variables
// a template engine owns; ability directives are Parse's responsibility.
func Substitute(template string, vars Vars, locale Locale) (string, []EvalWarning) {
	tokens, err := Lex(template)
	if err != nil {
		return template, []EvalWarning{{Variable: "", Message: err.Error()}}
	}

	var out strings.Builder
	var warnings []EvalWarning
	for _, tok := range tokens {
		if tok.Kind == TokenText {
			out.WriteString(tok.Text)
			continue
		}
		if isDirectiveName(tok.Name) {
			out.WriteString(rebuildDirectiveText(tok))
			continue
		}
		rendered, warning := substituteOne(tok, vars, locale)
		out.WriteString(rendered)
		if warning != nil {
			warnings = append(warnings, *warning)
		}
	}
	return out.String(), warnings
}

func isDirectiveName(name string) bool {
	if _, ok := triggerNames[name]; ok {
		return true
	}
	if name == "energy-cost" {
		return true
	}
	for _, known := range directiveNames {
		if known == name {
			return true
		}
	}
	return false
}

func rebuildDirectiveText(tok Token) string {
	if len(tok.Args) == 0 {
		return "{" + tok.Name + "}"
	}
	keys := make([]string, 0, len(tok.Args))
	for k := range tok.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(tok.Name)
	b.WriteString("(")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(tok.Args[k])
	}
	b.WriteString(")}")
	return b.String()
}

func substituteOne(tok Token, vars Vars, locale Locale) (string, *EvalWarning) {
	binding, ok := vars[tok.Name]
	if !ok {
		known := make([]string, 0, len(vars))
		for name := range vars {
			known = append(known, name)
		}
		msg := "no binding provided"
		if hint := suggest(tok.Name, known); hint != "" {
			msg = fmt.Sprintf("no binding provided (did you mean %q?)", hint)
		}
		return "{" + tok.Name + "}", &EvalWarning{Variable: tok.Name, Message: msg}
	}

	switch binding.Type {
	case ParamNumber:
		return strconv.Itoa(binding.Number), nil
	case ParamPhrase:
		if binding.Plural && binding.Count != 1 {
			return binding.PluralPhrase, nil
		}
		return binding.Phrase, nil
	case ParamPhraseId:
		phrase, ok := locale.Lookup(binding.PhraseId)
		if !ok {
			return "[" + binding.PhraseId + "]", &EvalWarning{
				Variable: tok.Name,
				Message:  fmt.Sprintf("locale %q has no phrase %q", locale.Name, binding.PhraseId),
			}
		}
		if binding.Plural && binding.Count != 1 {
			return phrase + "s", nil
		}
		return phrase, nil
	default:
		return "", &EvalWarning{Variable: tok.Name, Message: "unknown parameter type"}
	}
}
