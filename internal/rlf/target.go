package rlf

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/ability"
)

// targetTokens enumerates the directive-argument spellings this parser
// recognizes for a "target:" argument, paired with the Predicate each
// produces. Order matters only for error-message suggestions.
var targetTokens = []struct {
	token     string
	predicate ability.Predicate
}{
	{"this", ability.This{}},
	{"enemy-character", ability.Enemy{Card: ability.CharacterCard{}}},
	{"your-character", ability.Your{Card: ability.CharacterCard{}}},
	{"another-character", ability.Another{Card: ability.CharacterCard{}}},
	{"any-character", ability.Any{Card: ability.CharacterCard{}}},
	{"any-other-character", ability.AnyOther{Card: ability.CharacterCard{}}},
}

func parseTarget(token string) (ability.Predicate, error) {
	for _, entry := range targetTokens {
		if entry.token == token {
			return entry.predicate, nil
		}
	}
	known := make([]string, len(targetTokens))
	for i, entry := range targetTokens {
		known[i] = entry.token
	}
	if hint := suggest(token, known); hint != "" {
		return nil, fmt.Errorf("unknown target %q (did you mean %q?)", token, hint)
	}
	return nil, fmt.Errorf("unknown target %q", token)
}

// serializeTarget inverts parseTarget for the predicate shapes the
// directive grammar can produce; predicates built outside this package
// (e.g. by internal/effects test fixtures) have no canonical spelling and
// report an error rather than guessing.
func serializeTarget(p ability.Predicate) (string, error) {
	for _, entry := range targetTokens {
		if sameShape(entry.predicate, p) {
			return entry.token, nil
		}
	}
	return "", fmt.Errorf("predicate %#v has no directive-grammar spelling", p)
}

// sameShape compares two Predicates for the coarse structural equality the
// directive grammar cares about: same concrete type, and (for the
// card-qualifier variants) the same CardPredicate kind. It does not
// attempt to compare arbitrary nested CardPredicate parameters, since the
// grammar only ever produces the bare CharacterCard{} qualifier.
func sameShape(a, b ability.Predicate) bool {
	switch av := a.(type) {
	case ability.This:
		_, ok := b.(ability.This)
		return ok
	case ability.Enemy:
		bv, ok := b.(ability.Enemy)
		return ok && sameCardPredicate(av.Card, bv.Card)
	case ability.Your:
		bv, ok := b.(ability.Your)
		return ok && sameCardPredicate(av.Card, bv.Card)
	case ability.Another:
		bv, ok := b.(ability.Another)
		return ok && sameCardPredicate(av.Card, bv.Card)
	case ability.Any:
		bv, ok := b.(ability.Any)
		return ok && sameCardPredicate(av.Card, bv.Card)
	case ability.AnyOther:
		bv, ok := b.(ability.AnyOther)
		return ok && sameCardPredicate(av.Card, bv.Card)
	default:
		return false
	}
}

func sameCardPredicate(a, b ability.CardPredicate) bool {
	_, aChar := a.(ability.CharacterCard)
	_, bChar := b.(ability.CharacterCard)
	return aChar && bChar
}
