package rlf

import (
	"fmt"
	"strconv"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/core"
)

// directiveNames lists every effect-directive this parser recognizes, used
// to build "did you mean" suggestions for unknown directives.
var directiveNames = []string{
	"Dissolve", "Materialize", "Banish", "Abandon", "Return",
	"+cards", "-cards", "+energy", "+points",
	"Foresee", "Kindle", "Reclaim", "Aegis", "+cards-per-extra-paid",
}

// defaultTargets supplies the Predicate a targeted directive uses when its
// "target" argument is omitted, matching how that keyword most commonly
// reads on a printed card.
var defaultTargets = map[string]ability.Predicate{
	"Dissolve":    ability.Enemy{Card: ability.CharacterCard{}},
	"Banish":      ability.Enemy{Card: ability.CharacterCard{}},
	"Return":      ability.Enemy{Card: ability.CharacterCard{}},
	"Materialize": ability.Your{Card: ability.CharacterCard{}},
	"Abandon":     ability.Your{Card: ability.CharacterCard{}},
	"Aegis":       ability.This{},
}

// directiveToEffect converts one effect directive token into the
// StandardEffect it denotes, wrapped in Standard. Directive names are
// matched case-sensitively, mirroring how they are printed on cards.
func directiveToEffect(tok Token) (ability.Effect, error) {
	switch tok.Name {
	case "Dissolve":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.DissolveCharacter{Target: target}}, nil
	case "Materialize":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.MaterializeCharacter{Target: target}}, nil
	case "Banish":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.BanishCharacterEffect{Target: target}}, nil
	case "Abandon":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.AbandonCharacter{Target: target}}, nil
	case "Return":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.ReturnToHand{Target: target}}, nil
	case "+cards":
		n, err := intArg(tok, "n")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.DrawCards{Count: n}}, nil
	case "-cards":
		n, err := intArg(tok, "n")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.DiscardCards{Count: n}}, nil
	case "+energy":
		n, err := intArg(tok, "e")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.GainEnergy{Amount: core.Energy(n)}}, nil
	case "+points":
		n, err := intArg(tok, "p")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.GainPoints{Amount: core.Points(n)}}, nil
	case "Foresee":
		n, err := intArg(tok, "n")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.Foresee{Count: n}}, nil
	case "Kindle":
		n, err := intArg(tok, "n")
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.GainSpark{Target: ability.This{}, Amount: core.Spark(n)}}, nil
	case "Reclaim":
		return ability.Standard{Inner: ability.ReclaimFromVoid{}}, nil
	case "+cards-per-extra-paid":
		return ability.Standard{Inner: ability.DrawCardsForEachExtraEnergyPaid{}}, nil
	case "Aegis":
		target, err := targetArg(tok)
		if err != nil {
			return nil, err
		}
		return ability.Standard{Inner: ability.PreventDissolve{Target: target}}, nil
	default:
		hint := suggest(tok.Name, directiveNames)
		if hint != "" {
			return nil, fmt.Errorf("unknown directive %q (did you mean %q?)", tok.Name, hint)
		}
		return nil, fmt.Errorf("unknown directive %q", tok.Name)
	}
}

// effectToDirective inverts directiveToEffect for the Standard-wrapped
// effects the grammar can produce.
func effectToDirective(e ability.Effect) (string, error) {
	std, ok := e.(ability.Standard)
	if !ok {
		return "", fmt.Errorf("effect %#v is not directive-serializable", e)
	}
	switch v := std.Inner.(type) {
	case ability.DissolveCharacter:
		return targetedDirective("Dissolve", v.Target)
	case ability.MaterializeCharacter:
		return targetedDirective("Materialize", v.Target)
	case ability.BanishCharacterEffect:
		return targetedDirective("Banish", v.Target)
	case ability.AbandonCharacter:
		return targetedDirective("Abandon", v.Target)
	case ability.ReturnToHand:
		return targetedDirective("Return", v.Target)
	case ability.DrawCards:
		return fmt.Sprintf("{+cards(n:%d)}", v.Count), nil
	case ability.DiscardCards:
		return fmt.Sprintf("{-cards(n:%d)}", v.Count), nil
	case ability.GainEnergy:
		return fmt.Sprintf("{+energy(e:%d)}", v.Amount), nil
	case ability.GainPoints:
		return fmt.Sprintf("{+points(p:%d)}", v.Amount), nil
	case ability.Foresee:
		return fmt.Sprintf("{Foresee(n:%d)}", v.Count), nil
	case ability.GainSpark:
		return fmt.Sprintf("{Kindle(n:%d)}", v.Amount), nil
	case ability.ReclaimFromVoid:
		return "{Reclaim}", nil
	case ability.DrawCardsForEachExtraEnergyPaid:
		return "{+cards-per-extra-paid}", nil
	case ability.PreventDissolve:
		return targetedDirective("Aegis", v.Target)
	default:
		return "", fmt.Errorf("standard effect %#v has no directive grammar", v)
	}
}

// targetedDirective always spells out the target argument explicitly,
// even when it matches the directive's default: Parse has no way to tell
// "target omitted" apart from "target given but happens to equal the
// default" once the directive has become a Predicate, so round-tripping
// requires serialization to be equally explicit every time.
func targetedDirective(name string, target ability.Predicate) (string, error) {
	token, err := serializeTarget(target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("{%s(target:%s)}", name, token), nil
}

func targetArg(tok Token) (ability.Predicate, error) {
	raw, ok := tok.Args["target"]
	if !ok {
		if def, ok := defaultTargets[tok.Name]; ok {
			return def, nil
		}
		return nil, fmt.Errorf("directive %q requires a target argument", tok.Name)
	}
	return parseTarget(raw)
}

func intArg(tok Token, key string) (int, error) {
	raw, ok := tok.Args[key]
	if !ok {
		return 0, fmt.Errorf("directive %q is missing required argument %q", tok.Name, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("directive %q argument %q is not a number: %q", tok.Name, key, raw)
	}
	return n, nil
}
