package rlf

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/engineerr"
)

// triggerNames maps every directive spelling of a TriggerEvent to its
// value, built from TriggerEvent.String() so the two can never drift.
var triggerNames = map[string]ability.TriggerEvent{
	ability.TriggerPlayedCard.String():    ability.TriggerPlayedCard,
	ability.TriggerMaterialized.String():  ability.TriggerMaterialized,
	ability.TriggerDissolved.String():     ability.TriggerDissolved,
	ability.TriggerBanished.String():      ability.TriggerBanished,
	ability.TriggerAbandoned.String():     ability.TriggerAbandoned,
	ability.TriggerJudgment.String():      ability.TriggerJudgment,
	ability.TriggerDreamwell.String():     ability.TriggerDreamwell,
	ability.TriggerEndOfYourTurn.String(): ability.TriggerEndOfYourTurn,
	ability.TriggerEndOfEnemyTurn.String(): ability.TriggerEndOfEnemyTurn,
	ability.TriggerDrewCard.String():      ability.TriggerDrewCard,
	ability.TriggerGainedEnergy.String():  ability.TriggerGainedEnergy,
	ability.TriggerGainedSpark.String():   ability.TriggerGainedSpark,
}

// Parse lexes text and parses the resulting tokens into an Ability. vars
// is accepted for API symmetry with Substitute (a card's rules text and
// its variable bindings are always loaded together) but is not consulted
// here: directive arguments are literal, and free variable substitution
// happens only in the surrounding descriptive text via Substitute.
func Parse(text string, vars Vars) (ability.Ability, error) {
	tokens, err := Lex(text)
	if err != nil {
		return nil, err
	}

	var directives []Token
	for _, tok := range tokens {
		if tok.Kind == TokenDirective {
			directives = append(directives, tok)
		}
	}
	if len(directives) == 0 {
		return nil, parseErr(Span{Line: 1, Column: 1}, "rules text contains no directives to parse")
	}

	head := directives[0]
	rest := directives[1:]

	if event, ok := triggerNames[head.Name]; ok {
		effect, err := parseEffectClause(rest)
		if err != nil {
			return nil, parseErr(head.Span, err.Error())
		}
		return ability.TriggeredAbility{Event: event, Effect: effect}, nil
	}

	if head.Name == "energy-cost" {
		amount, err := intArg(head, "e")
		if err != nil {
			return nil, parseErr(head.Span, err.Error())
		}
		effect, err := parseEffectClause(rest)
		if err != nil {
			return nil, parseErr(head.Span, err.Error())
		}
		return ability.ActivatedAbility{Cost: ability.EnergyCost{Amount: core.Energy(amount)}, Effect: effect}, nil
	}

	effect, err := parseEffectClause(directives)
	if err != nil {
		return nil, parseErr(head.Span, err.Error())
	}
	return ability.EventAbility{Effect: effect}, nil
}

// parseEffectClause composes one or more effect directives into a single
// Effect, wrapping more than one in a List in directive order. An
// "energy-cost" directive appearing here (rather than as the leading
// directive) gates the remaining effects behind an optional trigger cost
// per §4.8's WithOptions semantics.
func parseEffectClause(directives []Token) (ability.Effect, error) {
	if len(directives) == 0 {
		return nil, fmt.Errorf("expected at least one effect directive")
	}

	if directives[0].Name == "energy-cost" {
		amount, err := intArg(directives[0], "e")
		if err != nil {
			return nil, err
		}
		inner, err := parseEffectClause(directives[1:])
		if err != nil {
			return nil, err
		}
		return ability.WithOptions{Inner: inner, Optional: true, TriggerCost: ability.EnergyCost{Amount: core.Energy(amount)}}, nil
	}

	effects := make([]ability.Effect, 0, len(directives))
	for _, tok := range directives {
		effect, err := directiveToEffect(tok)
		if err != nil {
			return nil, err
		}
		effects = append(effects, effect)
	}
	if len(effects) == 1 {
		return effects[0], nil
	}
	return ability.List{Elements: effects}, nil
}

func parseErr(span Span, message string) error {
	return engineerr.ParseError(message, engineerr.ParseErrorDetail{Line: span.Line, Column: span.Column})
}
