package rlf

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/ability"
)

// Serialize inverts Parse, rendering a back into the canonical directive
// text a content author would write. The round-trip law Serialize(Parse(
// text, vars)) == text holds modulo whitespace for text already written in
// this canonical form (single ": " separators, no incidental flavor
// text between directives); see DESIGN.md for why a literal-preserving
// AST was not pursued.
func Serialize(a ability.Ability) (string, error) {
	switch v := a.(type) {
	case ability.EventAbility:
		return serializeEffect(v.Effect)
	case ability.TriggeredAbility:
		effectText, err := serializeEffect(v.Effect)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{%s}: %s", v.Event.String(), effectText), nil
	case ability.ActivatedAbility:
		cost, ok := v.Cost.(ability.EnergyCost)
		if !ok {
			return "", fmt.Errorf("activated ability cost %#v has no directive grammar", v.Cost)
		}
		effectText, err := serializeEffect(v.Effect)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{energy-cost(e:%d)}: %s", cost.Amount, effectText), nil
	case ability.NamedAbility:
		return fmt.Sprintf("{%s}", v.Name), nil
	default:
		return "", fmt.Errorf("ability %#v has no directive grammar", a)
	}
}

func serializeEffect(e ability.Effect) (string, error) {
	switch v := e.(type) {
	case ability.Standard:
		return effectToDirective(ability.Standard{Inner: v.Inner})
	case ability.List:
		out := ""
		for i, elem := range v.Elements {
			text, err := serializeEffect(elem)
			if err != nil {
				return "", err
			}
			if i > 0 {
				out += " "
			}
			out += text
		}
		return out, nil
	case ability.WithOptions:
		cost, ok := v.TriggerCost.(ability.EnergyCost)
		if !ok {
			return "", fmt.Errorf("optional trigger cost %#v has no directive grammar", v.TriggerCost)
		}
		innerText, err := serializeEffect(v.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{energy-cost(e:%d)}: %s", cost.Amount, innerText), nil
	default:
		return "", fmt.Errorf("effect %#v has no directive grammar", e)
	}
}
