package rlf_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/rlf"
	"github.com/stretchr/testify/require"
)

func TestLexSplitsTextAndDirectives(t *testing.T) {
	tokens, err := rlf.Lex("{Materialized}: {Dissolve(target:enemy-character)}")
	require.NoError(t, err)

	var names []string
	for _, tok := range tokens {
		if tok.Kind == rlf.TokenDirective {
			names = append(names, tok.Name)
		}
	}
	require.Equal(t, []string{"Materialized", "Dissolve"}, names)
}

func TestLexRejectsUnterminatedDirective(t *testing.T) {
	_, err := rlf.Lex("{Dissolve")
	require.Error(t, err)
}

func TestParseSimpleEventAbility(t *testing.T) {
	a, err := rlf.Parse("{Dissolve(target:enemy-character)}", nil)
	require.NoError(t, err)

	event, ok := a.(ability.EventAbility)
	require.True(t, ok)
	std, ok := event.Effect.(ability.Standard)
	require.True(t, ok)
	dissolve, ok := std.Inner.(ability.DissolveCharacter)
	require.True(t, ok)
	require.Equal(t, ability.Enemy{Card: ability.CharacterCard{}}, dissolve.Target)
}

func TestParseTriggeredAbility(t *testing.T) {
	a, err := rlf.Parse("{Materialized}: {+cards(n:1)}", nil)
	require.NoError(t, err)

	triggered, ok := a.(ability.TriggeredAbility)
	require.True(t, ok)
	require.Equal(t, ability.TriggerMaterialized, triggered.Event)
	std, ok := triggered.Effect.(ability.Standard)
	require.True(t, ok)
	require.Equal(t, ability.DrawCards{Count: 1}, std.Inner)
}

func TestParseActivatedAbilityWithEnergyCost(t *testing.T) {
	a, err := rlf.Parse("{energy-cost(e:2)}: {+energy(e:3)}", nil)
	require.NoError(t, err)

	activated, ok := a.(ability.ActivatedAbility)
	require.True(t, ok)
	require.Equal(t, ability.EnergyCost{Amount: 2}, activated.Cost)
}

func TestParseOptionalTriggerCost(t *testing.T) {
	a, err := rlf.Parse("{Judgment}: {energy-cost(e:1)}: {Kindle(n:2)}", nil)
	require.NoError(t, err)

	triggered, ok := a.(ability.TriggeredAbility)
	require.True(t, ok)
	withOptions, ok := triggered.Effect.(ability.WithOptions)
	require.True(t, ok)
	require.True(t, withOptions.Optional)
	require.Equal(t, ability.EnergyCost{Amount: 1}, withOptions.TriggerCost)
}

func TestParseMultipleEffectsBecomeAList(t *testing.T) {
	a, err := rlf.Parse("{+cards(n:1)} {+energy(e:1)}", nil)
	require.NoError(t, err)

	event, ok := a.(ability.EventAbility)
	require.True(t, ok)
	list, ok := event.Effect.(ability.List)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
}

func TestParseUnknownDirectiveSuggestsFix(t *testing.T) {
	_, err := rlf.Parse("{Dissolv}", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Dissolve")
}

func TestRoundTripEventAbility(t *testing.T) {
	texts := []string{
		"{Dissolve(target:enemy-character)}",
		"{+cards(n:2)}",
		"{Kindle(n:3)}",
		"{Reclaim}",
		"{+cards-per-extra-paid}",
	}
	for _, text := range texts {
		a, err := rlf.Parse(text, nil)
		require.NoError(t, err)
		out, err := rlf.Serialize(a)
		require.NoError(t, err)
		require.Equal(t, text, out)
	}
}

func TestRoundTripTriggeredAbility(t *testing.T) {
	text := "{Materialized}: {+cards(n:1)}"
	a, err := rlf.Parse(text, nil)
	require.NoError(t, err)
	out, err := rlf.Serialize(a)
	require.NoError(t, err)
	require.Equal(t, text, out)
}

func TestRoundTripActivatedAbility(t *testing.T) {
	text := "{energy-cost(e:2)}: {+energy(e:3)}"
	a, err := rlf.Parse(text, nil)
	require.NoError(t, err)
	out, err := rlf.Serialize(a)
	require.NoError(t, err)
	require.Equal(t, text, out)
}

func TestSubstituteNumberAndPluralPhraseVariables(t *testing.T) {
	vars := rlf.Vars{
		"n":    {Type: rlf.ParamNumber, Number: 2},
		"card": {Type: rlf.ParamPhrase, Phrase: "card", PluralPhrase: "cards", Plural: true, Count: 2},
	}
	out, warnings := rlf.Substitute("Draw {n} {card}.", vars, rlf.LocaleEn)
	require.Empty(t, warnings)
	require.Equal(t, "Draw 2 cards.", out)
}

func TestSubstitutePhraseIdVariable(t *testing.T) {
	vars := rlf.Vars{"subtype": {Type: rlf.ParamPhraseId, PhraseId: "subtype.mage"}}
	out, warnings := rlf.Substitute("Dissolve a {subtype} character.", vars, rlf.LocaleEn)
	require.Empty(t, warnings)
	require.Equal(t, "Dissolve a Mage character.", out)
}

func TestSubstituteUnresolvedVariableWarns(t *testing.T) {
	out, warnings := rlf.Substitute("Dissolve a {subtype} character.", rlf.Vars{}, rlf.LocaleEn)
	require.Len(t, warnings, 1)
	require.Equal(t, "Dissolve a {subtype} character.", out)
}

func TestSubstituteLeavesAbilityDirectivesAlone(t *testing.T) {
	out, warnings := rlf.Substitute("{Dissolve(target:enemy-character)}", rlf.Vars{}, rlf.LocaleEn)
	require.Empty(t, warnings)
	require.Equal(t, "{Dissolve(target:enemy-character)}", out)
}

func TestLintBothLocalesSurfacesMissingPhrase(t *testing.T) {
	vars := rlf.Vars{"subtype": {Type: rlf.ParamPhraseId, PhraseId: "subtype.nonexistent"}}
	err := rlf.LintBothLocales("a {subtype} character", vars)
	require.Error(t, err)
}

func TestLintBothLocalesCleanForKnownPhrase(t *testing.T) {
	vars := rlf.Vars{"subtype": {Type: rlf.ParamPhraseId, PhraseId: "subtype.mage"}}
	err := rlf.LintBothLocales("a {subtype} character", vars)
	require.NoError(t, err)
}
