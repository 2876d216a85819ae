package battle

import "github.com/dreamtides/rules-engine/internal/core"

// PromptType is the closed sum of prompt shapes a player can be asked to
// resolve (§3).
type PromptType interface {
	promptType()
}

// ChooseCharacter asks the player to pick one of Valid.
type ChooseCharacter struct{ Valid []core.CardObjectId }

// ChooseStackCard asks the player to pick one of Valid stack cards.
type ChooseStackCard struct{ Valid []core.CardObjectId }

// ChooseVoidCard asks the player to pick one of Valid void cards.
type ChooseVoidCard struct{ Valid []core.CardObjectId }

// ChooseEnergyValue asks the player to choose an integer in [Minimum,
// Maximum] (grounds S2's Dreamscatter increment prompt).
type ChooseEnergyValue struct {
	Minimum int
	Maximum int
}

// ModalEffectChoice asks the player to pick one of Count modal options.
type ModalEffectChoice struct{ Count int }

// SelectDeckCardOrder asks the player to reorder the top N cards of their
// deck (Foresee).
type SelectDeckCardOrder struct{ Cards []core.CardObjectId }

func (ChooseCharacter) promptType()      {}
func (ChooseStackCard) promptType()      {}
func (ChooseVoidCard) promptType()       {}
func (ChooseEnergyValue) promptType()    {}
func (ModalEffectChoice) promptType()    {}
func (SelectDeckCardOrder) promptType()  {}

// Prompt is created whenever an effect needs player input and is consumed
// by the matching response (§3).
type Prompt struct {
	Source   core.CardId
	Player   core.PlayerName
	Type     PromptType
	Optional bool
}

// PushPrompt enqueues a prompt on the FIFO queue (invariant 4: while
// non-empty, only actions derived from the front prompt's player/type are
// legal).
func (b *BattleState) PushPrompt(p Prompt) {
	b.Prompts = append(b.Prompts, p)
}

// FrontPrompt returns the prompt at the front of the queue, if any.
func (b *BattleState) FrontPrompt() (Prompt, bool) {
	if len(b.Prompts) == 0 {
		return Prompt{}, false
	}
	return b.Prompts[0], true
}

// PopPrompt removes and returns the front prompt.
func (b *BattleState) PopPrompt() (Prompt, bool) {
	if len(b.Prompts) == 0 {
		return Prompt{}, false
	}
	p := b.Prompts[0]
	b.Prompts = b.Prompts[1:]
	return p, true
}
