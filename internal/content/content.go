// Package content loads the card-content table described in §6
// ("structured TOML-like tables... one row per card") and registers each
// row into a carddef.Store, replacing the teacher's CSV-only
// scripts/import_cards.go with viper's TOML decoder per SPEC_FULL.md's
// Domain Stack table. Each card's opaque identity is additionally given
// a stable content hash (§6: "content-addressed by an opaque identity"),
// computed from its canonical fields with blake2b-256 so re-importing
// the same table twice always derives the same hash regardless of
// registration order.
package content

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/rlf"
	"github.com/spf13/viper"
	"golang.org/x/crypto/blake2b"
)

// Hash is the content-addressed identity of one CardDefinition's source
// row, stable across re-imports of the same table.
type Hash [blake2b.Size256]byte

// Row is one card's row in the content table, matching §6's field list
// verbatim.
type Row struct {
	Name      string   `mapstructure:"name"`
	RulesText string   `mapstructure:"rules-text"`
	Variables []string `mapstructure:"variables"`
	Cost      int      `mapstructure:"cost"`
	Spark     int      `mapstructure:"spark"`
	CardType  string   `mapstructure:"card-type"`
	Subtype   string   `mapstructure:"subtype"`
	IsFast    bool     `mapstructure:"is-fast"`
}

// Table is a loaded content file: every row plus its computed Hash, in
// file order.
type Table struct {
	Rows   []Row
	Hashes []Hash
}

// Load reads path (any format viper supports, per the TOML-like table
// requirement of §6) into a Table.
func Load(path string) (Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Table{}, fmt.Errorf("content: reading %s: %w", path, err)
	}

	var rows []Row
	if err := v.UnmarshalKey("cards", &rows); err != nil {
		return Table{}, fmt.Errorf("content: decoding %s: %w", path, err)
	}

	table := Table{Rows: rows, Hashes: make([]Hash, len(rows))}
	for i, row := range rows {
		table.Hashes[i] = hashRow(row)
	}
	return table, nil
}

func hashRow(row Row) Hash {
	digest := fmt.Sprintf("%s\x00%s\x00%v\x00%d\x00%d\x00%s\x00%s\x00%v",
		row.Name, row.RulesText, row.Variables, row.Cost, row.Spark,
		row.CardType, row.Subtype, row.IsFast)
	return Hash(blake2b.Sum256([]byte(digest)))
}

// Register loads every row of table into store, returning each row's
// resulting BattleCardIdentity keyed by its content Hash. RulesText is
// compiled to an Ability via internal/rlf.Parse (step (b) of §4.5); a row
// with no RulesText (a vanilla character) registers with no abilities. The
// content table's Variables field names the free-text RLF variables the
// row's descriptive text (as opposed to its directive grammar) depends on;
// resolving those against the active Locale is a rendering-time concern
// (internal/rlf.Substitute) this importer does not perform, since
// persisted card definitions store the parsed Ability, not a locale-bound
// rendered string.
func Register(store *carddef.Store, table Table) (map[Hash]carddef.BattleCardIdentity, error) {
	result := make(map[Hash]carddef.BattleCardIdentity, len(table.Rows))
	for _, row := range table.Rows {
		cardType, err := parseCardType(row.CardType)
		if err != nil {
			return nil, fmt.Errorf("content: row %q: %w", row.Name, err)
		}

		var abilities []ability.Ability
		if row.RulesText != "" {
			parsed, err := rlf.Parse(row.RulesText, nil)
			if err != nil {
				return nil, fmt.Errorf("content: row %q: parsing rules text: %w", row.Name, err)
			}
			abilities = []ability.Ability{parsed}
		}

		identity, err := store.Register(&carddef.CardDefinition{
			Name:      row.Name,
			CardType:  cardType,
			Subtype:   row.Subtype,
			Cost:      core.Energy(row.Cost),
			Spark:     core.Spark(row.Spark),
			IsFast:    row.IsFast,
			RulesText: row.RulesText,
			Abilities: abilities,
		})
		if err != nil {
			return nil, fmt.Errorf("content: row %q: %w", row.Name, err)
		}
		result[hashRow(row)] = identity
	}
	return result, nil
}

func parseCardType(s string) (carddef.CardType, error) {
	switch s {
	case "character":
		return carddef.TypeCharacter, nil
	case "event":
		return carddef.TypeEvent, nil
	default:
		return 0, fmt.Errorf("unknown card-type %q", s)
	}
}
