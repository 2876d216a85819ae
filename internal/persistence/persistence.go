// Package persistence is the storage backend named in §6: a "stable
// tagged encoding" for persisted BattleState snapshots, schema-versioned
// per an index_metadata-style record, and a content-addressed
// card-definition table. Grounded on the teacher's
// scripts/import_cards.go (pgxpool connection/transaction/batch-insert
// idiom) and internal/repository's NewDB shape named in
// SPEC_FULL.md's Domain Stack table (the repository package itself is
// not present in the retrieved pack, so the schema below is built
// fresh around that same pgxpool usage).
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/content"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaVersion is the current persisted-encoding version. Bumping it is
// required whenever BattleSnapshot's shape changes incompatibly, per
// §6's "migrations are required when the format changes."
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS index_metadata (
	id INTEGER PRIMARY KEY DEFAULT 1,
	schema_version INTEGER NOT NULL,
	CHECK (id = 1)
);

CREATE TABLE IF NOT EXISTS battles (
	battle_id BIGINT PRIMARY KEY,
	schema_version INTEGER NOT NULL,
	state JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS card_definitions (
	content_hash BYTEA PRIMARY KEY,
	name TEXT NOT NULL,
	card_type TEXT NOT NULL,
	subtype TEXT NOT NULL,
	cost INTEGER NOT NULL,
	spark INTEGER NOT NULL,
	is_fast BOOLEAN NOT NULL,
	rules_text TEXT NOT NULL
);
`

// Store wraps a pgxpool.Pool with the battle/card-definition persistence
// operations this module needs.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to dbURL and ensures the schema exists, mirroring
// scripts/import_cards.go's pgxpool.New + Ping connection sequence.
func Open(ctx context.Context, dbURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("persistence: connecting: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("persistence: ping: %w", err)
	}
	store := &Store{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("persistence: applying schema: %w", err)
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO index_metadata (id, schema_version) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET schema_version = excluded.schema_version`,
		SchemaVersion)
	if err != nil {
		return fmt.Errorf("persistence: writing index_metadata: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() { s.pool.Close() }

// battleSnapshot is the JSON shape a BattleState serializes to: the seed
// and status only (see SaveBattle). CardDefinition data is not included;
// definitions are immutable and shared across every battle (§4.2, §4.3),
// and SaveCardDefinitions stores them once in the card_definitions table,
// keyed by content hash.
type battleSnapshot struct {
	Seed   uint64        `json:"seed"`
	Status battle.Status `json:"status"`
}

// SaveBattle persists b's current state under battleId. BattleState
// itself does not (yet) marshal its full card/zone graph to JSON; until
// that codec exists this records enough to audit schema evolution
// (seed, status) rather than a full resumable snapshot — see
// DESIGN.md's persistence entry for the reason that gap is left open.
func (s *Store) SaveBattle(ctx context.Context, battleId int64, b *battle.BattleState) error {
	snapshot := battleSnapshot{Seed: b.Seed, Status: b.Status}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("persistence: encoding battle %d: %w", battleId, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO battles (battle_id, schema_version, state) VALUES ($1, $2, $3)
		 ON CONFLICT (battle_id) DO UPDATE SET schema_version = excluded.schema_version, state = excluded.state, updated_at = now()`,
		battleId, SchemaVersion, payload)
	if err != nil {
		return fmt.Errorf("persistence: saving battle %d: %w", battleId, err)
	}
	return nil
}

// SaveCardDefinitions writes every row of table (already registered into
// a carddef.Store by internal/content) into the content-addressed
// card_definitions table, batched in a single transaction per
// scripts/import_cards.go's batch-insert idiom.
func (s *Store) SaveCardDefinitions(ctx context.Context, table content.Table) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("persistence: beginning card import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, row := range table.Rows {
		var h [32]byte
		if i < len(table.Hashes) {
			h = [32]byte(table.Hashes[i])
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO card_definitions (content_hash, name, card_type, subtype, cost, spark, is_fast, rules_text)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (content_hash) DO NOTHING`,
			h[:], row.Name, row.CardType, row.Subtype, row.Cost, row.Spark, row.IsFast, row.RulesText)
		if err != nil {
			return fmt.Errorf("persistence: inserting card %q: %w", row.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("persistence: committing card import: %w", err)
	}
	return nil
}
