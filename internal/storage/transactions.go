package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
	"github.com/gabrielsilvacodes/financas-app/internal/service"
)

// transactionsKey is the storage key holding the flat JSON transaction list.
const transactionsKey = "@financasApp_transacoes"

// TransactionRepository owns load/save/heal semantics for the transaction
// list. Reads are resilient (storage failures yield an empty list); writes
// propagate failures so callers can retry or alert.
type TransactionRepository struct {
	kv service.KVStore
}

var _ service.TransactionStore = (*TransactionRepository)(nil)

// NewTransactionRepository creates a repository over the given store.
func NewTransactionRepository(kv service.KVStore) *TransactionRepository {
	return &TransactionRepository{kv: kv}
}

// storedTransaction tolerates every historical field shape: amounts as
// numbers or currency strings, the category as an object or a bare label,
// dates with or without a time component.
type storedTransaction struct {
	ID        string                `json:"id"`
	Titulo    string                `json:"titulo"`
	Valor     any                   `json:"valor"`
	Tipo      model.TransactionType `json:"tipo"`
	Categoria json.RawMessage       `json:"categoria"`
	Data      string                `json:"data"`
}

// Load reads the stored list, healing legacy records: missing ids are
// assigned, bare-string categories are wrapped into {chave}, string amounts
// become numbers and datetime dates lose their time component. When any
// record was healed the repaired list is persisted before returning, so a
// second Load returns identical data. Storage read failures yield an empty
// list, never an error.
func (r *TransactionRepository) Load(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	transactions, healed := r.read(ctx)
	if healed {
		if err := r.write(ctx, transactions); err != nil {
			// The repaired list is still good in memory; the next load
			// will retry the repair.
			slog.Warn("write-through repair failed", "error", err)
		}
	}
	return transactions, nil
}

// LoadRaw normalizes records like Load but never writes back, for callers
// that must not trigger the repair side effect.
func (r *TransactionRepository) LoadRaw(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	transactions, _ := r.read(ctx)
	return transactions, nil
}

// Save overwrites the entire stored list; there is no partial update, so
// callers mutate single records via read-modify-write. A nil list is
// rejected. Write failures propagate: silent loss on write is not
// acceptable.
func (r *TransactionRepository) Save(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	return r.write(ctx, transactions)
}

// FindByID returns the transaction with the given id, or nil when no record
// matches.
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	transactions, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		if transactions[i].ID == id {
			tx := transactions[i]
			return &tx, nil
		}
	}
	return nil, nil
}

// Remove deletes the transaction with the given id and reports whether a
// removal occurred. The list is only written back when it shrank, so
// removing the same id twice is idempotent: the second call returns false.
func (r *TransactionRepository) Remove(ctx context.Context, id string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}

	transactions, healed := r.read(ctx)

	kept := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}

	removed := len(kept) != len(transactions)
	switch {
	case removed:
		if err := r.write(ctx, kept); err != nil {
			return false, err
		}
	case healed:
		if err := r.write(ctx, transactions); err != nil {
			slog.Warn("write-through repair failed", "error", err)
		}
	}
	return removed, nil
}

// Update replaces the stored transaction sharing the given id and reports
// whether a match was found. The list is written back even when nothing
// matched, preserving the long-standing behavior of this path.
func (r *TransactionRepository) Update(ctx context.Context, transaction model.Transaction) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if transaction.ID == "" {
		return false, fmt.Errorf("%w: transaction id", ErrEmptyString)
	}

	transactions, _ := r.read(ctx)

	matched := false
	for i := range transactions {
		if transactions[i].ID == transaction.ID {
			transactions[i] = transaction
			matched = true
		}
	}

	if err := r.write(ctx, transactions); err != nil {
		return false, err
	}
	return matched, nil
}

// read loads and normalizes the stored list, reporting whether any record
// needed healing. All failures resolve to an empty list with a diagnostic.
func (r *TransactionRepository) read(ctx context.Context) ([]model.Transaction, bool) {
	raw, err := r.kv.Get(ctx, transactionsKey)
	if err != nil {
		slog.Error("failed to read transactions, returning empty list", "error", err)
		return []model.Transaction{}, false
	}
	if len(raw) == 0 {
		return []model.Transaction{}, false
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Error("stored transactions are malformed, returning empty list", "error", err)
		return []model.Transaction{}, false
	}

	healed := false
	transactions := make([]model.Transaction, 0, len(entries))
	for _, entry := range entries {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			healed = true
			continue
		}

		var stored storedTransaction
		if err := json.Unmarshal(trimmed, &stored); err != nil {
			slog.Warn("dropping unreadable transaction record", "error", err)
			healed = true
			continue
		}

		tx, changed := canonicalize(stored)
		healed = healed || changed
		transactions = append(transactions, tx)
	}

	slog.Debug("loaded transactions", "count", len(transactions), "healed", healed)
	return transactions, healed
}

func (r *TransactionRepository) write(ctx context.Context, transactions []model.Transaction) error {
	encoded, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := r.kv.Set(ctx, transactionsKey, encoded); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// canonicalize converts one stored record to the canonical shape, reporting
// whether the persisted form differed.
func canonicalize(stored storedTransaction) (model.Transaction, bool) {
	changed := false

	id := stored.ID
	if id == "" {
		id = uuid.NewString()
		changed = true
	}

	var valor float64
	switch v := stored.Valor.(type) {
	case float64:
		valor = format.ParseAmount(v)
		if valor != v {
			changed = true
		}
	case nil:
		changed = true
	default:
		// Legacy records stored localized currency strings.
		valor = format.ParseAmount(v)
		changed = true
	}

	chave, wrapped := categoryKey(stored.Categoria)
	changed = changed || wrapped

	data := stored.Data
	if strings.Contains(data, "T") {
		data, _, _ = strings.Cut(data, "T")
		changed = true
	}

	return model.Transaction{
		ID:        id,
		Titulo:    stored.Titulo,
		Valor:     valor,
		Tipo:      stored.Tipo,
		Categoria: model.CategoryRef{Chave: chave},
		Data:      data,
	}, changed
}

// categoryKey extracts the category key from either the canonical {chave}
// object (legacy aliases included) or a bare label string. The second
// return reports whether the record needs rewriting.
func categoryKey(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	var bare string
	if err := json.Unmarshal(trimmed, &bare); err == nil {
		return bare, true
	}

	var ref struct {
		Chave string `json:"chave"`
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(trimmed, &ref); err != nil {
		return "", false
	}
	if ref.Chave != "" {
		return ref.Chave, false
	}
	if ref.Key != "" {
		return ref.Key, true
	}
	return ref.Value, ref.Value != ""
}
