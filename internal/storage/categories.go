package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabrielsilvacodes/financas-app/internal/category"
	"github.com/gabrielsilvacodes/financas-app/internal/common"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
	"github.com/gabrielsilvacodes/financas-app/internal/service"
)

// categoriesKey is the storage key holding the partitioned category object.
const categoriesKey = "@financasApp_categorias"

// CategoryRepository persists the user-created category set. The built-in
// defaults are never stored; Merged joins them behind the user's own
// categories.
type CategoryRepository struct {
	kv service.KVStore
}

var _ service.CategoryStore = (*CategoryRepository)(nil)

// NewCategoryRepository creates a repository over the given store.
func NewCategoryRepository(kv service.KVStore) *CategoryRepository {
	return &CategoryRepository{kv: kv}
}

// storedCategorySet decodes both partitions through the tolerant Raw shape.
type storedCategorySet struct {
	Entrada []category.Raw `json:"entrada"`
	Saida   []category.Raw `json:"saida"`
}

// Load returns the persisted partitioned set. When the store is empty or
// the stored object is malformed (either partition missing), the defaults
// are seeded into the store and returned.
func (r *CategoryRepository) Load(ctx context.Context) (model.CategorySet, error) {
	if err := validateContext(ctx); err != nil {
		return model.CategorySet{}, err
	}

	raw, err := r.kv.Get(ctx, categoriesKey)
	if err != nil {
		slog.Error("failed to read categories, seeding defaults", "error", err)
		return r.seedDefaults(ctx), nil
	}
	if len(raw) == 0 {
		return r.seedDefaults(ctx), nil
	}

	var stored storedCategorySet
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("stored categories are malformed, seeding defaults", "error", err)
		return r.seedDefaults(ctx), nil
	}
	if stored.Entrada == nil || stored.Saida == nil {
		return r.seedDefaults(ctx), nil
	}

	return model.CategorySet{
		Entrada: normalizeAll(stored.Entrada, model.TipoEntrada),
		Saida:   normalizeAll(stored.Saida, model.TipoSaida),
	}, nil
}

// Save normalizes every entry and overwrites the stored set. At least one
// partition must be present.
func (r *CategoryRepository) Save(ctx context.Context, set model.CategorySet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if set.Entrada == nil && set.Saida == nil {
		return ErrMissingPartition
	}

	canonical := model.CategorySet{
		Entrada: healAll(set.Entrada, model.TipoEntrada),
		Saida:   healAll(set.Saida, model.TipoSaida),
	}
	return r.write(ctx, canonical)
}

// Add creates a new category in the given partition and returns it for
// immediate selection. The key derives from the name; a duplicate key
// within the partition is rejected.
func (r *CategoryRepository) Add(ctx context.Context, nome, cor string, tipo model.TransactionType) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(nome, "nome"); err != nil {
		return nil, err
	}
	if !tipo.Valid() {
		return nil, fmt.Errorf("%w: tipo %q", common.ErrInvalidInput, tipo)
	}

	nome = strings.TrimSpace(nome)
	if cor == "" {
		cor = category.DefaultColor
	}
	chave := category.Slugify(nome)

	set, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range set.Partition(tipo) {
		if strings.EqualFold(existing.Chave, chave) {
			return nil, fmt.Errorf("%w: categoria %q", common.ErrDuplicateEntry, nome)
		}
	}

	nova := model.Category{Chave: chave, Nome: nome, Cor: cor, Tipo: tipo}
	if tipo.Is(model.TipoEntrada) {
		set.Entrada = append(set.Entrada, nova)
	} else {
		set.Saida = append(set.Saida, nova)
	}

	if err := r.write(ctx, set); err != nil {
		return nil, err
	}
	return &nova, nil
}

// Merged returns the user-created categories of one partition concatenated
// ahead of the defaults, deduplicated by key with first occurrence winning.
func (r *CategoryRepository) Merged(ctx context.Context, tipo model.TransactionType) ([]model.Category, error) {
	set, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	defaults := category.Defaults()
	return category.MergeLists(set.Partition(tipo), defaults.Partition(tipo)), nil
}

// seedDefaults stores and returns the built-in set. The write is best
// effort: a failure leaves the defaults usable in memory.
func (r *CategoryRepository) seedDefaults(ctx context.Context) model.CategorySet {
	defaults := category.Defaults()
	if err := r.write(ctx, defaults); err != nil {
		slog.Warn("failed to seed default categories", "error", err)
	}
	return defaults
}

func (r *CategoryRepository) write(ctx context.Context, set model.CategorySet) error {
	// Both partitions are stored as arrays even when empty; a nil
	// partition would persist as null and read back as malformed.
	if set.Entrada == nil {
		set.Entrada = []model.Category{}
	}
	if set.Saida == nil {
		set.Saida = []model.Category{}
	}

	encoded, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := r.kv.Set(ctx, categoriesKey, encoded); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

func normalizeAll(raws []category.Raw, tipo model.TransactionType) []model.Category {
	out := make([]model.Category, 0, len(raws))
	for i, raw := range raws {
		if raw.Tipo == "" {
			raw.Tipo = tipo
		}
		out = append(out, category.Normalize(raw, i))
	}
	return out
}

func healAll(categories []model.Category, tipo model.TransactionType) []model.Category {
	if categories == nil {
		return nil
	}
	out := make([]model.Category, 0, len(categories))
	for i, c := range categories {
		if c.Tipo == "" {
			c.Tipo = tipo
		}
		out = append(out, category.Heal(c, i))
	}
	return out
}
