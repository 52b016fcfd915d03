package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

func newTransactionRepo() (*TransactionRepository, *MemoryKV) {
	kv := NewMemoryKV()
	return NewTransactionRepository(kv), kv
}

func storedList(t *testing.T, kv *MemoryKV) []model.Transaction {
	t.Helper()
	raw, err := kv.Get(context.Background(), transactionsKey)
	require.NoError(t, err)
	require.NotNil(t, raw)
	var out []model.Transaction
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestLoadEmptyStore(t *testing.T) {
	repo, _ := newTransactionRepo()

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadHealsLegacyRecords(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTransactionRepo()

	legacy := `[
		{"titulo":"Mercado","valor":"50,00","tipo":"saida","categoria":"alimentacao","data":"2025-04-10"},
		{"id":"tx-2","titulo":"Salário","valor":100,"tipo":"entrada","categoria":{"chave":"salario"},"data":"2025-04-05T08:30:00.000Z"},
		null
	]`
	kv.Seed(transactionsKey, []byte(legacy))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	t.Run("assigns missing ids", func(t *testing.T) {
		assert.NotEmpty(t, got[0].ID)
		assert.Equal(t, "tx-2", got[1].ID)
	})

	t.Run("wraps bare string categories", func(t *testing.T) {
		assert.Equal(t, "alimentacao", got[0].Categoria.Chave)
	})

	t.Run("parses string amounts", func(t *testing.T) {
		assert.InDelta(t, 50, got[0].Valor, 0.001)
	})

	t.Run("drops the time component", func(t *testing.T) {
		assert.Equal(t, "2025-04-05", got[1].Data)
	})

	t.Run("persists the repaired list", func(t *testing.T) {
		stored := storedList(t, kv)
		require.Len(t, stored, 2)
		assert.Equal(t, got[0].ID, stored[0].ID)
		assert.Equal(t, "alimentacao", stored[0].Categoria.Chave)
	})

	t.Run("healing is idempotent", func(t *testing.T) {
		again, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.Equal(t, got[0].ID, again[0].ID)
		assert.Equal(t, got[1].ID, again[1].ID)
	})
}

func TestLoadRawDoesNotWriteBack(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTransactionRepo()

	legacy := `[{"titulo":"Mercado","valor":10,"tipo":"saida","categoria":"alimentacao","data":"2025-04-10"}]`
	kv.Seed(transactionsKey, []byte(legacy))

	got, err := repo.LoadRaw(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)

	// The stored blob is untouched.
	raw, err := kv.Get(ctx, transactionsKey)
	require.NoError(t, err)
	assert.JSONEq(t, legacy, string(raw))
}

func TestLoadResilientToStorageFailure(t *testing.T) {
	repo, kv := newTransactionRepo()
	kv.FailGets(errors.New("disk on fire"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadResilientToMalformedBlob(t *testing.T) {
	repo, kv := newTransactionRepo()
	kv.Seed(transactionsKey, []byte(`{"not":"a list"}`))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects nil list", func(t *testing.T) {
		repo, _ := newTransactionRepo()
		err := repo.Save(ctx, nil)
		assert.ErrorIs(t, err, ErrNilParameter)
	})

	t.Run("overwrites the whole list", func(t *testing.T) {
		repo, kv := newTransactionRepo()
		require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "a"}, {ID: "b"}}))
		require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "c"}}))

		stored := storedList(t, kv)
		require.Len(t, stored, 1)
		assert.Equal(t, "c", stored[0].ID)
	})

	t.Run("write failures propagate", func(t *testing.T) {
		repo, kv := newTransactionRepo()
		kv.FailSets(errors.New("write denied"))
		err := repo.Save(ctx, []model.Transaction{{ID: "a"}})
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTransactionRepo()
	require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "a", Titulo: "Mercado"}}))

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Mercado", got.Titulo)
	})

	t.Run("absent id is not an error", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTransactionRepo()
	require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "a"}, {ID: "b"}}))

	t.Run("first removal shrinks the list", func(t *testing.T) {
		removed, err := repo.Remove(ctx, "a")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Len(t, storedList(t, kv), 1)
	})

	t.Run("second removal is idempotent", func(t *testing.T) {
		removed, err := repo.Remove(ctx, "a")
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, storedList(t, kv), 1)
	})

	t.Run("write failures propagate", func(t *testing.T) {
		kv.FailSets(errors.New("write denied"))
		defer kv.FailSets(nil)
		_, err := repo.Remove(ctx, "b")
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the matching record", func(t *testing.T) {
		repo, kv := newTransactionRepo()
		require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "a", Titulo: "antes"}}))

		updated, err := repo.Update(ctx, model.Transaction{ID: "a", Titulo: "depois"})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "depois", storedList(t, kv)[0].Titulo)
	})

	t.Run("requires an id", func(t *testing.T) {
		repo, _ := newTransactionRepo()
		_, err := repo.Update(ctx, model.Transaction{Titulo: "sem id"})
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("no match still writes the unchanged list", func(t *testing.T) {
		repo, kv := newTransactionRepo()
		require.NoError(t, repo.Save(ctx, []model.Transaction{{ID: "a"}}))

		updated, err := repo.Update(ctx, model.Transaction{ID: "missing"})
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Len(t, storedList(t, kv), 1)
	})
}
