package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/gabrielsilvacodes/financas-app/internal/common"
	"github.com/gabrielsilvacodes/financas-app/internal/config"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
	"github.com/gabrielsilvacodes/financas-app/internal/service"
	"github.com/gabrielsilvacodes/financas-app/internal/storage"
)

// stores bundles the opened KV store and the repositories built on it.
// Close the store when done.
type stores struct {
	kv         service.KVStore
	transacoes service.TransactionStore
	categorias service.CategoryStore
}

// initStores opens the configured local store and wires the repositories.
func initStores() (*stores, error) {
	kv, err := storage.NewSQLiteKV(config.DBPath(viper.GetViper()))
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return &stores{
		kv:         kv,
		transacoes: storage.NewTransactionRepository(kv),
		categorias: storage.NewCategoryRepository(kv),
	}, nil
}

func (s *stores) Close() {
	_ = s.kv.Close()
}

// saveWithRetry persists the full transaction list, retrying transient
// storage failures. The repositories never retry on their own.
func saveWithRetry(ctx context.Context, repo service.TransactionStore, transactions []model.Transaction) error {
	return common.WithRetry(ctx, func() error {
		return repo.Save(ctx, transactions)
	}, service.RetryOptions{MaxAttempts: 3})
}

// parseTipo validates the --tipo flag.
func parseTipo(raw string) (model.TransactionType, error) {
	tipo := model.TransactionType(raw)
	if !tipo.Valid() {
		return "", common.NewUserError(
			fmt.Sprintf("tipo inválido %q (use %q ou %q)", raw, model.TipoEntrada, model.TipoSaida), nil)
	}
	return tipo, nil
}
