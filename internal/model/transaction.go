// Package model defines the canonical data shapes shared across the
// application. Everything downstream of the storage layer operates on these
// types only; legacy storage shapes never leak past normalization.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gabrielsilvacodes/financas-app/internal/format"
)

// TransactionType partitions transactions and categories into income and
// expense sets.
type TransactionType string

const (
	// TipoEntrada represents income transactions.
	TipoEntrada TransactionType = "entrada"
	// TipoSaida represents expense transactions.
	TipoSaida TransactionType = "saida"
)

// Valid reports whether the type is one of the two known partitions.
func (t TransactionType) Valid() bool {
	return t == TipoEntrada || t == TipoSaida
}

// Is compares transaction types case-insensitively. Legacy records store the
// type with arbitrary casing.
func (t TransactionType) Is(other TransactionType) bool {
	return strings.EqualFold(string(t), string(other))
}

// TituloPadrao is the placeholder title for transactions saved without a
// description.
const TituloPadrao = "Sem descrição"

// CategoryRef is the canonical category reference carried by a transaction.
// Legacy records stored a bare label string; the repository wraps those into
// this shape on read.
type CategoryRef struct {
	Chave string `json:"chave"`
}

// Transaction is a single recorded income or expense event. Data is always
// an ISO date (YYYY-MM-DD) and Valor is always a finite non-negative number
// once a transaction has passed through construction or the repository.
type Transaction struct {
	ID        string          `json:"id"`
	Titulo    string          `json:"titulo"`
	Valor     float64         `json:"valor"`
	Tipo      TransactionType `json:"tipo"`
	Categoria CategoryRef     `json:"categoria"`
	Data      string          `json:"data"`
}

// NewTransactionParams carries the loose form input accepted by
// NewTransaction. Valor and Data take any of the representations the UI and
// historical data produce.
type NewTransactionParams struct {
	Valor     any
	Descricao string
	Data      any // time.Time, "DD/MM/YYYY" or ISO-prefixed string
	Tipo      TransactionType
	Categoria string
	// IDExistente preserves the identity of an edited transaction. Ids are
	// generated once at creation and never regenerated on update.
	IDExistente string
}

// ValidateFields reports whether the required form fields are filled in.
// It accepts the amount as number or string and the date as string or
// time.Time, matching what the entry form supplies.
func ValidateFields(p NewTransactionParams) bool {
	valorOK := false
	switch v := p.Valor.(type) {
	case string:
		valorOK = strings.TrimSpace(v) != ""
	case nil:
		valorOK = false
	default:
		valorOK = true
	}

	dataOK := false
	switch d := p.Data.(type) {
	case string:
		dataOK = strings.TrimSpace(d) != ""
	case time.Time:
		dataOK = !d.IsZero()
	}

	return valorOK && strings.TrimSpace(p.Descricao) != "" && dataOK
}

// NewTransaction builds a canonical transaction from loose form input.
// The amount is parsed to a non-negative number, the date is canonicalized
// to ISO and the title falls back to TituloPadrao when blank. A fresh uuid
// is assigned unless IDExistente is set.
func NewTransaction(p NewTransactionParams) Transaction {
	id := p.IDExistente
	if id == "" {
		id = uuid.NewString()
	}

	titulo := strings.TrimSpace(p.Descricao)
	if titulo == "" {
		titulo = TituloPadrao
	}

	return Transaction{
		ID:        id,
		Titulo:    titulo,
		Valor:     format.ParseAmount(p.Valor),
		Tipo:      p.Tipo,
		Categoria: CategoryRef{Chave: p.Categoria},
		Data:      format.ToISODate(p.Data),
	}
}
