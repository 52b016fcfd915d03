package model

// Category is a named, colored grouping tag applied to transactions.
// Chave is the normalized identifier (lowercase, whitespace replaced),
// unique within its Tipo partition.
type Category struct {
	Chave string          `json:"chave"`
	Nome  string          `json:"nome"`
	Cor   string          `json:"cor"`
	Tipo  TransactionType `json:"tipo,omitempty"`
}

// CategorySet is the persisted partitioned category object: one list per
// transaction type.
type CategorySet struct {
	Entrada []Category `json:"entrada"`
	Saida   []Category `json:"saida"`
}

// Partition returns the category list for the given transaction type.
// Unknown types yield the expense partition, the common case.
func (s CategorySet) Partition(tipo TransactionType) []Category {
	if tipo.Is(TipoEntrada) {
		return s.Entrada
	}
	return s.Saida
}
