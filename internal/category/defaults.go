// Package category reconciles category records from their historical shapes
// into the canonical model.Category and owns the built-in default set.
package category

import "github.com/gabrielsilvacodes/financas-app/internal/model"

const (
	// DefaultColor is assigned to categories created without a color.
	DefaultColor = "#1DB954"
	// FallbackColor is used by chart joins when a transaction references a
	// category that no longer resolves.
	FallbackColor = "#264653"
)

// Defaults returns the fixed built-in category set. It is defined at build
// time and never persisted; callers merge it with the user-created set.
// A fresh copy is returned on every call so callers can append freely.
func Defaults() model.CategorySet {
	return model.CategorySet{
		Entrada: []model.Category{
			{Chave: "salario", Nome: "Salário", Cor: "#2D6A4F", Tipo: model.TipoEntrada},
			{Chave: "presente", Nome: "Presente", Cor: "#38A3A5", Tipo: model.TipoEntrada},
			{Chave: "venda", Nome: "Venda", Cor: "#80ED99", Tipo: model.TipoEntrada},
			{Chave: "outros_entrada", Nome: "Outros", Cor: "#A0C4FF", Tipo: model.TipoEntrada},
		},
		Saida: []model.Category{
			{Chave: "alimentacao", Nome: "Alimentação", Cor: "#E76F51", Tipo: model.TipoSaida},
			{Chave: "transporte", Nome: "Transporte", Cor: "#F4A261", Tipo: model.TipoSaida},
			{Chave: "lazer", Nome: "Lazer", Cor: "#E5989B", Tipo: model.TipoSaida},
			{Chave: "educacao", Nome: "Educação", Cor: "#B5838D", Tipo: model.TipoSaida},
			{Chave: "saude", Nome: "Saúde", Cor: "#FFB4A2", Tipo: model.TipoSaida},
			{Chave: "outros_saida", Nome: "Outros", Cor: "#CDB4DB", Tipo: model.TipoSaida},
		},
	}
}
