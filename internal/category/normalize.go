package category

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

// Raw is a category record as it may appear in storage: the canonical
// {chave, nome, cor, tipo} object, the legacy {label, value, key} shape
// from the dropdown era, or a bare label string.
type Raw struct {
	Chave string                `json:"chave"`
	Nome  string                `json:"nome"`
	Cor   string                `json:"cor"`
	Tipo  model.TransactionType `json:"tipo"`

	// Legacy aliases.
	Label string `json:"label"`
	Value string `json:"value"`
	Key   string `json:"key"`
}

// UnmarshalJSON accepts both the object shapes and a bare label string.
func (r *Raw) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Raw{Nome: s}
		return nil
	}

	type plain Raw
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid category record: %w", err)
	}
	*r = Raw(p)
	return nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slugify derives a category key from a display name: lowercased with
// whitespace runs replaced by underscores.
func Slugify(nome string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(nome)), "_")
}

// Normalize produces the canonical category from any historical shape.
// Missing names fall back to a synthesized "Categoria N" using
// fallbackIndex, missing colors to DefaultColor, and missing keys derive
// from the name.
func Normalize(r Raw, fallbackIndex int) model.Category {
	nome := strings.TrimSpace(r.Nome)
	if nome == "" {
		nome = strings.TrimSpace(r.Label)
	}
	if nome == "" {
		nome = fmt.Sprintf("Categoria %d", fallbackIndex+1)
	}

	chave := firstNonEmpty(r.Chave, r.Key, r.Value)
	if chave == "" {
		chave = Slugify(nome)
	}

	cor := strings.TrimSpace(r.Cor)
	if cor == "" {
		cor = DefaultColor
	}

	return model.Category{Chave: chave, Nome: nome, Cor: cor, Tipo: r.Tipo}
}

// Heal re-normalizes an already-decoded category, filling any blank fields.
func Heal(c model.Category, fallbackIndex int) model.Category {
	return Normalize(Raw{Chave: c.Chave, Nome: c.Nome, Cor: c.Cor, Tipo: c.Tipo}, fallbackIndex)
}

// MergeLists concatenates custom categories before defaults and removes
// duplicate keys, keeping the first occurrence. User customizations
// therefore take precedence over built-ins sharing the same key; order is
// otherwise insertion order of the concatenation.
func MergeLists(custom, defaults []model.Category) []model.Category {
	merged := make([]model.Category, 0, len(custom)+len(defaults))
	seen := make(map[string]struct{}, len(custom)+len(defaults))

	for _, c := range append(append([]model.Category{}, custom...), defaults...) {
		if _, dup := seen[c.Chave]; dup {
			continue
		}
		seen[c.Chave] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
