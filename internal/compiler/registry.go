package compiler

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/pavsca/internal/ir"
)

// Category is a named list of alternative phonemes.
//
// Every alias in one definition points at the same Category, so a change to
// Phonemes through one name is visible through all of them.
type Category struct {
	Names    []string
	Phonemes []ir.Phoneme
}

// Registry maps category names (short form "C" or long form "<consonant>")
// to categories.
type Registry struct {
	categories map[string]*Category
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{categories: make(map[string]*Category)}
}

// IsCategoryName reports whether name is a single uppercase letter or a
// non-empty <bracketed> name.
func IsCategoryName(name string) bool {
	if strings.HasPrefix(name, "<") {
		return len(name) > 2 && strings.HasSuffix(name, ">") && strings.Count(name, ">") == 1
	}
	r, size := utf8.DecodeRuneInString(name)
	return size == len(name) && unicode.IsUpper(r)
}

// Define processes a definition command of the form
// "name[, name...] = value[, value...]". All names are bound to one shared
// Category. Redefining a name rebinds it; rules compiled earlier keep the
// alternatives they resolved.
func (r *Registry) Define(command string) error {
	if strings.Count(command, "=") != 1 {
		return &CompileError{
			Code:    ErrCodeMalformedDefine,
			Command: command,
			Message: "definition must contain exactly one '='",
		}
	}
	lhs, rhs, _ := strings.Cut(command, "=")

	names, err := splitList(lhs)
	if err != nil {
		return &CompileError{Code: ErrCodeMalformedDefine, Command: command, Message: "names: " + err.Error()}
	}
	values, err := splitList(rhs)
	if err != nil {
		return &CompileError{Code: ErrCodeMalformedDefine, Command: command, Message: "values: " + err.Error()}
	}

	for _, name := range names {
		if !IsCategoryName(name) {
			return &CompileError{
				Code:    ErrCodeMalformedDefine,
				Command: command,
				Message: fmt.Sprintf("invalid category name %q: use an uppercase letter or <name>", name),
			}
		}
	}

	cat := &Category{
		Names:    names,
		Phonemes: make([]ir.Phoneme, len(values)),
	}
	for i, v := range values {
		cat.Phonemes[i] = ir.Phoneme(v)
	}
	for _, name := range names {
		r.categories[name] = cat
	}
	return nil
}

// Lookup returns the category bound to name.
func (r *Registry) Lookup(name string) (*Category, bool) {
	cat, ok := r.categories[name]
	return cat, ok
}

// Names returns every bound name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.categories))
	for name := range r.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// splitList splits a comma-separated list and trims each entry.
// Empty lists and empty entries are rejected.
func splitList(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list")
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil, fmt.Errorf("empty entry at position %d", i+1)
		}
	}
	return parts, nil
}
