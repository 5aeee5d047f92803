package word

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/pavsca/internal/ir"
)

// Substitution replaces every occurrence of From with To in raw word text.
type Substitution struct {
	From string
	To   string
}

// DefaultSubstitutions map ASCII stand-ins to IPA: ':' to the length mark
// and '\'' to the stress mark.
var DefaultSubstitutions = []Substitution{
	{From: ":", To: string(ir.Length)},
	{From: "'", To: string(ir.StressMark)},
}

// Preprocess NFC-normalizes text and applies substitutions in order.
func Preprocess(text string, subs []Substitution) string {
	text = ir.Normalize(text)
	for _, s := range subs {
		if s.From == "" {
			continue
		}
		text = strings.ReplaceAll(text, s.From, s.To)
	}
	return text
}

// ReadList parses one word per line. Blank lines are skipped.
func ReadList(r io.Reader, subs []Substitution) ([]*Word, error) {
	var words []*Word
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, Parse(Preprocess(line, subs)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// Render concatenates the IPA form of each word, separated by sep.
func Render(words []*Word, sep string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.String()
	}
	return strings.Join(parts, sep)
}
