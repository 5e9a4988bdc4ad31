package completion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/lci/internal/lambda"
)

// SymbolTableAdapter completes a Symbol argument against the identifiers
// currently bound in an Environment's symbol table. The Env indirection
// decouples the completer's lifetime from the environment's: the caller can
// swap the environment out or tear it down, and the adapter degrades to
// offering no candidates when Env (or the table it returns) is nil.
type SymbolTableAdapter struct {
	Env func() lambda.SymbolTable
}

func (s SymbolTableAdapter) Complete(line string, pos int) (int, []string) {
	if s.Env == nil {
		return pos, nil
	}
	symbols := s.Env()
	if symbols == nil {
		return pos, nil
	}

	wordStart, word := extractWord(line, pos)
	var matches []string
	for _, name := range symbols.Symbols() {
		if strings.HasPrefix(name, word) {
			matches = append(matches, name)
		}
	}
	return wordStart, matches
}

// FileCompleter completes a File argument against entries in the
// directory named by the word's existing path prefix.
type FileCompleter struct{}

func (FileCompleter) Complete(line string, pos int) (int, []string) {
	wordStart, word := extractWord(line, pos)

	dir := filepath.Dir(word)
	base := filepath.Base(word)
	if word == "" {
		dir, base = ".", ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return wordStart, nil
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		candidate := name
		if dir != "." || strings.HasPrefix(word, "./") {
			candidate = filepath.Join(dir, name)
		}
		if entry.IsDir() {
			candidate += string(filepath.Separator)
		}
		matches = append(matches, candidate)
	}
	return wordStart, matches
}
