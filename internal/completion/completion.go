// Package completion implements tab-completion for the REPL: per-argument-
// type completers dispatched by a line/cursor-position-aware driver that
// targets chzyer/readline's AutoCompleter interface.
package completion

import (
	"strings"
	"unicode"

	"github.com/dekarrin/lci/internal/command"
)

// ArgCompleter offers completion candidates for one kind of command
// argument. wordStart is the byte offset within line at which the word
// being completed begins; candidates are full replacement words.
type ArgCompleter interface {
	Complete(line string, pos int) (wordStart int, candidates []string)
}

// extractWord finds the boundaries of the word ending at or containing pos
// within line, scanning backward from pos to the nearest preceding
// whitespace rune (or the start of line). It returns the byte offset of the
// word's start and the word itself (the substring from that offset to pos).
func extractWord(line string, pos int) (wordStart int, word string) {
	if pos > len(line) {
		pos = len(line)
	}
	runes := []rune(line[:pos])
	i := len(runes)
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	wordStart = len(string(runes[:i]))
	word = string(runes[i:])
	return wordStart, word
}

// Completers maps each command.ArgType to the ArgCompleter that serves it.
type Completers struct {
	byType map[command.ArgType]ArgCompleter
}

// NewCompleters builds an empty completer set.
func NewCompleters() *Completers {
	return &Completers{byType: make(map[command.ArgType]ArgCompleter)}
}

// Add registers completer for argType and returns the set for chaining.
func (c *Completers) Add(argType command.ArgType, completer ArgCompleter) *Completers {
	c.byType[argType] = completer
	return c
}

// Get returns the completer registered for argType, or a completer that
// always yields no candidates if none was registered.
func (c *Completers) Get(argType command.ArgType) ArgCompleter {
	if completer, ok := c.byType[argType]; ok {
		return completer
	}
	return noopCompleter{}
}

type noopCompleter struct{}

func (noopCompleter) Complete(line string, pos int) (int, []string) {
	return pos, nil
}

// CommandNameCompleter offers every registered command's name as a
// candidate, filtered to those with the typed prefix.
type CommandNameCompleter struct {
	Registry *command.Registry
}

func (c CommandNameCompleter) Complete(line string, pos int) (int, []string) {
	wordStart, word := extractWord(line, pos)
	if strings.HasPrefix(word, command.Prefix) {
		wordStart += len(command.Prefix)
		word = word[len(command.Prefix):]
	}
	var matches []string
	for _, cmd := range c.Registry.MatchPrefix(word) {
		matches = append(matches, cmd.Name)
	}
	return wordStart, matches
}

// BoolCompleter offers "true"/"false" filtered to the typed prefix.
type BoolCompleter struct{}

func (BoolCompleter) Complete(line string, pos int) (int, []string) {
	wordStart, word := extractWord(line, pos)
	var matches []string
	if strings.HasPrefix("true", word) {
		matches = append(matches, "true")
	}
	if strings.HasPrefix("false", word) {
		matches = append(matches, "false")
	}
	if len(matches) == 0 {
		wordStart = 0
	}
	return wordStart, matches
}
