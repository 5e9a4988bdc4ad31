package completion

import (
	"strings"

	"github.com/dekarrin/lci/internal/command"
)

// Driver implements chzyer/readline's AutoCompleter interface (Do(line
// []rune, pos int) (newLine [][]rune, length int)), dispatching by cursor
// position: before the command name, no candidates; inside the command
// name, prefix-match command names; past the command name, delegate to the
// completer registered for that command's argument type.
type Driver struct {
	Registry   *command.Registry
	Completers *Completers
}

// NewDriver builds a completion Driver for registry, dispatching argument
// completion through completers.
func NewDriver(registry *command.Registry, completers *Completers) *Driver {
	return &Driver{Registry: registry, Completers: completers}
}

// Do implements readline.AutoCompleter.
func (d *Driver) Do(line []rune, pos int) (newLine [][]rune, length int) {
	full := string(line)
	if pos > len(full) {
		pos = len(full)
	}

	word, start, _, ok := command.Tokenize(full)
	if !ok || pos < start {
		return nil, 0
	}

	var wordStart int
	var candidates []string

	if pos <= start+len(word) {
		// cursor is still within the command name itself.
		wordStart = start
		for _, c := range d.Registry.MatchPrefix(word) {
			candidates = append(candidates, c.Name)
		}
	} else {
		matches := d.Registry.MatchPrefix(word)
		if len(matches) != 1 || matches[0].Arg == nil {
			return nil, 0
		}
		wordStart, candidates = d.Completers.Get(*matches[0].Arg).Complete(full, pos)
	}

	return runeSuffixes(full, pos, wordStart, candidates), pos - wordStart
}

// runeSuffixes converts full replacement-word candidates into the
// rune-slice suffixes readline expects: the portion of each candidate past
// what the user already typed (full[wordStart:pos]).
func runeSuffixes(full string, pos, wordStart int, candidates []string) [][]rune {
	if wordStart > pos || wordStart < 0 {
		return nil
	}
	typed := full[wordStart:pos]
	out := make([][]rune, 0, len(candidates))
	for _, c := range candidates {
		if !strings.HasPrefix(c, typed) {
			continue
		}
		out = append(out, []rune(c[len(typed):]))
	}
	return out
}
