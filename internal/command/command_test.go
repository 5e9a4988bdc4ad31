package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	r := NewRegistry(true)
	r.Add(Unary("show", ArgSymbol))
	r.Add(Unary("import", ArgFile))
	r.Add(Unary("echo", ArgBoolean))
	r.Add(Nullary("list"))
	r.Add(Nullary("quit"))
	return r
}

func Test_Registry_matching(t *testing.T) {
	r := newTestRegistry()

	matches := r.MatchPrefix("sh")
	require.Len(t, matches, 1)
	assert.Equal(t, "show", matches[0].Name)

	// "im" matches only "import".
	matches = r.MatchPrefix("im")
	require.Len(t, matches, 1)
	assert.Equal(t, "import", matches[0].Name)

	// no command starts with "zzz".
	assert.Empty(t, r.MatchPrefix("zzz"))
}

func Test_Registry_parsing(t *testing.T) {
	r := newTestRegistry()

	call, err := r.Parse(":show id")
	require.NoError(t, err)
	assert.Equal(t, "show", call.Command.Name)
	assert.Equal(t, []string{"id"}, call.Args)

	call, err = r.Parse(":q")
	require.NoError(t, err)
	assert.Equal(t, "quit", call.Command.Name)
	assert.Empty(t, call.Args)

	_, err = r.Parse("no colon here")
	require.Error(t, err)
	var invalid *InvalidCommandError
	assert.ErrorAs(t, err, &invalid)

	// wrong arity: "show" is unary, given two args.
	_, err = r.Parse(":show a b")
	require.Error(t, err)

	// "help" was registered with arities {0, 1}; both must be accepted.
	call, err = r.Parse(":help")
	require.NoError(t, err)
	assert.Equal(t, HelpCommandName, call.Command.Name)

	call, err = r.Parse(":help show")
	require.NoError(t, err)
	assert.Equal(t, []string{"show"}, call.Args)
}

func Test_Registry_parsing_ambiguousPrefixRejected(t *testing.T) {
	r := NewRegistry(false)
	r.Add(Nullary("import"))
	r.Add(Nullary("inventory"))

	_, err := r.Parse(":i")
	require.Error(t, err)
}

func Test_Tokenize(t *testing.T) {
	word, start, args, ok := Tokenize("  :show id ans")
	require.True(t, ok)
	assert.Equal(t, "show", word)
	assert.Equal(t, 3, start)
	assert.Equal(t, []string{"id", "ans"}, args)

	_, _, _, ok = Tokenize("no colon")
	assert.False(t, ok)

	word, _, args, ok = Tokenize(":")
	require.True(t, ok)
	assert.Equal(t, "", word)
	assert.Empty(t, args)
}

func Test_Registry_WriteHelp_singleCommand(t *testing.T) {
	r := newTestRegistry()
	var buf bytes.Buffer
	r.WriteHelp(&buf, "show")
	assert.Contains(t, buf.String(), "show")
	assert.Contains(t, buf.String(), "USAGE:")
	assert.Contains(t, buf.String(), ":show Symbol")
}

func Test_Registry_WriteHelp_unknownCommand(t *testing.T) {
	r := newTestRegistry()
	var buf bytes.Buffer
	r.WriteHelp(&buf, "bogus")
	assert.Contains(t, buf.String(), "No commands with name: bogus")
}

func Test_Registry_WriteHelp_listsAllSorted(t *testing.T) {
	r := newTestRegistry()
	var buf bytes.Buffer
	r.WriteHelp(&buf, "")
	out := buf.String()
	assert.Contains(t, out, "Commands:")
	// "echo" must be listed before "show" in the sorted listing.
	assert.Less(t, indexOf(out, "echo"), indexOf(out, "show"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func Test_IsCommand(t *testing.T) {
	assert.True(t, IsCommand(":show id"))
	assert.True(t, IsCommand("   :quit"))
	assert.False(t, IsCommand("(Lx.x)"))
	assert.False(t, IsCommand(""))
}
