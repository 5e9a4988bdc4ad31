// Package command implements the REPL's meta-command layer: parsing
// prefix-matchable ":"-commands with typed, arity-checked arguments, and
// printing their usage text. It has no dependency on the lambda calculus
// core; the core is wired in by whatever calls Registry.Parse.
package command

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ArgType names the kind of value a Command's argument accepts, driving
// which completer (see internal/completion) offers candidates for it.
type ArgType int

const (
	// ArgSymbol is a bound identifier, e.g. ":show <Symbol>".
	ArgSymbol ArgType = iota
	// ArgFile is a filesystem path, e.g. ":import <File>".
	ArgFile
	// ArgBoolean is "true" or "false", e.g. ":echo <Boolean>".
	ArgBoolean
	// ArgNumber is a non-negative integer, e.g. ":reductions <Number>".
	ArgNumber
	// ArgCommand is the name of another registered command, used by :help.
	ArgCommand
)

func (a ArgType) String() string {
	switch a {
	case ArgSymbol:
		return "Symbol"
	case ArgFile:
		return "File"
	case ArgBoolean:
		return "Boolean"
	case ArgNumber:
		return "Number"
	case ArgCommand:
		return "Command"
	default:
		return "Arg"
	}
}

// Prefix is the character every meta-command starts with.
const Prefix = ":"

// HelpCommandName is the name ":help" is registered under.
const HelpCommandName = "help"

// Command is one registered meta-command: a name, the permitted argument
// counts (an empty Arities means any count, i.e. variadic), and the
// argument's type (nil for a nullary command).
type Command struct {
	Name    string
	Arities []int
	Arg     *ArgType
}

// WithArities builds a Command with an explicit argument type and a fixed
// set of permitted argument counts.
func WithArities(name string, arg ArgType, arities []int) Command {
	return Command{Name: name, Arities: arities, Arg: &arg}
}

// Variadic builds a Command whose argument type is arg and which accepts
// any number of arguments (":show <id>...").
func Variadic(name string, arg ArgType) Command {
	return Command{Name: name, Arg: &arg}
}

// Unary builds a Command that takes exactly one argument of type arg.
func Unary(name string, arg ArgType) Command {
	return WithArities(name, arg, []int{1})
}

// Nullary builds a Command that takes no arguments.
func Nullary(name string) Command {
	return Command{Name: name, Arities: []int{0}}
}

func (c Command) hasFixedArities() bool { return len(c.Arities) > 0 }

func (c Command) acceptsArity(n int) bool {
	if !c.hasFixedArities() {
		return true
	}
	for _, a := range c.Arities {
		if a == n {
			return true
		}
	}
	return false
}

// WriteHelp prints the command's name, a "USAGE:" header, and one usage
// line per permitted arity (or a single variadic usage line if Arities is
// empty).
func (c Command) WriteHelp(w io.Writer) {
	argName := "arg"
	if c.Arg != nil {
		argName = c.Arg.String()
	}

	fmt.Fprintln(w, c.Name)
	fmt.Fprintln(w, "USAGE:")
	if !c.hasFixedArities() {
		fmt.Fprintf(w, "\t%s%s [%s...]\n", Prefix, c.Name, argName)
		return
	}
	for _, arity := range c.Arities {
		fmt.Fprintf(w, "\t%s%s", Prefix, c.Name)
		for i := 0; i < arity; i++ {
			fmt.Fprintf(w, " %s", argName)
		}
		fmt.Fprintln(w)
	}
}

// InvalidCommandError is returned by Parse when a line is not a recognized,
// arity-correct command invocation.
type InvalidCommandError struct {
	Line string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Line)
}

// Call is a successfully parsed invocation: the matched Command and its
// argument tokens.
type Call struct {
	Command Command
	Args    []string
}

// Registry holds the set of recognized meta-commands.
type Registry struct {
	commands []Command
}

// NewRegistry creates an empty registry. If withHelp is true, a ":help
// [Command]" entry accepting zero or one argument is registered
// automatically.
func NewRegistry(withHelp bool) *Registry {
	r := &Registry{}
	if withHelp {
		r.commands = append(r.commands, WithArities(HelpCommandName, ArgCommand, []int{0, 1}))
	}
	return r
}

// Add registers a command and returns the registry for chaining.
func (r *Registry) Add(c Command) *Registry {
	r.commands = append(r.commands, c)
	return r
}

// Commands returns every registered command, in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// MatchPrefix returns every command whose name starts with prefix.
func (r *Registry) MatchPrefix(prefix string) []Command {
	var out []Command
	for _, c := range r.commands {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// MatchExact returns the command with exactly this name, if any.
func (r *Registry) MatchExact(name string) (Command, bool) {
	for _, c := range r.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Tokenize splits a line containing a ":"-command into the command word
// (possibly a prefix of a real command name), the byte offset at which
// that word starts, and its argument tokens. ok is false if line contains
// no Prefix at all.
func Tokenize(line string) (word string, start int, args []string, ok bool) {
	idx := strings.Index(line, Prefix)
	if idx < 0 {
		return "", 0, nil, false
	}
	rest := line[idx+len(Prefix):]
	restStart := idx + len(Prefix)

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", restStart, nil, true
	}

	word = fields[0]
	wordOffset := strings.Index(rest, word)
	start = restStart + wordOffset
	args = fields[1:]
	return word, start, args, true
}

// Parse tokenizes line, resolves its command word against an unambiguous
// prefix match, and checks the resulting argument count against the
// matched command's arities.
func (r *Registry) Parse(line string) (Call, error) {
	word, _, args, ok := Tokenize(line)
	if !ok {
		return Call{}, &InvalidCommandError{Line: line}
	}

	candidates := r.MatchPrefix(word)
	if len(candidates) != 1 {
		return Call{}, &InvalidCommandError{Line: line}
	}

	cmd := candidates[0]
	if !cmd.acceptsArity(len(args)) {
		return Call{}, &InvalidCommandError{Line: line}
	}

	return Call{Command: cmd, Args: args}, nil
}

// WriteHelp prints usage for commandName (exact match) or, with an empty
// commandName, lists every registered command name. An unrecognized name is
// reported and followed by the full listing.
func (r *Registry) WriteHelp(w io.Writer, commandName string) {
	if commandName != "" {
		if cmd, ok := r.MatchExact(commandName); ok {
			cmd.WriteHelp(w)
			return
		}
		fmt.Fprintf(w, "No commands with name: %s\n", commandName)
	}

	fmt.Fprintln(w, "Commands:")
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Name
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s\n", name)
	}
}
