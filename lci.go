// Package lci contains a CLI-driven REPL session for the untyped lambda
// calculus interpreter: reading statements and meta-commands from an input
// stream and evaluating them against a persistent Environment until the
// user quits.
package lci

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/mattn/go-isatty"

	"github.com/dekarrin/lci/internal/command"
	"github.com/dekarrin/lci/internal/completion"
	"github.com/dekarrin/lci/internal/config"
	"github.com/dekarrin/lci/internal/input"
	"github.com/dekarrin/lci/internal/lambda"
)

const (
	consoleOutputWidth = 80

	cmdQuit       = "quit"
	cmdExit       = "exit"
	cmdShow       = "show"
	cmdList       = "list"
	cmdImport     = "import"
	cmdEcho       = "echo"
	cmdReductions = "reductions"
)

// Session contains the things needed to run a REPL from an interactive
// shell attached to an input stream and an output stream.
type Session struct {
	env         *lambda.Environment
	registry    *command.Registry
	in          command.Reader
	out         *bufio.Writer
	forceDirect bool
	banner      bool
	running     bool
}

// New creates a new Session ready to operate on the given input and output
// streams. It will immediately open a reader on the input stream (readline-
// backed when attached to a real TTY, unless forceDirectInput is set) and a
// buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for
// the output stream, stdout is used.
func New(inputStream io.Reader, outputStream io.Writer, forceDirectInput bool, cfg config.Config) (*Session, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	sess := &Session{
		out:         bufio.NewWriter(outputStream),
		forceDirect: forceDirectInput,
		banner:      cfg.BannerEnabled(true),
	}

	sess.env = lambda.NewEnvironment(sess.out)
	if cfg.MaxReductions > 0 {
		sess.env.MaxReductions = cfg.MaxReductions
	}
	sess.env.EchoEnabled = cfg.EchoEnabled(true)

	sess.registry = newCommandRegistry()

	completers := completion.NewCompleters().
		Add(command.ArgSymbol, completion.SymbolTableAdapter{Env: func() lambda.SymbolTable { return sess.env }}).
		Add(command.ArgBoolean, completion.BoolCompleter{}).
		Add(command.ArgFile, completion.FileCompleter{}).
		Add(command.ArgCommand, completion.CommandNameCompleter{Registry: sess.registry})
	driver := completion.NewDriver(sess.registry, completers)

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout && isatty.IsTerminal(os.Stdin.Fd())

	var err error
	if useReadline {
		sess.in, err = input.NewInteractiveReader(driver)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		sess.in = input.NewDirectReader(inputStream)
	}

	for _, file := range cfg.Prelude {
		sess.importFile(file)
	}
	sess.out.Flush()

	return sess, nil
}

func newCommandRegistry() *command.Registry {
	r := command.NewRegistry(true)
	r.Add(command.Nullary(cmdQuit))
	r.Add(command.Nullary(cmdExit))
	r.Add(command.Variadic(cmdShow, command.ArgSymbol))
	r.Add(command.Nullary(cmdList))
	r.Add(command.Unary(cmdImport, command.ArgFile))
	r.Add(command.WithArities(cmdEcho, command.ArgBoolean, []int{0, 1}))
	r.Add(command.WithArities(cmdReductions, command.ArgNumber, []int{0, 1}))
	return r
}

// Close closes all resources associated with the Session, including any
// readline-related resources created for interactive mode.
func (sess *Session) Close() error {
	if sess.running {
		return fmt.Errorf("cannot close a running session")
	}
	if err := sess.in.Close(); err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}
	return nil
}

// RunUntilQuit begins reading lines from the input stream and evaluating
// them until a "quit"/"exit" command is received or input reaches EOF. Any
// startCommands are run first, in order, as though typed at the prompt.
func (sess *Session) RunUntilQuit(startCommands []string) error {
	if sess.banner && isatty.IsTerminal(os.Stdin.Fd()) {
		if err := sess.writeString("lci -- untyped lambda calculus interpreter\n===========================================\n\n"); err != nil {
			return err
		}
	}

	sess.running = true
	defer func() { sess.running = false }()

	for _, line := range startCommands {
		if !sess.running {
			break
		}
		sess.handleLine(line)
	}

	for sess.running {
		line, err := sess.in.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read input: %w", err)
		}
		sess.handleLine(line)
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return sess.writeString("Goodbye\n")
	}
	return sess.out.Flush()
}

func (sess *Session) handleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if command.IsCommand(line) {
		sess.runCommand(line)
	} else {
		_ = sess.env.Interpret(line)
	}

	sess.out.Flush()
}

func (sess *Session) runCommand(line string) {
	call, err := sess.registry.Parse(line)
	if err != nil {
		fmt.Fprintln(sess.out, err)
		return
	}

	switch call.Command.Name {
	case cmdQuit, cmdExit:
		sess.running = false
	case cmdShow:
		sess.show(call.Args)
	case cmdList:
		sess.list()
	case cmdImport:
		sess.importFile(call.Args[0])
	case command.HelpCommandName:
		arg := ""
		if len(call.Args) > 0 {
			arg = call.Args[0]
		}
		sess.registry.WriteHelp(sess.out, arg)
	case cmdEcho:
		sess.echo(call.Args)
	case cmdReductions:
		sess.reductions(call.Args)
	}
}

func (sess *Session) show(identifiers []string) {
	for _, id := range identifiers {
		if term, ok := sess.env.Get(id); ok {
			fmt.Fprintf(sess.out, "%s = %s\n", id, lambda.Render(term))
		} else {
			fmt.Fprintf(sess.out, "Undefined identifier %q\n", id)
		}
	}
}

func (sess *Session) list() {
	bindings := sess.env.Bindings()
	if len(bindings) == 0 {
		fmt.Fprintln(sess.out, "(no bindings)")
		return
	}

	data := make([][]string, len(bindings)+1)
	data[0] = []string{"NAME", "VALUE"}
	for i, b := range bindings {
		data[i+1] = []string{b.Identifier, lambda.Render(b.Value)}
	}

	table := rosed.Edit("").
		InsertTableOpts(0, data, consoleOutputWidth, rosed.Options{
			TableHeaders: true,
		}).
		String()
	fmt.Fprintln(sess.out, table)
}

func (sess *Session) importFile(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(sess.out, "Error opening %s: %v\n", filename, err)
		return
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := sess.env.Interpret(scanner.Text()); err != nil {
			fmt.Fprintf(sess.out, "Error in line %d.\n", lineNumber)
			return
		}
	}
}

func (sess *Session) echo(args []string) {
	switch len(args) {
	case 0:
		fmt.Fprintf(sess.out, "Echo: %v\n", sess.env.EchoEnabled)
	case 1:
		b, err := strconv.ParseBool(args[0])
		if err != nil {
			fmt.Fprintf(sess.out, "Error: %v\n", err)
			return
		}
		sess.env.EchoEnabled = b
	}
}

func (sess *Session) reductions(args []string) {
	switch len(args) {
	case 0:
		fmt.Fprintf(sess.out, "Maximum reductions: %d\n", sess.env.MaxReductions)
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(sess.out, "Error: %v\n", err)
			return
		}
		sess.env.MaxReductions = n
	}
}

func (sess *Session) writeString(s string) error {
	if _, err := sess.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return sess.out.Flush()
}
