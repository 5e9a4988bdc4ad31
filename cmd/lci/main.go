/*
Lci starts an interactive lambda calculus interpreter session.

It reads statements and meta-commands from stdin (or, with -c, from the
command line) and evaluates them against a persistent environment of
definitions, printing each evaluation's normal form, until the user quits.

Usage:

	lci [flags]

The flags are:

	-v, --version
		Give the current version of lci and then exit.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

	-c, --command COMMANDS
		Immediately run the given statement(s)/command(s) at start. Can be
		multiple, separated by the ";" character.

	-f, --file PATH
		Load definitions from the given file (as with ":import") before
		reading from the normal input source.

	--config FILE
		Use the given TOML config file instead of searching for ".lci.toml"
		in the current directory.

	--no-rc
		Skip loading ".lci.toml" entirely, ignoring --config as well.

Once a session has started, non-":"-prefixed input is parsed as a lambda
calculus statement. For an explanation of the meta-commands, type ":help"
once in a session. To exit the interpreter, type ":quit".
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/lci"
	"github.com/dekarrin/lci/internal/config"
	"github.com/dekarrin/lci/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitRuntimeError indicates an unsuccessful program execution due to a
	// problem during the interpreter session.
	ExitRuntimeError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the session.
	ExitInitError
)

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Gives the version info")
	forceDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	startCommand = pflag.StringP("command", "c", "", "Execute the given statements/commands immediately at start and leave the interpreter open")
	preludeFile  = pflag.StringP("file", "f", "", "Load definitions from the given file before reading from the normal input source")
	configFile   = pflag.String("config", "", "Path to a TOML config file (defaults to searching for .lci.toml)")
	noRC         = pflag.Bool("no-rc", false, "Skip loading .lci.toml entirely")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	var startCommands []string
	if *startCommand != "" {
		startCommands = strings.Split(*startCommand, ";")
	}

	var cfg config.Config
	if !*noRC {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}
	if *preludeFile != "" {
		cfg.Prelude = append(cfg.Prelude, *preludeFile)
	}

	sess, initErr := lci.New(os.Stdin, os.Stdout, *forceDirect, cfg)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer sess.Close()

	if err := sess.RunUntilQuit(startCommands); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRuntimeError
		return
	}
}

// loadConfig resolves which config file to read (an explicit path, or the
// first of "./.lci.toml" / "$HOME/.lci.toml" that exists) and loads it.
func loadConfig(explicitPath string) (config.Config, error) {
	if explicitPath != "" {
		return config.Load(explicitPath)
	}

	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.Load(config.DefaultFileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, config.DefaultFileName)
		if _, err := os.Stat(homePath); err == nil {
			return config.Load(homePath)
		}
	}

	return config.Config{}, nil
}
