package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	nslang "github.com/snaveen/n-slang"
)

const (
	appName     = "nsl"
	historyFile = ".nslang_history"
	promptMain  = "nsl> "
)

var banner = fmt.Sprintf("n-slang %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", nslang.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }
func faint(s string) string { return "\x1b[2m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(nslang.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`n-slang %s

Usage:
  %s run <file.nsy> [--trace]     Run a YAML program file.
  %s eval "<words>" [--trace]     Run words given on the command line.
  %s repl                         Start the REPL.
  %s version                      Print the engine version.

`, nslang.Version, appName, appName, appName, appName)
}

// traceSink adapts the engine's (tag, payload) diagnostics to zerolog.
type traceSink struct {
	log zerolog.Logger
}

func (s traceSink) Emit(tag string, payload any) {
	switch ev := payload.(type) {
	case nslang.StepEvent:
		s.log.Debug().Int("pc", ev.PC).Stringer("instr", ev.Instr).Int("depth", ev.Depth).Msg(tag)
	case nslang.ResolveEvent:
		s.log.Debug().Int("pc", ev.PC).Str("word", ev.Symbol).Stringer("to", ev.To).Msg(tag)
	case nslang.ApplyEvent:
		s.log.Debug().Int("pc", ev.PC).Str("prim", ev.Name).Int("depth", ev.Depth).Msg(tag)
	case *nslang.Trap:
		s.log.Error().Int("pc", ev.PC).Err(ev.Err).Msg(tag)
	default:
		s.log.Debug().Interface("payload", payload).Msg(tag)
	}
}

func newInterp(trace bool) *nslang.Interp {
	ip := nslang.New(nslang.BuildEnv(nslang.StdWords()))
	if trace {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		ip.Sink = traceSink{log: log}
	}
	return ip
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "log step/resolve/apply events to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.nsy> [--trace]\n", appName)
		return 2
	}

	file := fs.Arg(0)
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	prog, err := loadProgramYAML(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %v\n", appName, file, err)
		return 1
	}

	return runAndPrint(newInterp(*trace), prog)
}

// -----------------------------------------------------------------------------
// eval
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "log step/resolve/apply events to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s eval \"<words>\" [--trace]\n", appName)
		return 2
	}

	prog, err := readWords(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	return runAndPrint(newInterp(*trace), prog)
}

func runAndPrint(ip *nslang.Interp, prog nslang.Program) int {
	st, err := ip.Run(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, nslang.FormatError(err))
		return 1
	}
	fmt.Println(nslang.FormatStack(st))
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := newInterp(false)
	st := nslang.NewStack()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":stack":
				fmt.Println(blue(nslang.FormatStack(st)))
			case ":reset":
				st = nslang.NewStack()
				fmt.Println(faint("stack cleared"))
			default:
				fmt.Println("commands: :stack :reset :quit")
			}
			continue
		}

		prog, perr := readWords(code)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(perr.Error()))
			continue
		}

		// The stack persists across lines; a trap keeps whatever the failing
		// step left behind, same as the engine reports it.
		next, rerr := ip.RunFrom(prog, 0, st)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(nslang.FormatError(rerr)))
		} else {
			st = next
			fmt.Println(blue(nslang.FormatStack(st)))
		}
		ln.AppendHistory(line)
	}
}
