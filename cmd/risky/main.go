package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/pgavlin/risky"
)

const (
	version     = "0.0.0.0.3"
	prompt      = "risky> "
	historyFile = ".risky_history"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("risky: ")

	switch len(os.Args) {
	case 1:
		if isInputRedirected() {
			if err := run(risky.NewSession(), os.Stdin, os.Stdout); err != nil {
				log.Fatal(err)
			}
			return
		}
		if err := repl(); err != nil {
			log.Fatal(err)
		}
	case 2:
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := run(risky.NewSession(), f, os.Stdout); err != nil {
			log.Fatalf("reading %v: %v", os.Args[1], err)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [path to file]\n", os.Args[0])
		os.Exit(2)
	}
}

// run evaluates each non-blank line of r in s and writes each result to w.
// It stops early if a line calls exit.
func run(s *risky.Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if step(s, line, w) == risky.Terminate {
			return nil
		}
	}
	return scanner.Err()
}

// step evaluates one line and prints either its result or the syntax error.
func step(s *risky.Session, line string, w io.Writer) risky.Control {
	v, ctl, err := s.EvalString(line)
	if err != nil {
		fmt.Fprintln(w, err)
		return risky.Continue
	}
	fmt.Fprintln(w, risky.EncodeToString(v))
	return ctl
}

func repl() error {
	fmt.Printf("Risky version %s\n", version)
	fmt.Printf("Running on %s\n", runtime.GOOS)
	fmt.Printf("Press Ctrl-c or Ctrl-d to Exit\n\n")

	s := risky.NewSession()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(s.Env()))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			ln.Close()
			os.Exit(130)
		}
	}()

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer saveHistory(ln, histPath)
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if step(s, line, os.Stdout) == risky.Terminate {
			return nil
		}
	}
}

// completer completes the word under the cursor against the names bound in
// env.
func completer(env *risky.Env) liner.Completer {
	return func(line string) []string {
		i := strings.LastIndexAny(line, " \t(){}") + 1
		head, word := line[:i], line[i:]

		var completions []string
		for _, name := range env.Names() {
			if strings.HasPrefix(string(name), word) {
				completions = append(completions, head+string(name))
			}
		}
		return completions
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("saving history: %v", err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		log.Printf("saving history: %v", err)
	}
}

func isInputRedirected() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
