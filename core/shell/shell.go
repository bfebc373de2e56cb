package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"minsh.dev/minsh/core/config"
	"minsh.dev/minsh/core/logger"
	"minsh.dev/minsh/core/vos"
)

const (
	EnvHome     = "HOME"
	EnvPath     = "PATH"
	EnvUser     = "USER"
	EnvHostname = "HOSTNAME"
)

// Shell drives the resolve/execute cycle over a line source. One line
// is fully tokenized, resolved and executed -- including blocking on
// any external process -- before the next is read.
type Shell struct {
	VirtualOS vos.VOS
	Files     vos.VIO
	Config    *config.Configuration
	Events    *logger.Logger

	// Quit is set once an Exit builtin runs; the loop stops and the
	// hosting process terminates with ExitCode.
	Quit     bool
	ExitCode uint8
}

// New creates a Shell over the given OS, streams and configuration.
func New(virtOS vos.VOS, files vos.VIO, cfg *config.Configuration) *Shell {
	return &Shell{
		VirtualOS: virtOS,
		Files:     files,
		Config:    cfg,
		Events:    logger.Nop(),
	}
}

// Run reads and executes lines until EOF or an exit builtin, then
// returns the shell's exit code.
func (s *Shell) Run() int {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.Files.Stdin()),
		Stdout: s.Files.Stdout(),
		Stderr: s.Files.Stderr(),
	}
	if err := cfg.Init(); err != nil {
		fmt.Fprintf(s.Files.Stderr(), "minsh: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		fmt.Fprintf(s.Files.Stderr(), "minsh: %v\n", err)
		return 1
	}
	defer rl.Close()

	for !s.Quit {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		default:
			s.RunLine(line)
		}
	}

	return int(s.ExitCode)
}

// RunLine tokenizes, resolves and executes a single line. Every state
// created for the line is scoped to this call; only the working
// directory survives it.
func (s *Shell) RunLine(line string) {
	cmd, err := Resolve(s.VirtualOS, line)
	switch {
	case errors.Is(err, ErrNoCommand):
		return // Blank line, silently re-prompt.
	case err != nil:
		fmt.Fprintln(s.Files.Stderr(), err)
		return
	}

	switch kind := cmd.Kind.(type) {
	case Builtin:
		s.Events.Record(logger.Event{Name: cmd.Name, Kind: logger.KindBuiltin})
		quit, code := RunBuiltin(s.VirtualOS, s.Files, kind.Action)
		if quit {
			s.Quit = true
			s.ExitCode = code
		}

	case External:
		state := RunExternal(s.VirtualOS, s.Files, cmd.Name, kind)
		s.Events.Record(logger.Event{
			Name:     cmd.Name,
			Kind:     logger.KindExternal,
			Path:     kind.Path,
			ExitCode: state.ExitCode,
			Abnormal: !state.Exited,
		})

	case NotFound:
		s.Events.Record(logger.Event{Name: cmd.Name, Kind: logger.KindNotFound})
		fmt.Fprintf(s.Files.Stdout(), "%s: not found\n", cmd.Name)

	default:
		panic(fmt.Sprintf("unhandled command kind: %T", cmd.Kind))
	}
}

// prompt expands the configured PS1-style template.
func (s *Shell) prompt() string {
	prompt := s.Config.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	prompt = strings.ReplaceAll(prompt, `\u`, s.VirtualOS.Getenv(EnvUser))
	prompt = strings.ReplaceAll(prompt, `\h`, s.VirtualOS.Getenv(EnvHostname))

	pwd, _ := s.VirtualOS.Getwd()
	if home := s.VirtualOS.Getenv(EnvHome); home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	prompt = strings.ReplaceAll(prompt, `\$`, "$")

	return prompt
}
