// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     repl
// Description: Line oriented read loop printing tokens or parsed programs
// Author:      Mike Stoffels
// Created:     2026-01-14
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/msto63/monkey/pkg/ast"
	"github.com/msto63/monkey/pkg/core/logging"
	"github.com/msto63/monkey/pkg/lexer"
	"github.com/msto63/monkey/pkg/parser"
	"github.com/msto63/monkey/pkg/token"
)

// Prompt is printed before every input line
const Prompt = ">> "

// Mode selects what the loop prints for a line
type Mode string

const (
	ModeTokens Mode = "tokens" // one token per line
	ModeAST    Mode = "ast"    // Program.String()
	ModeTree   Mode = "tree"   // indented node dump
)

// ParseMode validates a mode name
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case ModeTokens, ModeAST, ModeTree:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (tokens, ast, tree)", name)
	}
}

// Options configures a read loop session
type Options struct {
	Prompt      string
	Mode        Mode
	HistoryFile string // used by interactive sessions only
	Color       string // auto, always or never
	Parser      parser.Options
	Logger      *slog.Logger
}

// lineReader abstracts readline and plain buffered input
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type session struct {
	out    io.Writer
	mode   Mode
	opts   Options
	styles styles
	logger *slog.Logger
}

// Start runs the read loop until in is exhausted or ctx is cancelled. Every
// line is handled on its own: errors are printed and the loop continues.
func Start(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = Prompt
	}
	if opts.Mode == "" {
		opts.Mode = ModeTokens
	}
	if opts.Color == "" {
		opts.Color = "auto"
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	interactive := isTerminal(in) && isTerminal(out)
	s := &session{
		out:    out,
		mode:   opts.Mode,
		opts:   opts,
		styles: newStyles(out, opts.Color, interactive),
		logger: opts.Logger.With("component", "monkey-repl", "session", uuid.NewString()),
	}
	if s.opts.Parser.Logger == nil {
		s.opts.Parser.Logger = s.logger
	}

	reader, err := s.newReader(in, interactive)
	if err != nil {
		return err
	}
	defer reader.Close()

	s.logger.Debug("session started", "mode", string(s.mode), "interactive", interactive)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("session ended")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if quit := s.handle(line); quit {
			s.logger.Debug("session ended by command")
			return nil
		}
	}
}

func (s *session) newReader(in io.Reader, interactive bool) (lineReader, error) {
	prompt := s.styles.render(s.styles.prompt, s.opts.Prompt)

	if interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      prompt,
			HistoryFile: s.opts.HistoryFile,
		})
		if err != nil {
			return nil, fmt.Errorf("init readline: %w", err)
		}
		return &terminalReader{rl: rl}, nil
	}

	return &plainReader{in: bufio.NewReader(in), out: s.out, prompt: prompt}, nil
}

// handle processes one input line and reports whether the session should end
func (s *session) handle(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		return s.command(strings.Fields(line[1:]))
	}

	switch s.mode {
	case ModeAST, ModeTree:
		s.printProgram(line)
	default:
		s.printTokens(line)
	}
	return false
}

// command handles the colon commands :mode, :help and :quit
func (s *session) command(args []string) bool {
	if len(args) == 0 {
		s.printError(errors.New("empty command, try :help"))
		return false
	}

	switch args[0] {
	case "quit", "q", "exit":
		return true
	case "help", "h":
		fmt.Fprintln(s.out, s.styles.render(s.styles.muted, ":mode [tokens|ast|tree]  show or switch the output mode"))
		fmt.Fprintln(s.out, s.styles.render(s.styles.muted, ":quit                    leave the session"))
		fmt.Fprintln(s.out, s.styles.render(s.styles.muted, "keywords: "+strings.Join(keywordNames(), " ")))
	case "mode":
		if len(args) == 1 {
			fmt.Fprintln(s.out, s.styles.render(s.styles.muted, "mode: "+string(s.mode)))
			return false
		}
		mode, err := ParseMode(args[1])
		if err != nil {
			s.printError(err)
			return false
		}
		s.mode = mode
		s.logger.Debug("mode changed", "mode", string(mode))
	default:
		s.printError(fmt.Errorf("unknown command :%s, try :help", args[0]))
	}
	return false
}

// keywordNames returns the reserved words in alphabetical order
func keywordNames() []string {
	kw := token.Keywords()
	names := make([]string, 0, len(kw))
	for name := range kw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *session) printTokens(line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintln(s.out, s.styleToken(tok))
	}
	if err := l.Err(); err != nil {
		s.printError(err)
	}
}

func (s *session) printProgram(line string) {
	program, err := parser.Parse(line, s.opts.Parser)
	if err != nil {
		s.printError(err)
		return
	}
	s.logger.Debug("line parsed", "statements", len(program.Statements))

	if s.mode == ModeTree {
		fmt.Fprint(s.out, ast.Dump(program))
		return
	}
	fmt.Fprintln(s.out, program.String())
}

func (s *session) styleToken(tok token.Token) string {
	text := tok.String()
	switch {
	case tok.Type == token.ILLEGAL:
		return s.styles.render(s.styles.err, text)
	case tok.Type.IsKeyword():
		return s.styles.render(s.styles.keyword, text)
	case tok.Type == token.INT || tok.Type == token.IDENT:
		return s.styles.render(s.styles.literal, text)
	default:
		return s.styles.render(s.styles.token, text)
	}
}

func (s *session) printError(err error) {
	fmt.Fprintln(s.out, s.styles.render(s.styles.err, err.Error()))
}

// terminalReader reads with line editing and history
type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C on an empty line ends the session, otherwise drops the line
			if line == "" {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func (r *terminalReader) Close() error { return r.rl.Close() }

// plainReader reads from pipes and files, echoing the prompt to out
type plainReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func (r *plainReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, r.prompt)

	line, err := r.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		// last line without a trailing newline
		return line, nil
	}
	return line, err
}

func (r *plainReader) Close() error { return nil }

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
