package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/zephyrtronium/arith"
)

const (
	banner = "Simple expression evaluator (type 'quit' or Ctrl+D to exit)"
	prompt = ">>> "
)

// maxLine is the longest input line accepted from a non-terminal source.
const maxLine = 1 << 20

// lineReader is a source of input lines without their line terminators. At
// the end of input, ReadLine returns io.EOF.
type lineReader interface {
	ReadLine() (string, error)
}

// session is a read-eval-print loop. Each line is evaluated independently.
type session struct {
	in  lineReader
	out io.Writer
	lg  *slog.Logger

	// faint and alert decorate the banner and error lines.
	faint, alert func(string) string
}

func newSession(in lineReader, out io.Writer, lg *slog.Logger) *session {
	return &session{
		in:    in,
		out:   out,
		lg:    lg,
		faint: plain,
		alert: plain,
	}
}

func plain(s string) string { return s }

// run prompts for and evaluates lines until the input ends or a line is quit
// or exit.
func (s *session) run() {
	s.println(s.faint(banner))
	for s.step() {
	}
	s.println("Bye.")
}

// step reads and handles a single line. The result is false when the session
// should end.
func (s *session) step() bool {
	line, err := s.in.ReadLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.lg.Error("reading input", slog.Any("err", err))
		}
		return false
	}
	switch line {
	case "":
		return true
	case "quit", "exit":
		return false
	}
	r, err := arith.Eval(line)
	if err != nil {
		s.lg.Debug("rejected expression", slog.String("line", line), slog.Any("err", err))
		s.println(s.alert("Error: " + err.Error()))
		return true
	}
	s.println(format(r))
	return true
}

func (s *session) println(line string) {
	if _, err := io.WriteString(s.out, line+"\n"); err != nil {
		s.lg.Error("writing output", slog.Any("err", err))
	}
}

// scanLines reads lines from a plain reader, writing a prompt before each.
type scanLines struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newScanLines(in io.Reader, out io.Writer) *scanLines {
	sc := bufio.NewScanner(in)
	sc.Buffer(nil, maxLine)
	return &scanLines{sc: sc, out: out}
}

func (l *scanLines) ReadLine() (string, error) {
	if _, err := io.WriteString(l.out, prompt); err != nil {
		return "", err
	}
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.sc.Text(), nil
}
