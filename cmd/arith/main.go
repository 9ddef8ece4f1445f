package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	// Usage errors are reported by cobra. A session itself always ends
	// successfully, so there is no exit status to propagate.
	newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arith",
		Short: "Evaluate arithmetic expressions interactively",
		Long: `arith reads one arithmetic expression per line and prints its value.

Expressions may use + - * /, parentheses, and unary signs, e.g.
  -(1 + 2) * 3 / .5

Enter quit or exit, or send end of input, to leave.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			lg := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))
			serve(cmd.InOrStdin(), cmd.OutOrStdout(), lg)
		},
	}
}

// serve runs a session over in and out. If both are terminals, the
// session uses a line editor with the terminal in raw mode.
func serve(in io.Reader, out io.Writer, lg *slog.Logger) {
	fd, ok := terminalFd(in, out)
	if !ok {
		newSession(newScanLines(in, out), out, lg).run()
		return
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		lg.Warn("cannot use line editing", slog.Any("err", err))
		newSession(newScanLines(in, out), out, lg).run()
		return
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	s := newSession(t, t, lg)
	s.styled(newStyles(out))
	s.run()
}

// terminalFd returns the file descriptor of in if both in and out are
// terminals.
func terminalFd(in io.Reader, out io.Writer) (int, bool) {
	fi, ok := in.(*os.File)
	if !ok {
		return 0, false
	}
	fo, ok := out.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(fi.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(fo.Fd())) {
		return 0, false
	}
	return fd, true
}
