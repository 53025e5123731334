package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"pickaxe/internal/domain"
	"pickaxe/internal/ux"
)

// ErrInputClosed means input ended while a prompt still needed an answer.
var ErrInputClosed = errors.New("input closed")

// Terminal prompts on an arbitrary reader/writer pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// raw is the underlying input; hidden reads use term.ReadPassword
	// when it is a real terminal.
	raw io.Reader
}

// New returns a Terminal reading from in and printing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, raw: in}
}

var _ domain.Prompter = (*Terminal)(nil)

// Line prints label and reads one line, trimmed of the trailing newline.
func (t *Terminal) Line(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Index prompts for an integer until it falls in [1, n]. Non-integer and
// out-of-range input prints the bounded hint and re-prompts; it never
// accepts silently and never panics.
func (t *Terminal) Index(label string, n int) (int, error) {
	for {
		line, err := t.Line(label)
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || i < 1 || i > n {
			fmt.Fprintln(t.out, ux.InvalidSelection(1, n))
			continue
		}
		return i, nil
	}
}

// Password reads hidden input. On a real terminal the echo is suppressed
// via term.ReadPassword; otherwise it falls back to a plain line read so
// scripted and piped input still works. End of input means the user
// abandoned the prompt, reported as cancelled.
func (t *Terminal) Password(label string) (string, bool, error) {
	fmt.Fprintf(t.out, "%s: ", label)

	if f, ok := t.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", true, nil
			}
			return "", false, err
		}
		return string(b), false, nil
	}

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", true, nil
		}
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), false, nil
}
