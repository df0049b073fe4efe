package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Navigator prints route changes to the terminal. The view-models only ever
// name a target; following it is meaningless in a terminal session, so the
// target is surfaced for the user to act on.
type Navigator struct {
	out io.Writer
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func NewTerminalNavigator() *Navigator {
	return NewNavigator(os.Stdout)
}

func (n *Navigator) Navigate(target string) {
	log.Debug().Str("target", target).Msg("navigation requested")
	fmt.Fprintf(n.out, "-> %s\n", target) // nolint:errcheck
}

// Confirmer asks a y/n question on the terminal. Anything but an explicit
// yes declines.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

func NewTerminalConfirmer() *Confirmer {
	return NewConfirmer(os.Stdin, os.Stdout)
}

func (c *Confirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt) // nolint:errcheck

	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
