package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// prompter bundles the line-oriented input and colored output shared by
// the tracker and admin CLIs.
type prompter struct {
	in    *bufio.Reader
	rawIn io.Reader
	out   io.Writer
}

func newPrompter(in io.Reader, out io.Writer) prompter {
	return prompter{
		in:    bufio.NewReader(in),
		rawIn: in,
		out:   out,
	}
}

// readLine reads one line and trims surrounding whitespace. A final
// unterminated line still counts.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) prompt(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	return p.readLine()
}

// promptChoice keeps asking until the answer is one of the choices.
func (p *prompter) promptChoice(label string, choices ...string) (string, error) {
	for {
		answer, err := p.prompt(label)
		if err != nil {
			return "", err
		}
		for _, c := range choices {
			if answer == c {
				return answer, nil
			}
		}
		p.fail("Invalid choice. Please choose again.")
	}
}

// promptChoiceDefault is promptChoice with a default for empty input.
func (p *prompter) promptChoiceDefault(label, def string, choices ...string) (string, error) {
	for {
		answer, err := p.prompt(label)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		for _, c := range choices {
			if answer == c {
				return answer, nil
			}
		}
		p.fail("Invalid choice. Please choose again.")
	}
}

// promptPassword hides input on a real terminal and falls back to a plain
// read otherwise (piped input, tests).
func (p *prompter) promptPassword(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	if f, ok := p.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		defer fmt.Fprintln(p.out)
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p.readLine()
}

func (p *prompter) confirm(label string) (bool, error) {
	answer, err := p.promptChoice(label+" [y/n]:", "y", "n")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func (p *prompter) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
}

func (p *prompter) fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(p.out, "Error: "+format+"\n", args...)
}
