package termapp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/purbtool/purb/internal/ui"
	"github.com/purbtool/purb/passphrase"
)

// Prompt implements ui.Prompter over a terminal's stdin/stdout.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

var _ ui.Prompter = (*Prompt)(nil)

// NewPrompt builds a Prompt reading from stdin and writing to stdout.
func NewPrompt() *Prompt {
	return &Prompt{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: int(os.Stdin.Fd())}
}

func (p *Prompt) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("termapp: unable to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompt) InputPath() (string, error) {
	return p.ask("Input file path: ")
}

func (p *Prompt) Comment(defaultValue string) (string, error) {
	answer, err := p.ask(fmt.Sprintf("Comment [%s]: ", defaultValue))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *Prompt) OutputPath() (string, error) {
	return p.ask("Output file path: ")
}

func (p *Prompt) Size() (uint64, error) {
	answer, err := p.ask("Output size in bytes: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(answer, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("termapp: invalid size %q: %w", answer, err)
	}
	return n, nil
}

func (p *Prompt) Range() (start, end uint64, err error) {
	startAnswer, err := p.ask("Start position: ")
	if err != nil {
		return 0, 0, err
	}
	start, err = strconv.ParseUint(startAnswer, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("termapp: invalid start position %q: %w", startAnswer, err)
	}

	endAnswer, err := p.ask("End position: ")
	if err != nil {
		return 0, 0, err
	}
	end, err = strconv.ParseUint(endAnswer, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("termapp: invalid end position %q: %w", endAnswer, err)
	}
	return start, end, nil
}

func (p *Prompt) KeyfilePaths() ([]string, error) {
	var paths []string
	for {
		answer, err := p.ask("Keyfile path (empty to finish): ")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return paths, nil
		}
		paths = append(paths, answer)
	}
}

func (p *Prompt) Passphrase() ([]byte, error) {
	suggest, err := p.Confirm("Suggest a passphrase instead of typing one", false)
	if err != nil {
		return nil, err
	}
	if suggest {
		if suggestion, ok, err := p.suggestPassphrase(); err != nil || ok {
			return suggestion, err
		}
	}
	return p.typePassphrase()
}

func (p *Prompt) typePassphrase() ([]byte, error) {
	fmt.Fprint(p.out, "Passphrase: ")
	first, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, fmt.Errorf("termapp: unable to read passphrase: %w", err)
	}

	fmt.Fprint(p.out, "Confirm passphrase: ")
	second, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, fmt.Errorf("termapp: unable to read passphrase confirmation: %w", err)
	}

	if string(first) != string(second) {
		return nil, fmt.Errorf("termapp: passphrases do not match")
	}
	return first, nil
}

// suggestPassphrase generates and offers a passphrase. ok is false when the
// operator declines the suggestion and wants to type their own instead.
func (p *Prompt) suggestPassphrase() (suggestion []byte, ok bool, err error) {
	style, err := p.ask("Style - words or characters [words]: ")
	if err != nil {
		return nil, false, err
	}

	var text string
	switch strings.ToLower(style) {
	case "", "words", "word", "diceware":
		text, err = passphrase.Strong()
	case "characters", "chars":
		text, err = passphrase.StrongCharacters()
	default:
		return nil, false, fmt.Errorf("termapp: unrecognized passphrase style %q", style)
	}
	if err != nil {
		return nil, false, fmt.Errorf("termapp: unable to suggest passphrase: %w", err)
	}

	fmt.Fprintf(p.out, "Suggested passphrase: %s\n", text)
	use, err := p.Confirm("Use this passphrase", true)
	if err != nil {
		return nil, false, err
	}
	return []byte(text), use, nil
}

func (p *Prompt) TimeCost() (uint32, error) {
	answer, err := p.ask("Argon2 time cost [4]: ")
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return 4, nil
	}
	n, err := strconv.ParseUint(answer, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("termapp: invalid time cost %q: %w", answer, err)
	}
	return uint32(n), nil
}

func (p *Prompt) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	answer, err := p.ask(fmt.Sprintf("%s [%s]: ", question, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("termapp: unrecognized answer %q", answer)
	}
}
