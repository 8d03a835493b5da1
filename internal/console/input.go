package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrQuit is returned when the user asks to leave the current mode.
var ErrQuit = errors.New("quit requested")

var ErrEmptyDescription = errors.New("job description cannot be empty")

const quitWord = "quit"

// Console collects job details interactively.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	*Presenter
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		Presenter: NewPresenter(out),
	}
}

// Choose shows a selection menu and returns the chosen item.
func (c *Console) Choose(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	_, choice, err := prompt.Run()
	return choice, err
}

// Ask reads a single line. Typing "quit" returns ErrQuit.
func (c *Console) Ask(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}

	answer, err := prompt.Run()
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, quitWord) {
		return "", ErrQuit
	}

	return answer, nil
}

// Confirm asks a yes/no question. Only "y" and "yes" count as yes.
func (c *Console) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}

	answer, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// Pause waits until the user presses Enter.
func (c *Console) Pause(label string) error {
	fmt.Fprintf(c.out, "\n%s", label)

	_, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// AskJobDescription prints the instructions and reads a multi-line
// description.
func (c *Console) AskJobDescription() (string, error) {
	fmt.Fprintln(c.out, "Job Description (finish with an empty line):")
	return ReadJobDescription(c.in)
}

// ReadJobDescription reads lines until an empty line that follows non-empty
// content, or until EOF. Leading empty lines are skipped. The result is
// trimmed; an empty result yields ErrEmptyDescription.
func ReadJobDescription(r *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading job description: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				break
			}
		} else {
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	description := strings.TrimSpace(strings.Join(lines, "\n"))
	if description == "" {
		return "", ErrEmptyDescription
	}

	return description, nil
}
