// Package prompts asks for the event setup values that were not given on the
// command line.
package prompts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/setup"
)

// Prompter reads answers line by line. Questions go to out so that stdout
// stays free for the command's output.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Default prompts on stderr and reads stdin.
func Default() *Prompter {
	return New(os.Stdin, os.Stderr)
}

func (p *Prompter) EventNamePrompt() (string, error) {
	for {
		userInput, err := p.Prompt("Event name: ")
		if err != nil {
			return "", err
		}
		if userInput != "" {
			return userInput, nil
		}
	}
}

func (p *Prompter) EventKindPrompt() (athletics.EventKind, error) {
	for {
		userInput, err := p.Prompt("Event kind (track, field, combined, walk, marathon) [track]: ")
		if err != nil {
			return "", err
		}
		if userInput == "" {
			return athletics.KindTrack, nil
		}
		kind := athletics.EventKind(strings.ToLower(userInput))
		if kind.IsValid() {
			return kind, nil
		}
		if len(userInput) == 1 {
			if kind = TranslateKindAbbrevToFull(strings.ToLower(userInput)[0]); kind != "" {
				return kind, nil
			}
		}
	}
}

// DisciplinePrompt lists the presets of kind. The answer is either a preset
// number or free text; blank picks the first preset.
func (p *Prompter) DisciplinePrompt(kind athletics.EventKind) (string, error) {
	presets := setup.Disciplines(kind)
	for i, d := range presets {
		fmt.Fprintf(p.out, "%3d) %s\n", i+1, d)
	}
	userInput, err := p.Prompt(fmt.Sprintf("Discipline [%s]: ", setup.DefaultDiscipline(kind)))
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(userInput); err == nil && n >= 1 && n <= len(presets) {
		return presets[n-1], nil
	}
	if userInput == "" {
		return setup.DefaultDiscipline(kind), nil
	}
	return userInput, nil
}

// CountryPrompt accepts a country name or code. Blank means no country.
func (p *Prompter) CountryPrompt(athleteName string) (string, error) {
	for {
		userInput, err := p.Prompt(fmt.Sprintf("Country of %s: ", athleteName))
		if err != nil {
			return "", err
		}
		if userInput == "" {
			return "", nil
		}
		if code, ok := CountryCode(userInput); ok {
			return code, nil
		}
	}
}

// ConfirmPrompt asks a yes/no question. Blank answers def.
func (p *Prompter) ConfirmPrompt(message string, def bool) (bool, error) {
	choices := "(y/N)"
	if def {
		choices = "(Y/n)"
	}
	for {
		userInput, err := p.Prompt(fmt.Sprintf("%s %s ", message, choices))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(userInput) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return def, nil
		}
	}
}

// ParticipantsPrompt offers to add a batch of athletes to r and asks the
// country of each added athlete.
func (p *Prompter) ParticipantsPrompt(r *setup.Roster) error {
	add, err := p.ConfirmPrompt(fmt.Sprintf("Add %d participants?", setup.DefaultBatchSize), true)
	if err != nil || !add {
		return err
	}
	for _, a := range r.AddBatch(setup.DefaultBatchSize) {
		country, err := p.CountryPrompt(a.Name)
		if err != nil {
			return err
		}
		r.SetCountry(a.ID, country)
	}
	return nil
}

func TranslateKindAbbrevToFull(a byte) athletics.EventKind {
	switch a {
	case 't':
		return athletics.KindTrack
	case 'f':
		return athletics.KindField
	case 'c':
		return athletics.KindCombined
	case 'w':
		return athletics.KindWalk
	case 'm':
		return athletics.KindMarathon
	default:
		return ""
	}
}

// Prompt writes message and returns the next input line, trimmed. Running
// out of input before an answer is an error.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.out, message)
	input, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no answer to %q: %w", strings.TrimSpace(message), io.ErrUnexpectedEOF)
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}
