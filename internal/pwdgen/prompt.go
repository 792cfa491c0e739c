package pwdgen

import (
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user a yes/no question
type Prompter interface {
	Confirm(label string) (bool, error)
}

// TerminalPrompter asks on stderr so stdout stays clean for generated values
type TerminalPrompter struct{}

func (TerminalPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdout:    os.Stderr,
	}

	v, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(v) == "y", nil
}
