package prompt

import (
	"github.com/manifoldco/promptui"
)

// Secret prompts for a sensitive value with masked input.
// An empty result is allowed; callers decide whether the value is required.
func Secret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}

	result, err := prompt.Run()
	return result, wrapError(err)
}
