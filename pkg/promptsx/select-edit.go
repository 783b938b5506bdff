package promptsx

import (
	"fmt"

	"github.com/orochaa/go-clack/core"
	"github.com/orochaa/go-clack/core/validator"
	"github.com/orochaa/go-clack/prompts/symbols"
	"github.com/orochaa/go-clack/prompts/theme"
	"github.com/orochaa/go-clack/third_party/picocolors"
)

type SelectEditParams[TValue comparable] struct {
	Message  string
	Options  []SelectEditOption[TValue]
	EditKey  core.KeyName
	EditHint string
}

// SelectEdit renders a select list where every option carries a shortcut
// key and the cursor row can be sent into an edit flow with the edit key.
func SelectEdit[TValue comparable](params SelectEditParams[TValue]) (EditableValue[TValue], error) {
	v := validator.NewValidator("SelectEdit")
	v.ValidateOptions(len(params.Options))

	var options []*SelectEditOption[TValue]
	for _, option := range params.Options {
		options = append(options, &SelectEditOption[TValue]{
			Label: option.Label,
			Value: option.Value,
			Key:   option.Key,
		})
	}

	p := NewSelectEditPrompt(SelectEditPromptParams[TValue]{
		Options: options,
		EditKey: params.EditKey,
		Render: func(p *SelectEditPrompt[TValue]) string {
			var value string

			switch p.State {
			case core.SubmitState, core.CancelState:
				if p.CursorIndex >= 0 && p.CursorIndex < len(p.Options) {
					value = p.Options[p.CursorIndex].Label
				}
			default:
				lines := make([]string, len(p.Options))

				for i, option := range p.Options {
					key := picocolors.Cyan("[" + option.Key + "]")

					if i == p.CursorIndex {
						radio := picocolors.Green(symbols.RADIO_ACTIVE)
						line := fmt.Sprintf("%s %s %s", radio, key, option.Label)
						if params.EditHint != "" {
							line = fmt.Sprintf("%s %s", line, picocolors.Gray("("+params.EditHint+")"))
						}
						lines[i] = line
					} else {
						radio := picocolors.Dim(symbols.RADIO_INACTIVE)
						lines[i] = fmt.Sprintf("%s %s %s", radio, picocolors.Dim(key), picocolors.Dim(option.Label))
					}
				}

				value = p.LimitLines(lines, 3)
			}

			return theme.ApplyTheme(theme.ThemeParams[EditableValue[TValue]]{
				Context:         p.Prompt,
				Message:         params.Message,
				Value:           params.Options[p.CursorIndex].Label,
				ValueWithCursor: value,
			})
		},
	})

	return p.Run()
}
