package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/kommit/kommit/internal/config"
	"github.com/kommit/kommit/pkg/commit"
	"github.com/kommit/kommit/pkg/promptsx"
	"github.com/kommit/kommit/pkg/termio"
)

var commitCmd = &cobra.Command{
	Use: "commit",
	Aliases: []string{
		"c",
		"wizard",
	},
	Short:       "Compose a commit message interactively",
	Long:        `Walks through type, scope, description, body and breaking change prompts, previews the assembled message and creates the commit.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runCommitE,
}

var commitFlags = commitOptions{
	All:    false,
	DryRun: false,
}

func commitAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&commitFlags.All, "all", "a", false, "Automatically stage all changes in tracked files")
	cmd.Flags().BoolVarP(&commitFlags.DryRun, "dry-run", "n", false, "Compose the message without creating a commit")
}

func init() {
	commitAddFlags(commitCmd)

	rootCmd.AddCommand(commitCmd)
}

type commitOptions struct {
	All    bool
	DryRun bool
}

func commitSetup(cmd *cobra.Command) (string, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}

	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	setCommandContextValue(cmd, ctxKeyClackPromptStarted{}, true)

	return resolveGitWorkDir()
}

func commitDetectAndStageFiles(workDir string, all bool) ([]string, error) {
	spinner := prompts.Spinner(prompts.SpinnerOptions{})
	spinner.Start("Detecting staged files")

	files, err := gitStagedFileNames(workDir)
	if err != nil {
		spinner.Stop("Error detecting staged files", 1)
		return nil, err
	}

	if len(files) == 0 && !all {
		spinner.Stop("No staged files detected", 0)

		stageAll, err := prompts.Confirm(prompts.ConfirmParams{
			Message: "No staged changes. Stage all tracked changes?",
		})
		if err != nil {
			return nil, err
		}
		if !stageAll {
			return nil, errors.New("No staged changes to commit") //nolint:staticcheck
		}

		all = true

		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start("Staging files")
	}

	if all {
		if err := gitAddAll(workDir); err != nil {
			spinner.Stop("Error staging files", 1)
			return nil, err
		}

		// Get updated list of staged files after adding all
		files, err = gitStagedFileNames(workDir)
		if err != nil {
			spinner.Stop("Error detecting staged files", 1)
			return nil, err
		}

		if len(files) == 0 {
			spinner.Stop("No changes detected to stage", 0)
			return nil, errors.New("No changes detected to stage") //nolint:staticcheck
		}
	}

	detectedMessage := fmt.Sprintf(
		"Detected %d staged file(s):\n     %s",
		len(files),
		strings.Join(files, "\n     "),
	)

	spinner.Stop(detectedMessage, 0)
	return files, nil
}

// commitTypeOptions returns select options for the type registry, in
// registry order. An out-of-registry current token is offered first so
// editing never silently rewrites it.
func commitTypeOptions(current string) []*prompts.SelectOption[string] {
	var options []*prompts.SelectOption[string]

	if current != "" {
		if _, ok := commit.LookupType(current); !ok {
			options = append(options, &prompts.SelectOption[string]{
				Label: current,
				Value: current,
			})
		}
	}

	options = append(options, slice.FlatMap(commit.Types(), func(_ int, item commit.CommitType) []*prompts.SelectOption[string] {
		return []*prompts.SelectOption[string]{
			{Label: fmt.Sprintf("%-8s %s", item.Token, item.Description), Value: item.Token},
		}
	})...)

	return options
}

func commitPromptDescription(cfg *config.Config, message *commit.Message) (string, error) {
	limit := cfg.SubjectLimit()
	initialValue := ""

	for {
		value, err := prompts.Text(prompts.TextParams{
			Message:      "Enter a description",
			Placeholder:  "<description>",
			InitialValue: initialValue,
			Validate: func(value string) error {
				if strutil.IsBlank(value) {
					return errors.New("please enter a description")
				}
				return nil
			},
		})
		if err != nil {
			return "", err
		}

		header := commit.Message{
			Type:        message.Type,
			Scope:       message.Scope,
			Description: value,
		}.String()

		if len(header) <= limit {
			return value, nil
		}

		promptsx.InfoWithLastLine(fmt.Sprintf(
			"Header is %d characters (recommended at most %d):\n     %s",
			len(header),
			limit,
			header,
		))

		useAnyway, err := prompts.Confirm(prompts.ConfirmParams{
			Message: "Use it anyway?",
		})
		if err != nil {
			return "", err
		}

		if useAnyway {
			return value, nil
		}

		initialValue = value
	}
}

// commitPromptBody collects body lines until the first empty submission.
func commitPromptBody() (string, error) {
	var lines []string

	for {
		line, err := prompts.Text(prompts.TextParams{
			Message:     "Enter a body line (leave empty to finish)",
			Placeholder: "<optional body>",
		})
		if err != nil {
			return "", err
		}

		if strutil.IsBlank(line) {
			break
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func commitComposeMessage(cfg *config.Config) (string, error) {
	termio.FlushInput()

	var message commit.Message

	err := prompts.Workflow(&message).
		Step("Type", func() (any, error) {
			return prompts.Select(prompts.SelectParams[string]{
				Message: "Select the type of change",
				Options: commitTypeOptions(""),
			})
		}).
		Step("Scope", func() (any, error) {
			return prompts.Text(prompts.TextParams{
				Message:     "Enter a scope",
				Placeholder: "<optional scope>",
				Validate:    commit.ValidateScope,
			})
		}).
		Step("Description", func() (any, error) {
			return commitPromptDescription(cfg, &message)
		}).
		Step("Body", func() (any, error) {
			return commitPromptBody()
		}).
		Run()
	if err != nil {
		return "", err
	}

	breaking, err := prompts.Confirm(prompts.ConfirmParams{
		Message: "Does this commit introduce breaking changes?",
	})
	if err != nil {
		return "", err
	}

	message.Breaking = breaking

	if breaking {
		note, err := prompts.Text(prompts.TextParams{
			Message:      "Describe the breaking change",
			Placeholder:  "<optional footer note>",
			InitialValue: cfg.BreakingNote,
		})
		if err != nil {
			return "", err
		}
		message.BreakingNote = note
	}

	return message.Format()
}

func commitHandleMessageSelection(message string) (string, error) {
	for {
		promptsx.Note(message)

		selected, err := promptsx.SelectEdit(promptsx.SelectEditParams[string]{
			Message: fmt.Sprintf("Create this commit? %s", picocolors.Gray("(Ctrl+c to exit)")),
			Options: []promptsx.SelectEditOption[string]{
				{Label: headerLine(message), Value: message, Key: "1"},
			},
			EditHint: "e to edit",
		})
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Commit cancelled")
				return "", nil
			}
			return "", err
		}

		if !selected.Edit {
			return selected.Value, nil
		}

		editedMessage, err := commitEditMessage(selected.Value)
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Commit cancelled")
				return "", nil
			}
			return "", err
		}

		message = editedMessage
	}
}

func commitEditMessage(message string) (string, error) {
	edited := commit.ParseMessage(message)

	err := prompts.Workflow(&edited).
		Step("Type", func() (any, error) {
			return prompts.Select(prompts.SelectParams[string]{
				Message:      "Select a type",
				InitialValue: edited.Type,
				Options:      commitTypeOptions(edited.Type),
			})
		}).
		Step("Scope", func() (any, error) {
			initialValue := edited.Scope
			if edited.Breaking {
				initialValue += "!"
			}
			return prompts.Text(prompts.TextParams{
				Message:      "Enter a scope",
				Placeholder:  "<optional scope>",
				InitialValue: initialValue,
				Validate:     commit.ValidateScope,
			})
		}).
		Step("Description", func() (any, error) {
			return prompts.Text(prompts.TextParams{
				Message:      "Enter a description",
				Placeholder:  "<description>",
				InitialValue: edited.Description,
				Validate: func(value string) error {
					if strutil.IsBlank(value) {
						return errors.New("please enter a description")
					}
					return nil
				},
			})
		}).
		Run()
	if err != nil {
		return "", err
	}

	return edited.Format()
}

func runCommitE(cmd *cobra.Command, args []string) error {
	workDir, err := commitSetup(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !commitFlags.DryRun {
		if _, err := commitDetectAndStageFiles(workDir, commitFlags.All || cfg.AutoStage); err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Commit cancelled")
				return nil
			}
			return err
		}
	}

	formatted, err := commitComposeMessage(cfg)
	if err != nil {
		if prompts.IsCancel(err) {
			prompts.Outro("Commit cancelled")
			return nil
		}
		return err
	}

	message, err := commitHandleMessageSelection(formatted)
	if err != nil {
		return err
	}

	if message == "" {
		// selection loop already closed the session
		return nil
	}

	if commitFlags.DryRun {
		prompts.Outro("Dry run: no commit created")
		return nil
	}

	if err := gitCommit(workDir, message); err != nil {
		return err
	}

	prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green("✔")))

	return nil
}

func isCommitCmd() bool {
	if workDir, err := gitWorkingTreeDir(getWd()); err != nil || workDir == "" {
		return false
	}
	return true
}
