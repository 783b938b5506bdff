package cmd

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/zbiljic/gitexec"
)

var (
	filesToExclude = []string{
		"*.lock*", // yarn.lock, Cargo.lock, Gemfile.lock, Pipfile.lock, etc.
		"go*.sum",
		"package-lock.json",
		"pnpm-lock.yaml",
	}

	excludeFromDiff = slice.FlatMap(filesToExclude, func(i int, s string) []string {
		return []string{":(exclude)" + s}
	})
)

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return string(out), err
	}

	return strings.TrimSpace(string(out)), nil
}

// gitStagedFileNames returns the staged files, lockfiles excluded.
func gitStagedFileNames(path string) ([]string, error) {
	out, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:   path,
		Cached:   true,
		Minimal:  true,
		NameOnly: true,
		Path:     excludeFromDiff,
	})
	if err != nil {
		return []string{}, err
	}

	outString := strings.TrimSpace(string(out))
	if outString == "" {
		return []string{}, nil
	}

	return strings.Split(outString, "\n"), nil
}

func gitCommit(path, message string) error {
	_, err := gitexec.Commit(&gitexec.CommitOptions{
		CmdDir:  path,
		Message: message,
	})
	if err != nil {
		return err
	}

	return nil
}

func gitAddAll(path string) error {
	_, err := gitexec.Add(&gitexec.AddOptions{
		CmdDir: path,
		All:    true,
	})
	if err != nil {
		return err
	}

	return nil
}

// gitStatusShort returns the output of git status in short format.
func gitStatusShort(workDir string) (string, error) {
	out, err := gitexec.Status(&gitexec.StatusOptions{
		CmdDir: workDir,
		Short:  true,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(out), "\n"), nil
}

// gitHeadMessage returns the full commit message of HEAD.
func gitHeadMessage(workDir string) (string, error) {
	out, err := gitexec.Log(&gitexec.LogOptions{
		CmdDir:   workDir,
		MaxCount: 1,
		Format:   "%B",
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
