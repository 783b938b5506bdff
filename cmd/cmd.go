package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isNotTerminal defines if the output is going into terminal or not.
// It's dynamically set to false or true based on the stdout's file
// descriptor referring to a terminal or not.
var isNotTerminal = os.Getenv("TERM") == "dumb" ||
	(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

// requireTerminal guards interactive flows. Non-interactive commands
// stay usable in pipes and CI.
func requireTerminal() error {
	if isNotTerminal {
		return errors.New("not a terminal")
	}
	return nil
}

// getWd is a convenience method to get the working directory.
func getWd() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error getting working directory: %s", err.Error())
		cobra.CheckErr(err)
	}

	return dir
}
