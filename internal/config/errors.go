package config

import (
	"errors"
	"fmt"
)

var errNilConfig = errors.New("config: nil config or empty filename")

var (
	errReadVersion = func(version string, err error) error {
		return fmt.Errorf("config: load version %q: %w", version, err)
	}

	errUnknownVersion = func(version string) error {
		return fmt.Errorf("config: unknown version %q", version)
	}

	errCreateDir = func(dir string, err error) error {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	errWriteFile = func(filename string, err error) error {
		return fmt.Errorf("config: save %s: %w", filename, err)
	}
)
