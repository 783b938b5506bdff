package commit

const (
	// DefaultMaxSubjectLength is the advisory limit for the header line.
	// Exceeding it is never an error, only a warning.
	DefaultMaxSubjectLength = 72

	// DefaultBreakingNote is the footer explanation used when a breaking
	// commit carries no more specific note.
	DefaultBreakingNote = "This commit introduces breaking changes."
)
