package commit

import (
	"regexp"
	"strings"
)

var headerRegex = regexp.MustCompile(`^(?P<type>\w+)(\((?P<scope>[\w\-\.\/]+)\))?(!)?: (?P<description>.+)$`)

// ParseMessage splits a commit message back into its parts. The first
// line is matched against the conventional header syntax; everything
// after the first line becomes the body, with blank edge lines dropped.
// A header that does not match yields a Message with only Description
// and Body set.
func ParseMessage(message string) Message {
	header, rest, _ := strings.Cut(message, "\n")
	body := trimBlankLines(rest)

	match := headerRegex.FindStringSubmatch(header)
	if len(match) == 0 {
		return Message{
			Description: strings.TrimSpace(header),
			Body:        body,
		}
	}

	return Message{
		Type:        match[1],
		Scope:       match[3],
		Breaking:    match[4] != "",
		Description: match[5],
		Body:        body,
	}
}
