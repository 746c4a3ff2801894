package shell

import (
	"strings"
)

// Command is a tokenized line, the first element names the program.
type Command []string

// Tokenize splits line on the space character. Runs of spaces never produce
// empty tokens. Nothing else is special: tabs, quotes and backslashes are
// ordinary characters.
func Tokenize(line string) Command {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' '
	})
}

// String joins the tokens with single spaces.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Clone returns a copy that shares no storage with c.
func (c Command) Clone() Command {
	if c == nil {
		return nil
	}
	return append(Command{}, c...)
}
