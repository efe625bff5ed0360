package lkit

import "fmt"

// SyntaxError reports a malformed form: a missing opening '(', a missing
// or misplaced head token, a malformed literal, or a 'set' form with more
// than one value.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lkit: syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// LookupError reports a head token that doesn't name a registered
// function.
type LookupError struct {
	Pos  Position
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lkit: unknown function %q at %d:%d", e.Name, e.Pos.Line, e.Pos.Column)
}
