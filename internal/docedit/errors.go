// Package docedit implements the document mutation operations behind the
// tool catalog: index-addressed paragraph edits, find and replace, tables,
// images, styles, sections and batch assembly. Every operation validates
// before it mutates and reports failures as *Error values carrying a
// machine-readable kind.
package docedit

import "fmt"

// Kind classifies an operation failure. Callers branch on kind, not on
// message text.
type Kind string

const (
	KindMissingDependency Kind = "missing_dependency"
	KindNotFound          Kind = "not_found"
	KindRange             Kind = "range"
	KindInvalidParameter  Kind = "invalid_parameter"
	KindDuplicateName     Kind = "duplicate_name"
	KindStyleNotFound     Kind = "style_not_found"
	KindExternalProcess   Kind = "external_process"
	KindIO                Kind = "io"
)

// Error is a classified operation failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from an error, defaulting to io for
// unclassified errors.
func KindOf(err error) Kind {
	if de, ok := err.(*Error); ok {
		return de.Kind
	}
	return KindIO
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapIO(msg string, err error) *Error {
	return &Error{Kind: KindIO, Message: msg, Err: err}
}
