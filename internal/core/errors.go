package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artificer/internal/types"
)

// Error message prefixes, checked alongside errbuilder codes so callers
// (and the CLI exit-code mapping) can tell the failure classes apart.
const (
	msgUnsupportedPlatform = "unsupported platform"
	msgDependencyFailure   = "dependency resolution failed"
	msgSubmissionFailure   = "build submission failed"
)

// NewUnsupportedPlatform reports that a recipe carries no variant for the
// session's platform. Fatal for that recipe only.
func NewUnsupportedPlatform(name string, platform types.Platform) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s %s for artifact %s", msgUnsupportedPlatform, platform, name))
}

// NewDependencyFailure reports that a prerequisite slot could not be
// bound. The originating error is attached as the cause and the failure
// propagates to whoever requested the owning recipe.
func NewDependencyFailure(slot string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s for slot %s", msgDependencyFailure, slot)).
		WithCause(cause)
}

// NewSubmissionFailure reports that the executor rejected or failed a
// build submission. Not retried here; retry policy belongs to the executor.
func NewSubmissionFailure(name string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s for artifact %s", msgSubmissionFailure, name)).
		WithCause(cause)
}

func newUnresolvedPlaceholder(name, token string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("unresolved placeholder %s in script for artifact %s", token, name))
}

func IsUnsupportedPlatform(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition &&
		strings.HasPrefix(MessageOf(err), msgUnsupportedPlatform)
}

func IsDependencyFailure(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition &&
		strings.HasPrefix(MessageOf(err), msgDependencyFailure)
}

func IsSubmissionFailure(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeInternal &&
		strings.HasPrefix(MessageOf(err), msgSubmissionFailure)
}

// MessageOf returns the errbuilder message when err carries one, falling
// back to err.Error().
func MessageOf(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
