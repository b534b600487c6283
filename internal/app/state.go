package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// composeState tracks the composer through one run. No state may be
// skipped; queueing repeats once per recipe, and the first failure parks
// the composer in stateFailed for good.
type composeState int

const (
	stateEmpty composeState = iota
	stateDevEnvBuilt
	stateArtifactsQueued
	stateSubmitted
	stateFailed
)

var stateNames = map[composeState]string{
	stateEmpty:           "empty",
	stateDevEnvBuilt:     "dev-env-built",
	stateArtifactsQueued: "artifacts-queued",
	stateSubmitted:       "submitted",
	stateFailed:          "failed",
}

func (s composeState) String() string {
	return stateNames[s]
}

type composer struct {
	state  composeState
	queued int
}

func newComposer() *composer {
	return &composer{state: stateEmpty}
}

// advance moves the composer to next, rejecting transitions the state
// machine does not allow.
func (c *composer) advance(next composeState) error {
	allowed := false
	switch next {
	case stateDevEnvBuilt:
		allowed = c.state == stateEmpty
	case stateArtifactsQueued:
		allowed = c.state == stateDevEnvBuilt || c.state == stateArtifactsQueued
	case stateSubmitted:
		allowed = c.state == stateArtifactsQueued
	}
	if !allowed {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("invalid composer transition %s -> %s", c.state, next))
	}
	if next == stateArtifactsQueued {
		c.queued++
	}
	c.state = next
	return nil
}

// fail parks the composer; no further transition is valid afterwards.
func (c *composer) fail() {
	c.state = stateFailed
}
