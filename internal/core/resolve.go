package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"artificer/internal/types"
)

// Builder is the recipe contract: produce one artifact within a session.
// Every recipe implements it, which lets any recipe serve as the default
// for another recipe's prerequisite slot.
type Builder interface {
	Build(ctx context.Context, session *Session) (types.ArtifactRef, error)
}

// ResolveOrBuild binds one prerequisite slot. A set override is bound
// directly and no build is issued, which is how a caller shares one
// already-built prerequisite across many dependents. Otherwise the slot's
// default builder runs in the same session; the session registry keeps a
// repeated default resolution from submitting the same build twice.
//
// Failures of the default build are wrapped with the slot name and abort
// the owning recipe before its build step is instantiated.
func ResolveOrBuild(ctx context.Context, session *Session, slot string, override types.ArtifactRef, def Builder) (types.ArtifactRef, error) {
	if !override.IsZero() {
		log.Ctx(ctx).Debug().Str("slot", slot).Str("ref", string(override)).Msg("slot bound to caller override")
		return override, nil
	}
	ref, err := def.Build(ctx, session)
	if err != nil {
		return "", NewDependencyFailure(slot, err)
	}
	return ref, nil
}
