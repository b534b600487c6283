package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"artificer/internal/types"
)

// binding is a prerequisite slot bound to an artifact ref, in the order
// the owning recipe resolved it.
type binding struct {
	slot string
	ref  types.ArtifactRef
}

// Recipe assembles one build submission: identity, per-platform variants,
// bound prerequisite slots, and the alias and environment payload. Recipes
// configure it fluently and finish with Build, which selects the session
// platform's variant, instantiates the script, and submits.
type Recipe struct {
	name         string
	version      string
	variants     map[types.Platform]types.Variant
	bindings     []binding
	environments []string
	aliases      []string
}

func NewRecipe(name, version string) *Recipe {
	return &Recipe{
		name:     name,
		version:  version,
		variants: map[types.Platform]types.Variant{},
	}
}

// WithVariant registers the variant authored for one platform.
func (r *Recipe) WithVariant(platform types.Platform, variant types.Variant) *Recipe {
	r.variants[platform] = variant
	return r
}

// WithVariants registers a full platform-to-variant mapping, the shape
// used by recipes whose source location differs per platform.
func (r *Recipe) WithVariants(variants map[types.Platform]types.Variant) *Recipe {
	for platform, variant := range variants {
		r.variants[platform] = variant
	}
	return r
}

// WithVariantFor registers one variant for every listed platform, the
// shape used by source-built recipes whose script is platform-independent.
func (r *Recipe) WithVariantFor(platforms []types.Platform, variant types.Variant) *Recipe {
	for _, platform := range platforms {
		r.variants[platform] = variant
	}
	return r
}

// WithRequirement binds a resolved prerequisite slot. Bindings are kept
// in call order and become the submission's declared input list; the
// script template's {{slot}} placeholder is replaced by the ref's store
// path.
func (r *Recipe) WithRequirement(slot string, ref types.ArtifactRef) *Recipe {
	r.bindings = append(r.bindings, binding{slot: slot, ref: ref})
	return r
}

// WithEnvironments adds environment variables exported to consumers of
// the artifact.
func (r *Recipe) WithEnvironments(environments ...string) *Recipe {
	r.environments = append(r.environments, environments...)
	return r
}

// WithAliases registers alias strings against the returned ref.
func (r *Recipe) WithAliases(aliases ...string) *Recipe {
	r.aliases = append(r.aliases, aliases...)
	return r
}

// Build turns the recipe into exactly one executor submission and returns
// the artifact ref, except when the session already issued a build for
// the same name, version, and platform, in which case the previously
// obtained ref is returned and nothing is submitted. Either a valid ref
// is returned or an error, and no registration survives a failed submit.
func (r *Recipe) Build(ctx context.Context, session *Session) (types.ArtifactRef, error) {
	assert.NotEmpty(ctx, r.name, "recipe name must be set")
	assert.NotEmpty(ctx, r.version, "recipe version must be set")

	key := buildKey(r.name, r.version, session.Platform())
	if ref, ok := session.resolved(key); ok {
		log.Ctx(ctx).Debug().Str("artifact", r.name).Str("ref", string(ref)).Msg("reusing artifact built earlier in session")
		return ref, nil
	}

	variant, err := SelectVariant(r.name, r.variants, session.Platform())
	if err != nil {
		return "", err
	}

	script, err := instantiateScript(r.name, r.version, variant.Script, r.bindings)
	if err != nil {
		return "", err
	}

	requires := make([]types.ArtifactRef, 0, len(r.bindings))
	for _, bound := range r.bindings {
		requires = append(requires, bound.ref)
	}

	ref, err := session.executor.Submit(ctx, types.Submission{
		Name:         r.name,
		Version:      r.version,
		Requires:     requires,
		Source:       variant.Source,
		Script:       script,
		Platforms:    r.platformSet(),
		Environments: r.environments,
		Aliases:      r.aliases,
	})
	if err != nil {
		return "", NewSubmissionFailure(r.name, err)
	}

	session.remember(key, ref)
	log.Ctx(ctx).Info().
		Str("artifact", r.name).
		Str("version", r.version).
		Str("ref", string(ref)).
		Msg("artifact queued")
	return ref, nil
}

// platformSet returns the variant mapping's keys in stable order; this is
// the target-platform set declared on the submission.
func (r *Recipe) platformSet() []types.Platform {
	platforms := make([]types.Platform, 0, len(r.variants))
	for platform := range r.variants {
		platforms = append(platforms, platform)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })
	return platforms
}
