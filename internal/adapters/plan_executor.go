package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/opencontainers/go-digest"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"artificer/internal/types"
)

const refDigestLength = 12

// PlanExecutor is the build executor boundary used by this repository:
// it collects accepted submissions into a content-addressed build plan
// and, on Run, writes the plan for the external runner that performs the
// actual fetching, sandboxed execution, and caching.
type PlanExecutor struct {
	Dir string

	entries []types.PlanEntry
	names   map[string]types.ArtifactRef
	aliases map[string]types.ArtifactRef
}

func NewPlanExecutor(dir string) *PlanExecutor {
	return &PlanExecutor{
		Dir:     dir,
		names:   map[string]types.ArtifactRef{},
		aliases: map[string]types.ArtifactRef{},
	}
}

// Submit validates and queues one build. The returned ref is derived from
// the submission's content, so identical submissions always map to the
// same ref. Submission is atomic: on any error nothing is registered.
func (e *PlanExecutor) Submit(_ context.Context, sub types.Submission) (types.ArtifactRef, error) {
	if err := validateSubmission(sub); err != nil {
		return "", err
	}
	if prior, ok := e.names[sub.Name]; ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("artifact %s already submitted as %s", sub.Name, prior))
	}

	ref := submissionRef(sub)
	for _, alias := range sub.Aliases {
		if bound, ok := e.aliases[alias]; ok && bound != ref {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("alias %s already bound to %s", alias, bound))
		}
	}

	e.names[sub.Name] = ref
	for _, alias := range sub.Aliases {
		e.aliases[alias] = ref
	}
	e.entries = append(e.entries, types.PlanEntry{
		Ref:          ref,
		Name:         sub.Name,
		Version:      sub.Version,
		Requires:     sub.Requires,
		Source:       sub.Source,
		Script:       sub.Script,
		Platforms:    sub.Platforms,
		Environments: sub.Environments,
		Aliases:      sub.Aliases,
	})
	return ref, nil
}

// Run writes plan.yaml and aliases.lock to the output directory.
func (e *PlanExecutor) Run(ctx context.Context) error {
	if len(e.entries) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("build plan is empty")
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create plan output directory").
			WithCause(err)
	}

	plan := e.Plan()
	encoded, err := yaml.Marshal(plan)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode build plan").
			WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(e.Dir, "plan.yaml"), encoded, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write build plan").
			WithCause(err)
	}
	if err := e.writeAliasLock(); err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Int("entries", len(plan.Entries)).
		Str("dir", e.Dir).
		Msg("build plan written")
	return nil
}

// Plan returns the accumulated build plan.
func (e *PlanExecutor) Plan() types.BuildPlan {
	aliases := make(map[string]types.ArtifactRef, len(e.aliases))
	for alias, ref := range e.aliases {
		aliases[alias] = ref
	}
	return types.BuildPlan{
		Entries: append([]types.PlanEntry(nil), e.entries...),
		Aliases: aliases,
	}
}

func (e *PlanExecutor) writeAliasLock() error {
	aliases := make([]string, 0, len(e.aliases))
	for alias := range e.aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	var lines []string
	for _, alias := range aliases {
		lines = append(lines, fmt.Sprintf("%s=%s", alias, e.aliases[alias]))
	}
	path := filepath.Join(e.Dir, "aliases.lock")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write alias lock").
			WithCause(err)
	}
	return nil
}

func validateSubmission(sub types.Submission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return invalidSubmission("name is required")
	}
	if strings.TrimSpace(sub.Version) == "" {
		return invalidSubmission("version is required")
	}
	if strings.TrimSpace(sub.Script) == "" {
		return invalidSubmission("script is required")
	}
	if len(sub.Platforms) == 0 {
		return invalidSubmission("platform set must not be empty")
	}
	return nil
}

func invalidSubmission(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid submission: " + msg)
}

// submissionRef derives the content-addressed ref: the artifact name plus
// a truncated sha256 over the canonical submission encoding.
func submissionRef(sub types.Submission) types.ArtifactRef {
	var canonical strings.Builder
	canonical.WriteString(sub.Name)
	canonical.WriteString("\n")
	canonical.WriteString(sub.Version)
	canonical.WriteString("\n")
	for _, ref := range sub.Requires {
		canonical.WriteString(string(ref))
		canonical.WriteString("\n")
	}
	canonical.WriteString(sub.Source.Name)
	canonical.WriteString("\n")
	canonical.WriteString(sub.Source.Path)
	canonical.WriteString("\n")
	for _, include := range sub.Source.Includes {
		canonical.WriteString(include)
		canonical.WriteString("\n")
	}
	canonical.WriteString(sub.Script)
	canonical.WriteString("\n")
	for _, platform := range sub.Platforms {
		canonical.WriteString(string(platform))
		canonical.WriteString("\n")
	}
	for _, env := range sub.Environments {
		canonical.WriteString(env)
		canonical.WriteString("\n")
	}

	sum := digest.FromString(canonical.String())
	return types.ArtifactRef(fmt.Sprintf("%s-%s", sub.Name, sum.Encoded()[:refDigestLength]))
}
