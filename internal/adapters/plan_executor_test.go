package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"artificer/internal/types"
)

func validTestSubmission(name string) types.Submission {
	return types.Submission{
		Name:      name,
		Version:   "1.0.0",
		Script:    `mkdir -pv "$ARTIFICER_OUTPUT"`,
		Platforms: []types.Platform{types.PlatformX8664Linux},
		Aliases:   []string{name + ":1.0.0"},
	}
}

func TestSubmitContentAddressedRef(t *testing.T) {
	sub := validTestSubmission("ncurses")

	first := NewPlanExecutor(t.TempDir())
	second := NewPlanExecutor(t.TempDir())
	refA, err := first.Submit(t.Context(), sub)
	require.NoError(t, err)
	refB, err := second.Submit(t.Context(), sub)
	require.NoError(t, err)

	// Same content, same ref, regardless of which executor saw it.
	require.Equal(t, refA, refB)
	require.True(t, strings.HasPrefix(string(refA), "ncurses-"))
	require.Len(t, strings.TrimPrefix(string(refA), "ncurses-"), refDigestLength)
}

func TestSubmitRefChangesWithContent(t *testing.T) {
	executor := NewPlanExecutor(t.TempDir())

	base := validTestSubmission("jq")
	refA, err := executor.Submit(t.Context(), base)
	require.NoError(t, err)

	changed := validTestSubmission("zsh")
	changed.Script = base.Script + "\nmake install"
	refB, err := executor.Submit(t.Context(), changed)
	require.NoError(t, err)
	require.NotEqual(t,
		strings.TrimPrefix(string(refA), "jq-"),
		strings.TrimPrefix(string(refB), "zsh-"))
}

func TestSubmitRejectsDuplicateName(t *testing.T) {
	executor := NewPlanExecutor(t.TempDir())

	_, err := executor.Submit(t.Context(), validTestSubmission("tmux"))
	require.NoError(t, err)
	_, err = executor.Submit(t.Context(), validTestSubmission("tmux"))
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	require.Len(t, executor.Plan().Entries, 1)
}

func TestSubmitRejectsConflictingAlias(t *testing.T) {
	executor := NewPlanExecutor(t.TempDir())

	_, err := executor.Submit(t.Context(), validTestSubmission("helm"))
	require.NoError(t, err)

	conflicting := validTestSubmission("k9s")
	conflicting.Aliases = []string{"helm:1.0.0"}
	_, err = executor.Submit(t.Context(), conflicting)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	// Rejected submission must leave no trace.
	plan := executor.Plan()
	require.Len(t, plan.Entries, 1)
	require.Len(t, plan.Aliases, 1)
}

func TestSubmitValidation(t *testing.T) {
	executor := NewPlanExecutor(t.TempDir())

	cases := []struct {
		name   string
		mangle func(*types.Submission)
	}{
		{name: "missing name", mangle: func(s *types.Submission) { s.Name = " " }},
		{name: "missing version", mangle: func(s *types.Submission) { s.Version = "" }},
		{name: "missing script", mangle: func(s *types.Submission) { s.Script = "" }},
		{name: "empty platform set", mangle: func(s *types.Submission) { s.Platforms = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validTestSubmission("gpg")
			tc.mangle(&sub)
			_, err := executor.Submit(t.Context(), sub)
			require.Error(t, err)
			require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestRunWritesPlanAndAliasLock(t *testing.T) {
	dir := t.TempDir()
	executor := NewPlanExecutor(dir)

	refA, err := executor.Submit(t.Context(), validTestSubmission("ripgrep"))
	require.NoError(t, err)
	_, err = executor.Submit(t.Context(), validTestSubmission("just"))
	require.NoError(t, err)
	require.NoError(t, executor.Run(t.Context()))

	reader := NewPlanReaderAdapter(dir)
	plan, err := reader.ReadPlan()
	require.NoError(t, err)
	if diff := cmp.Diff(executor.Plan(), plan); diff != "" {
		t.Fatalf("plan roundtrip mismatch (-want +got):\n%s", diff)
	}

	lock, err := os.ReadFile(filepath.Join(dir, "aliases.lock"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(lock)), "\n")
	require.Equal(t, []string{
		"just:1.0.0=" + string(plan.Aliases["just:1.0.0"]),
		"ripgrep:1.0.0=" + string(refA),
	}, lines)
}

func TestRunRejectsEmptyPlan(t *testing.T) {
	executor := NewPlanExecutor(t.TempDir())

	err := executor.Run(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestReadPlanMissing(t *testing.T) {
	reader := NewPlanReaderAdapter(t.TempDir())

	_, err := reader.ReadPlan()
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestReadPlanMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plan.yaml"), []byte("entries: [not: closed"), 0644))

	reader := NewPlanReaderAdapter(dir)
	_, err := reader.ReadPlan()
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
