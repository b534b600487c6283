package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"artificer/internal/ports"
	"artificer/internal/types"
)

type fakeExecutor struct {
	submissions []types.Submission
	ran         bool
	runErr      error
}

func (f *fakeExecutor) Submit(_ context.Context, sub types.Submission) (types.ArtifactRef, error) {
	f.submissions = append(f.submissions, sub)
	return types.ArtifactRef(fmt.Sprintf("%s-%06d", sub.Name, len(f.submissions))), nil
}

func (f *fakeExecutor) Run(_ context.Context) error {
	f.ran = true
	return f.runErr
}

func newFakeService(executor *fakeExecutor) Service {
	service := NewService()
	service.NewExecutor = func(string) ports.ExecutorPort { return executor }
	return service
}

func TestComposeFullCatalog(t *testing.T) {
	executor := &fakeExecutor{}
	service := newFakeService(executor)

	result, err := service.Compose(t.Context(), ComposeRequest{
		Platform:  "aarch64-darwin",
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.True(t, executor.ran)
	require.Equal(t, "dev", result.Project)
	require.Equal(t, types.PlatformAarch64Darwin, result.Platform)

	// Dev environment plus its two toolchains, ten shared prerequisites,
	// eleven top-level tools. Shared libraries must appear exactly once.
	require.Len(t, executor.submissions, 24)
	require.Equal(t, 21, result.Artifacts)

	seen := map[string]int{}
	for _, sub := range executor.submissions {
		seen[sub.Name]++
		require.NotEmpty(t, sub.Script, sub.Name)
		require.NotContains(t, sub.Script, "{{", sub.Name)
	}
	for name, count := range seen {
		require.Equal(t, 1, count, name)
	}
	for _, name := range []string{"protoc", "go-toolchain", "dev", "libgpg-error", "ncurses", "gpg", "tmux", "zsh"} {
		require.Contains(t, seen, name)
	}
}

func TestComposeRunsOnEveryPlatform(t *testing.T) {
	for _, platform := range types.DefaultPlatforms {
		t.Run(platform.String(), func(t *testing.T) {
			executor := &fakeExecutor{}
			service := newFakeService(executor)

			_, err := service.Compose(t.Context(), ComposeRequest{
				Platform:  platform.String(),
				OutputDir: t.TempDir(),
			})
			require.NoError(t, err)
		})
	}
}

func TestComposeProjectNamesDevEnv(t *testing.T) {
	executor := &fakeExecutor{}
	service := newFakeService(executor)

	result, err := service.Compose(t.Context(), ComposeRequest{
		Platform:  "x86_64-linux",
		OutputDir: t.TempDir(),
		Project:   "payments",
	})
	require.NoError(t, err)
	require.Equal(t, "payments", result.Project)
	require.True(t, strings.HasPrefix(string(result.DevEnv), "payments-"))

	var devEnvSub types.Submission
	for _, sub := range executor.submissions {
		if sub.Name == "payments" {
			devEnvSub = sub
		}
	}
	require.Equal(t, "payments", devEnvSub.Name)
	require.Contains(t, devEnvSub.Aliases, "payments:latest")
}

func TestComposeRejectsMissingOutput(t *testing.T) {
	service := newFakeService(&fakeExecutor{})

	_, err := service.Compose(t.Context(), ComposeRequest{Platform: "x86_64-linux"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestComposeRejectsUnknownPlatform(t *testing.T) {
	executor := &fakeExecutor{}
	service := newFakeService(executor)

	_, err := service.Compose(t.Context(), ComposeRequest{
		Platform:  "mips-plan9",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	require.Empty(t, executor.submissions)
}

func TestComposeThenInspect(t *testing.T) {
	dir := t.TempDir()
	service := NewService()

	result, err := service.Compose(t.Context(), ComposeRequest{
		Platform:  "aarch64-linux",
		OutputDir: dir,
	})
	require.NoError(t, err)

	inspected, err := service.Inspect(t.Context(), InspectRequest{OutputDir: dir})
	require.NoError(t, err)
	require.Len(t, inspected.Entries, 24)
	require.Equal(t, result.DevEnv, inspected.Aliases["dev:latest"])

	names := map[string]bool{}
	for _, entry := range inspected.Entries {
		names[entry.Name] = true
	}
	require.True(t, names["gpg"])
	require.True(t, names["openapi-generator-cli"])
}
