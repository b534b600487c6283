package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"artificer/internal/ports"
	"artificer/internal/types"
)

type fakeReader struct {
	plan types.BuildPlan
	err  error
}

func (f fakeReader) ReadPlan() (types.BuildPlan, error) {
	return f.plan, f.err
}

func serviceWithReader(reader fakeReader) Service {
	service := NewService()
	service.NewPlanReader = func(string) ports.PlanReaderPort { return reader }
	return service
}

func TestInspectSummarizesEntries(t *testing.T) {
	service := serviceWithReader(fakeReader{plan: types.BuildPlan{
		Entries: []types.PlanEntry{
			{Ref: "ncurses-aaa", Name: "ncurses", Version: "6.5"},
			{Ref: "tmux-bbb", Name: "tmux", Version: "3.5a", Requires: []types.ArtifactRef{"libevent-ccc", "ncurses-aaa"}},
		},
		Aliases: map[string]types.ArtifactRef{"tmux:3.5a": "tmux-bbb"},
	}})

	result, err := service.Inspect(t.Context(), InspectRequest{OutputDir: "out"})
	require.NoError(t, err)

	want := []InspectEntrySummary{
		{Name: "ncurses", Version: "6.5", Ref: "ncurses-aaa"},
		{Name: "tmux", Version: "3.5a", Ref: "tmux-bbb", Requires: 2},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Fatalf("unexpected entry summaries (-want +got):\n%s", diff)
	}
	require.Equal(t, types.ArtifactRef("tmux-bbb"), result.Aliases["tmux:3.5a"])
}

func TestInspectRequiresOutputDir(t *testing.T) {
	service := serviceWithReader(fakeReader{})

	_, err := service.Inspect(t.Context(), InspectRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestInspectPropagatesReaderError(t *testing.T) {
	readErr := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("build plan not found")
	service := serviceWithReader(fakeReader{err: readErr})

	_, err := service.Inspect(t.Context(), InspectRequest{OutputDir: "out"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
