package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artificer/internal/types"
)

func TestInstantiateScriptBindsSlots(t *testing.T) {
	bindings := []binding{
		{slot: "ncurses", ref: types.ArtifactRef("ncurses-abc123def456")},
		{slot: "readline", ref: types.ArtifactRef("readline-0011223344aa")},
	}
	template := `export CPPFLAGS="-I{{ncurses}}/include -I{{readline}}/include"
pushd ./source/{{name}}/{{name}}-{{version}}`

	script, err := instantiateScript("nnn", "5.1", template, bindings)
	require.NoError(t, err)
	require.Contains(t, script, "$ARTIFICER_ARTIFACTS/ncurses-abc123def456/include")
	require.Contains(t, script, "$ARTIFICER_ARTIFACTS/readline-0011223344aa/include")
	require.Contains(t, script, "./source/nnn/nnn-5.1")
	require.NotContains(t, script, "{{")
}

func TestInstantiateScriptRejectsUnboundSlot(t *testing.T) {
	_, err := instantiateScript("tmux", "3.5a", `-L{{libevent}}/lib`, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "{{libevent}}")
	require.Contains(t, err.Error(), "tmux")
}

func TestInstantiateScriptNoPlaceholders(t *testing.T) {
	script, err := instantiateScript("jq", "1.8.1", `cp jq "$ARTIFICER_OUTPUT/bin/jq"`, nil)
	require.NoError(t, err)
	require.Equal(t, `cp jq "$ARTIFICER_OUTPUT/bin/jq"`, script)
}
