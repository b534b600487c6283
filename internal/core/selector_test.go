package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"artificer/internal/types"
)

func TestSelectVariantReturnsAuthoredEntry(t *testing.T) {
	variants := map[types.Platform]types.Variant{
		types.PlatformAarch64Darwin: {
			Source: types.SourceSpec{Name: "tool", Path: "https://example.com/tool-darwin-arm64.tar.gz"},
			Script: "darwin-arm64 script",
		},
		types.PlatformX8664Linux: {
			Source: types.SourceSpec{Name: "tool", Path: "https://example.com/tool-linux-amd64.tar.gz"},
			Script: "linux-amd64 script",
		},
	}

	for platform, want := range variants {
		got, err := SelectVariant("tool", variants, platform)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected variant for %s (-want +got):\n%s", platform, diff)
		}
	}
}

func TestSelectVariantMissingPlatform(t *testing.T) {
	variants := map[types.Platform]types.Variant{
		types.PlatformAarch64Linux: {Script: "linux only"},
		types.PlatformX8664Linux:   {Script: "linux only"},
	}

	_, err := SelectVariant("x", variants, types.PlatformAarch64Darwin)
	require.Error(t, err)
	require.True(t, IsUnsupportedPlatform(err))
	require.Contains(t, err.Error(), "aarch64-darwin")
	require.Contains(t, err.Error(), "x")
}

func TestSelectVariantEmptyMapping(t *testing.T) {
	_, err := SelectVariant("bare", map[types.Platform]types.Variant{}, types.PlatformX8664Linux)
	require.Error(t, err)
	require.True(t, IsUnsupportedPlatform(err))
}
