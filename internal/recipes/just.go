package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Just struct{}

func (Just) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "just"
	const version = "1.45.0"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "aarch64-apple-darwin",
		types.PlatformAarch64Linux:  "aarch64-unknown-linux-musl",
		types.PlatformX8664Darwin:   "x86_64-apple-darwin",
		types.PlatformX8664Linux:    "x86_64-unknown-linux-musl",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"
pushd ./source/{{name}}
cp just "$ARTIFICER_OUTPUT/bin/just"`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://github.com/casey/just/releases/download/%s/just-%s-%s.tar.gz", version, version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
