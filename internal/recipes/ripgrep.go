package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Ripgrep struct{}

func (Ripgrep) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "ripgrep"
	const version = "14.1.1"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "aarch64-apple-darwin",
		types.PlatformAarch64Linux:  "aarch64-unknown-linux-gnu",
		types.PlatformX8664Darwin:   "x86_64-apple-darwin",
		types.PlatformX8664Linux:    "x86_64-unknown-linux-musl",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"
pushd ./source/{{name}}
cp */rg "$ARTIFICER_OUTPUT/bin/rg"
chmod +x "$ARTIFICER_OUTPUT/bin/rg"`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://github.com/BurntSushi/ripgrep/releases/download/%s/ripgrep-%s-%s.tar.gz", version, version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
