package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type GoToolchain struct{}

func (GoToolchain) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "go-toolchain"
	const version = "1.25.3"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "darwin-arm64",
		types.PlatformAarch64Linux:  "linux-arm64",
		types.PlatformX8664Darwin:   "darwin-amd64",
		types.PlatformX8664Linux:    "linux-amd64",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"
pushd ./source/{{name}}/go
cp -Rv * "$ARTIFICER_OUTPUT/."`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://go.dev/dl/go%s.%s.tar.gz", version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
