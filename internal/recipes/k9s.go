package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type K9s struct{}

func (K9s) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "k9s"
	const version = "0.50.18"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "Darwin_arm64",
		types.PlatformAarch64Linux:  "Linux_arm64",
		types.PlatformX8664Darwin:   "Darwin_amd64",
		types.PlatformX8664Linux:    "Linux_amd64",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"
pushd ./source/{{name}}
cp k9s "$ARTIFICER_OUTPUT/bin/k9s"
chmod +x "$ARTIFICER_OUTPUT/bin/k9s"`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://github.com/derailed/k9s/releases/download/v%s/k9s_%s.tar.gz", version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
