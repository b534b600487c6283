package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Jq struct{}

func (Jq) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "jq"
	const version = "1.8.1"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "macos-arm64",
		types.PlatformAarch64Linux:  "linux-arm64",
		types.PlatformX8664Darwin:   "macos-amd64",
		types.PlatformX8664Linux:    "linux-amd64",
	}

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://github.com/jqlang/jq/releases/download/jq-%s/jq-%s", version, arch),
			},
			Script: fmt.Sprintf(`mkdir -pv "$ARTIFICER_OUTPUT/bin"
cp ./source/{{name}}/jq-%s "$ARTIFICER_OUTPUT/bin/jq"
chmod +x "$ARTIFICER_OUTPUT/bin/jq"`, arch),
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
