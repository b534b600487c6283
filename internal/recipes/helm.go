package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Helm struct{}

func (Helm) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "helm"
	const version = "4.0.4"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "darwin-arm64",
		types.PlatformAarch64Linux:  "linux-arm64",
		types.PlatformX8664Darwin:   "darwin-amd64",
		types.PlatformX8664Linux:    "linux-amd64",
	}

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://get.helm.sh/helm-v%s-%s.tar.gz", version, arch),
			},
			Script: fmt.Sprintf(`mkdir -pv "$ARTIFICER_OUTPUT/bin"
pushd ./source/{{name}}/%s
cp helm "$ARTIFICER_OUTPUT/bin/helm"
chmod +x "$ARTIFICER_OUTPUT/bin/helm"`, arch),
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
