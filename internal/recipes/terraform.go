package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Terraform struct{}

func (Terraform) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "terraform"
	const version = "1.13.1"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "darwin_arm64",
		types.PlatformAarch64Linux:  "linux_arm64",
		types.PlatformX8664Darwin:   "darwin_amd64",
		types.PlatformX8664Linux:    "linux_amd64",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"
pushd ./source/{{name}}
cp terraform "$ARTIFICER_OUTPUT/bin/terraform"
chmod +x "$ARTIFICER_OUTPUT/bin/terraform"`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://releases.hashicorp.com/terraform/%s/terraform_%s_%s.zip", version, version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
