package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Protoc struct{}

func (Protoc) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "protoc"
	const version = "29.3"

	dispatch := map[types.Platform]string{
		types.PlatformAarch64Darwin: "osx-aarch_64",
		types.PlatformAarch64Linux:  "linux-aarch_64",
		types.PlatformX8664Darwin:   "osx-x86_64",
		types.PlatformX8664Linux:    "linux-x86_64",
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"
pushd ./source/{{name}}
cp -Rv bin include "$ARTIFICER_OUTPUT/."
chmod +x "$ARTIFICER_OUTPUT/bin/protoc"`

	variants := map[types.Platform]types.Variant{}
	for platform, arch := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://github.com/protocolbuffers/protobuf/releases/download/v%s/protoc-%s-%s.zip", version, version, arch),
			},
			Script: script,
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
