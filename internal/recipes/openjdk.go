package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Openjdk struct{}

func (Openjdk) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "openjdk"
	const version = "25.0.1"

	// Darwin archives nest the JDK one directory deeper than Linux ones.
	dispatch := map[types.Platform]struct {
		arch  string
		affix string
	}{
		types.PlatformAarch64Darwin: {arch: "macos-aarch64", affix: ".jdk"},
		types.PlatformAarch64Linux:  {arch: "linux-aarch64"},
		types.PlatformX8664Darwin:   {arch: "macos-x64", affix: ".jdk"},
		types.PlatformX8664Linux:    {arch: "linux-x64"},
	}

	variants := map[types.Platform]types.Variant{}
	for platform, entry := range dispatch {
		variants[platform] = types.Variant{
			Source: types.SourceSpec{
				Name: name,
				Path: fmt.Sprintf("https://download.java.net/java/GA/jdk25.0.1/2fbf10d8c78e40bd87641c434705079d/8/GPL/openjdk-%s_%s_bin.tar.gz", version, entry.arch),
			},
			Script: fmt.Sprintf(`pushd ./source/{{name}}/jdk-{{version}}%s
cp -Rv * "$ARTIFICER_OUTPUT/."`, entry.affix),
		}
	}

	return core.NewRecipe(name, version).
		WithVariants(variants).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
