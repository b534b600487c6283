package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type PkgConfig struct{}

func (PkgConfig) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "pkg-config"
	const version = "0.29.2"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://pkgconfig.freedesktop.org/releases/pkg-config-%s.tar.gz", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"

pushd ./source/{{name}}/pkg-config-{{version}}

CFLAGS="-Wno-error=int-conversion" ./configure --prefix=$ARTIFICER_OUTPUT --with-internal-glib

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
