package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Ncurses struct{}

func (Ncurses) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "ncurses"
	const version = "6.5"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://invisible-island.net/archives/ncurses/ncurses-%s.tar.gz", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"
pushd ./source/{{name}}/{{name}}-{{version}}
./configure \
    --enable-pc-files \
    --prefix="$ARTIFICER_OUTPUT" \
    --with-pkg-config-libdir="$ARTIFICER_OUTPUT/lib/pkgconfig" \
    --with-shared \
    --with-termlib
make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
