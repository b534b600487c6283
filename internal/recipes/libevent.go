package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Libevent struct{}

func (Libevent) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "libevent"
	const version = "2.1.12"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://github.com/libevent/libevent/releases/download/release-%s-stable/libevent-%s-stable.tar.gz", version, version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"
pushd ./source/{{name}}/{{name}}-{{version}}-stable
./configure \
    --disable-openssl \
    --enable-shared \
    --prefix="$ARTIFICER_OUTPUT"
make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
