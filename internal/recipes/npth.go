package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Npth struct{}

func (Npth) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "npth"
	const version = "1.8"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://gnupg.org/ftp/gcrypt/npth/npth-%s.tar.bz2", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/npth-{{version}}

./configure --prefix="$ARTIFICER_OUTPUT"

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
