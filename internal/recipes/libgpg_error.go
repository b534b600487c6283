package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

// LibgpgError is the common error library shared by the whole GnuPG
// family; gpg, libassuan, libgcrypt, and libksba all build against it.
type LibgpgError struct{}

func (LibgpgError) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	const name = "libgpg-error"
	const version = "1.56"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://gnupg.org/ftp/gcrypt/libgpg-error/libgpg-error-%s.tar.bz2", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/libgpg-error-{{version}}

./configure --prefix="$ARTIFICER_OUTPUT"

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
