package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Libksba struct {
	LibgpgError types.ArtifactRef
}

func (l Libksba) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	libgpgError, err := core.ResolveOrBuild(ctx, session, "libgpg-error", l.LibgpgError, LibgpgError{})
	if err != nil {
		return "", err
	}

	const name = "libksba"
	const version = "1.6.7"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://gnupg.org/ftp/gcrypt/libksba/libksba-%s.tar.bz2", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/libksba-{{version}}

export PATH="{{libgpg-error}}/bin:$PATH"
export CPPFLAGS="-I{{libgpg-error}}/include"
export LDFLAGS="-L{{libgpg-error}}/lib -Wl,-rpath,{{libgpg-error}}/lib"

./configure --prefix="$ARTIFICER_OUTPUT" --with-libgpg-error-prefix={{libgpg-error}}

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("libgpg-error", libgpgError).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
