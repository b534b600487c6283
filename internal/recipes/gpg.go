package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

// Gpg builds GnuPG against the five support libraries it links with.
// Slots resolve in declaration order so that libgpg-error, once bound,
// feeds the default builds of the remaining libraries.
type Gpg struct {
	LibgpgError types.ArtifactRef
	Libassuan   types.ArtifactRef
	Libgcrypt   types.ArtifactRef
	Libksba     types.ArtifactRef
	Npth        types.ArtifactRef
}

func (g Gpg) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	libgpgError, err := core.ResolveOrBuild(ctx, session, "libgpg-error", g.LibgpgError, LibgpgError{})
	if err != nil {
		return "", err
	}
	libassuan, err := core.ResolveOrBuild(ctx, session, "libassuan", g.Libassuan, Libassuan{LibgpgError: libgpgError})
	if err != nil {
		return "", err
	}
	libgcrypt, err := core.ResolveOrBuild(ctx, session, "libgcrypt", g.Libgcrypt, Libgcrypt{LibgpgError: libgpgError})
	if err != nil {
		return "", err
	}
	libksba, err := core.ResolveOrBuild(ctx, session, "libksba", g.Libksba, Libksba{LibgpgError: libgpgError})
	if err != nil {
		return "", err
	}
	npth, err := core.ResolveOrBuild(ctx, session, "npth", g.Npth, Npth{})
	if err != nil {
		return "", err
	}

	const name = "gpg"
	const version = "2.5.16"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://gnupg.org/ftp/gcrypt/gnupg/gnupg-%s.tar.bz2", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/gnupg-{{version}}

export PATH="{{libgpg-error}}/bin:{{npth}}/bin:{{libgcrypt}}/bin:{{libassuan}}/bin:{{libksba}}/bin:$PATH"
export PKG_CONFIG_PATH="{{libgpg-error}}/lib/pkgconfig:{{npth}}/lib/pkgconfig:{{libgcrypt}}/lib/pkgconfig:{{libassuan}}/lib/pkgconfig:{{libksba}}/lib/pkgconfig"
export CPPFLAGS="-I{{libgpg-error}}/include -I{{npth}}/include -I{{libgcrypt}}/include -I{{libassuan}}/include -I{{libksba}}/include"
export LDFLAGS="-L{{libgpg-error}}/lib -L{{npth}}/lib -L{{libgcrypt}}/lib -L{{libassuan}}/lib -L{{libksba}}/lib -Wl,-rpath,{{libgpg-error}}/lib -Wl,-rpath,{{npth}}/lib -Wl,-rpath,{{libgcrypt}}/lib -Wl,-rpath,{{libassuan}}/lib -Wl,-rpath,{{libksba}}/lib"

./configure \
    --prefix="$ARTIFICER_OUTPUT" \
    --with-libgpg-error-prefix={{libgpg-error}} \
    --with-npth-prefix={{npth}} \
    --with-libgcrypt-prefix={{libgcrypt}} \
    --with-libassuan-prefix={{libassuan}} \
    --with-ksba-prefix={{libksba}} \
    --disable-doc

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("libgpg-error", libgpgError).
		WithRequirement("libassuan", libassuan).
		WithRequirement("libgcrypt", libgcrypt).
		WithRequirement("libksba", libksba).
		WithRequirement("npth", npth).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
