package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Nnn struct {
	Ncurses   types.ArtifactRef
	PkgConfig types.ArtifactRef
	Readline  types.ArtifactRef
}

func (n Nnn) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	ncurses, err := core.ResolveOrBuild(ctx, session, "ncurses", n.Ncurses, Ncurses{})
	if err != nil {
		return "", err
	}
	pkgConfig, err := core.ResolveOrBuild(ctx, session, "pkg-config", n.PkgConfig, PkgConfig{})
	if err != nil {
		return "", err
	}
	readline, err := core.ResolveOrBuild(ctx, session, "readline", n.Readline, Readline{Ncurses: ncurses})
	if err != nil {
		return "", err
	}

	const name = "nnn"
	const version = "5.1"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://github.com/jarun/nnn/archive/refs/tags/v%s.tar.gz", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/nnn-{{version}}

export PATH="{{pkg-config}}/bin:$PATH"
export CPPFLAGS="-I{{ncurses}}/include -I{{ncurses}}/include/ncursesw -I{{readline}}/include"
export LDFLAGS="-L{{ncurses}}/lib -L{{readline}}/lib -Wl,-rpath,{{ncurses}}/lib -Wl,-rpath,{{readline}}/lib"
export PKG_CONFIG_PATH="{{ncurses}}/lib/pkgconfig:{{readline}}/lib/pkgconfig"

make PREFIX="$ARTIFICER_OUTPUT"
make PREFIX="$ARTIFICER_OUTPUT" install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("ncurses", ncurses).
		WithRequirement("pkg-config", pkgConfig).
		WithRequirement("readline", readline).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
