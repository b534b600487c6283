package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Zsh struct {
	Ncurses types.ArtifactRef
}

func (z Zsh) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	ncurses, err := core.ResolveOrBuild(ctx, session, "ncurses", z.Ncurses, Ncurses{})
	if err != nil {
		return "", err
	}

	const name = "zsh"
	const version = "5.9"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://downloads.sourceforge.net/project/zsh/zsh/%s/zsh-%s.tar.xz", version, version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/zsh-{{version}}

export CFLAGS="-Wno-incompatible-pointer-types"
export CPPFLAGS="-I{{ncurses}}/include -I{{ncurses}}/include/ncursesw"
export LDFLAGS="-L{{ncurses}}/lib -Wl,-rpath,{{ncurses}}/lib"

./configure --prefix="$ARTIFICER_OUTPUT"

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("ncurses", ncurses).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
