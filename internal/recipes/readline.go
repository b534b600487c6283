package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Readline struct {
	Ncurses types.ArtifactRef
}

func (r Readline) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	ncurses, err := core.ResolveOrBuild(ctx, session, "ncurses", r.Ncurses, Ncurses{})
	if err != nil {
		return "", err
	}

	const name = "readline"
	const version = "8.2"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://ftpmirror.gnu.org/readline/readline-%s.tar.gz", version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"
pushd ./source/{{name}}/{{name}}-{{version}}

export CPPFLAGS="-I{{ncurses}}/include -I{{ncurses}}/include/ncursesw"
export LDFLAGS="-L{{ncurses}}/lib -Wl,-rpath,{{ncurses}}/lib"

./configure \
    --prefix="$ARTIFICER_OUTPUT" \
    --with-curses

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("ncurses", ncurses).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
