package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type Tmux struct {
	Libevent types.ArtifactRef
	Ncurses  types.ArtifactRef
}

func (t Tmux) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	libevent, err := core.ResolveOrBuild(ctx, session, "libevent", t.Libevent, Libevent{})
	if err != nil {
		return "", err
	}
	ncurses, err := core.ResolveOrBuild(ctx, session, "ncurses", t.Ncurses, Ncurses{})
	if err != nil {
		return "", err
	}

	const name = "tmux"
	const version = "3.5a"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://github.com/tmux/tmux/releases/download/%s/tmux-%s.tar.gz", version, version),
	}

	script := `mkdir -pv "$ARTIFICER_OUTPUT"

pushd ./source/{{name}}/tmux-{{version}}

export CPPFLAGS="-I{{libevent}}/include -I{{ncurses}}/include -I{{ncurses}}/include/ncursesw"
export LDFLAGS="-L{{libevent}}/lib -L{{ncurses}}/lib -Wl,-rpath,{{libevent}}/lib -Wl,-rpath,{{ncurses}}/lib"

./configure --disable-utf8proc --prefix="$ARTIFICER_OUTPUT"

make
make install`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("libevent", libevent).
		WithRequirement("ncurses", ncurses).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
