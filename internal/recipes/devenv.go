package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

// DevEnv assembles the project development environment: a single
// artifact carrying the toolchain pair every contributor needs, plus the
// environment variables that put both on the path. Name defaults to
// "dev" and Platforms to the full supported set.
type DevEnv struct {
	Name        string
	Platforms   []types.Platform
	Protoc      types.ArtifactRef
	GoToolchain types.ArtifactRef
}

func (d DevEnv) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	protoc, err := core.ResolveOrBuild(ctx, session, "protoc", d.Protoc, Protoc{})
	if err != nil {
		return "", err
	}
	goToolchain, err := core.ResolveOrBuild(ctx, session, "go-toolchain", d.GoToolchain, GoToolchain{})
	if err != nil {
		return "", err
	}

	name := d.Name
	if name == "" {
		name = "dev"
	}
	platforms := d.Platforms
	if len(platforms) == 0 {
		platforms = types.DefaultPlatforms
	}
	const version = "latest"

	script := `mkdir -pv "$ARTIFICER_OUTPUT/bin"

cat << 'EOF' > "$ARTIFICER_OUTPUT/bin/activate"
export GOROOT={{go-toolchain}}
export PATH={{go-toolchain}}/bin:{{protoc}}/bin:$PATH
EOF

chmod +x "$ARTIFICER_OUTPUT/bin/activate"`

	return core.NewRecipe(name, version).
		WithVariantFor(platforms, types.Variant{Script: script}).
		WithRequirement("protoc", protoc).
		WithRequirement("go-toolchain", goToolchain).
		WithEnvironments(
			fmt.Sprintf("GOROOT=%s", goToolchain.Dir()),
			fmt.Sprintf("PATH=%s/bin:%s/bin:$PATH", goToolchain.Dir(), protoc.Dir()),
		).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
