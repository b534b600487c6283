package recipes

import (
	"context"
	"fmt"

	"artificer/internal/core"
	"artificer/internal/types"
)

type OpenAPIGeneratorCLI struct {
	Openjdk types.ArtifactRef
}

func (o OpenAPIGeneratorCLI) Build(ctx context.Context, session *core.Session) (types.ArtifactRef, error) {
	openjdk, err := core.ResolveOrBuild(ctx, session, "openjdk", o.Openjdk, Openjdk{})
	if err != nil {
		return "", err
	}

	const name = "openapi-generator-cli"
	const version = "7.18.0"

	source := types.SourceSpec{
		Name: name,
		Path: fmt.Sprintf("https://repo1.maven.org/maven2/org/openapitools/openapi-generator-cli/%s/openapi-generator-cli-%s.jar", version, version),
	}

	script := `mkdir -p "$ARTIFICER_OUTPUT/bin"

pushd ./source/{{name}}

cp META-INF/MANIFEST.MF ../MANIFEST.MF

jar cfm ../openapi-generator-cli.jar ../MANIFEST.MF .

mv -v ../openapi-generator-cli.jar "$ARTIFICER_OUTPUT/openapi-generator-cli.jar"

cat << 'EOF' > "$ARTIFICER_OUTPUT/bin/openapi-generator-cli"
#!/bin/sh
JAVA_HOME={{openjdk}}/Contents/Home
PATH=$JAVA_HOME/bin:$PATH
java -jar "$ARTIFICER_OUTPUT/openapi-generator-cli.jar" "$@"
EOF

chmod +x "$ARTIFICER_OUTPUT/bin/openapi-generator-cli"`

	return core.NewRecipe(name, version).
		WithVariantFor(types.DefaultPlatforms, types.Variant{Source: source, Script: script}).
		WithRequirement("openjdk", openjdk).
		WithEnvironments(
			fmt.Sprintf("JAVA_HOME=%s/Contents/Home", openjdk.Dir()),
			"PATH=$JAVA_HOME/bin:$PATH",
		).
		WithAliases(name + ":" + version).
		Build(ctx, session)
}
