package types

// ArtifactRef identifies the eventual output tree of one queued build.
// Refs are opaque values handed out by the executor; they are copied
// freely and never mutated. The zero value means "not bound yet" and is
// how a recipe's optional prerequisite overrides are left unset.
type ArtifactRef string

func (r ArtifactRef) IsZero() bool {
	return r == ""
}

// Dir returns the store path expression for the artifact's output tree,
// suitable for interpolation into a dependent build script. The executor
// materializes every declared prerequisite under $ARTIFICER_ARTIFACTS
// before running the script.
func (r ArtifactRef) Dir() string {
	return "$ARTIFICER_ARTIFACTS/" + string(r)
}

// SourceSpec describes the source material fetched before a build step
// runs. Path is a URL or a path relative to the project root; Includes
// optionally restricts a path source to an allowlist of files. The zero
// value means the recipe has no source (its script fetches or generates
// everything itself).
type SourceSpec struct {
	Name     string   `yaml:"name"`
	Path     string   `yaml:"path"`
	Includes []string `yaml:"includes,omitempty"`
}

func (s SourceSpec) IsZero() bool {
	return s.Name == "" && s.Path == "" && len(s.Includes) == 0
}

// Variant holds the platform-specific half of a recipe: where to fetch
// source material and the build-script template that turns it into an
// installed output tree. Script templates use {{slot}} placeholders for
// prerequisite store paths, plus {{name}} and {{version}}.
type Variant struct {
	Source SourceSpec
	Script string
}

// Submission is one fully assembled build handed to the executor:
// identity, declared prerequisite refs in resolution order, source
// descriptor, the instantiated script (no unresolved placeholders), the
// platform set the artifact is valid for, environment variables exported
// to consumers, and alias strings to register against the returned ref.
type Submission struct {
	Name         string
	Version      string
	Requires     []ArtifactRef
	Source       SourceSpec
	Script       string
	Platforms    []Platform
	Environments []string
	Aliases      []string
}
