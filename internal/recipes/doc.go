// Package recipes holds the artifact catalog: one declarative build
// description per third-party tool or library, pinned to a hand-picked
// version. Every recipe is a struct implementing core.Builder whose
// exported fields are optional prerequisite overrides; leave a field
// unset and the recipe builds that prerequisite itself, set it and the
// caller-supplied artifact is used instead.
package recipes
