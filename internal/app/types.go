package app

import "artificer/internal/types"

type ComposeRequest struct {
	Platform  string
	OutputDir string
	Project   string
}

type ComposeResult struct {
	Project   string
	Platform  types.Platform
	OutputDir string
	Artifacts int
	DevEnv    types.ArtifactRef
}

type InspectRequest struct {
	OutputDir string
}

type InspectEntrySummary struct {
	Name     string
	Version  string
	Ref      types.ArtifactRef
	Requires int
}

type InspectResult struct {
	Entries []InspectEntrySummary
	Aliases map[string]types.ArtifactRef
}
