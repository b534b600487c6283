package types

// PlanEntry is the serialized form of one accepted submission.
type PlanEntry struct {
	Ref          ArtifactRef   `yaml:"ref"`
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Requires     []ArtifactRef `yaml:"requires,omitempty"`
	Source       SourceSpec    `yaml:"source,omitempty"`
	Script       string        `yaml:"script"`
	Platforms    []Platform    `yaml:"platforms"`
	Environments []string      `yaml:"environments,omitempty"`
	Aliases      []string      `yaml:"aliases,omitempty"`
}

// BuildPlan is the deduplicated, dependency-ordered plan written for the
// external executor. Entries appear in submission order, so every entry's
// requires refer to earlier entries only.
type BuildPlan struct {
	Entries []PlanEntry            `yaml:"entries"`
	Aliases map[string]ArtifactRef `yaml:"aliases,omitempty"`
}

// Entry returns the plan entry registered for ref, if any.
func (p BuildPlan) Entry(ref ArtifactRef) (PlanEntry, bool) {
	for _, entry := range p.Entries {
		if entry.Ref == ref {
			return entry, true
		}
	}
	return PlanEntry{}, false
}
