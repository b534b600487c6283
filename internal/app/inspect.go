package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect loads a previously written build plan and summarizes it.
func (s Service) Inspect(_ context.Context, req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	plan, err := s.NewPlanReader(outputDir).ReadPlan()
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Aliases: plan.Aliases}
	for _, entry := range plan.Entries {
		result.Entries = append(result.Entries, InspectEntrySummary{
			Name:     entry.Name,
			Version:  entry.Version,
			Ref:      entry.Ref,
			Requires: len(entry.Requires),
		})
	}
	return result, nil
}
