package app

import (
	"artificer/internal/adapters"
	"artificer/internal/ports"
)

// Service wires the application operations to their adapters. Both
// factories take the plan output directory; tests swap them for fakes.
type Service struct {
	NewExecutor   func(dir string) ports.ExecutorPort
	NewPlanReader func(dir string) ports.PlanReaderPort
}

func NewService() Service {
	return Service{
		NewExecutor: func(dir string) ports.ExecutorPort {
			return adapters.NewPlanExecutor(dir)
		},
		NewPlanReader: func(dir string) ports.PlanReaderPort {
			return adapters.NewPlanReaderAdapter(dir)
		},
	}
}
