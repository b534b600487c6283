package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"artificer/internal/types"
)

type PlanReaderAdapter struct {
	Dir string
}

func NewPlanReaderAdapter(dir string) PlanReaderAdapter {
	return PlanReaderAdapter{Dir: dir}
}

func (a PlanReaderAdapter) ReadPlan() (types.BuildPlan, error) {
	data, err := os.ReadFile(filepath.Join(a.Dir, "plan.yaml"))
	if err != nil {
		return types.BuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("build plan not found").
			WithCause(err)
	}
	var plan types.BuildPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return types.BuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("build plan is malformed").
			WithCause(err)
	}
	return plan, nil
}
