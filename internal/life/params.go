package life

import (
	"strconv"

	"mad-life/internal/core"
)

// Parameters reports the run configuration and live statistics.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "Height", e.cfg.Height),
				floatParam("p", "Alive probability", e.cfg.AliveProbability),
				{Key: "interval", Label: "Tick interval", Type: core.ParamTypeDuration, Value: e.cfg.Interval.String()},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(e.cfg.Seed, 10)},
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.gen, 10)},
				intParam("population", "Population", e.Population()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
