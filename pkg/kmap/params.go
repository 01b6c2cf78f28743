package kmap

import (
	"strconv"

	"karnaugh/internal/core"
)

// Parameters reports the map configuration and the current minimization.
func (z *Minimizer) Parameters() core.ParameterSnapshot {
	l := z.m.Layout()
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("vars", "Variables", l.Vars),
				intParam("rows", "Rows", l.Rows),
				intParam("cols", "Columns", l.Cols),
				textParam("cover", "Cover", z.cover.Name()),
			},
		},
		{
			Name: "Function",
			Params: []core.Parameter{
				textParam("minterms", "Minterms", mintermKey(z.m.Minterms())),
				textParam("dont_cares", "Don't cares", mintermKey(z.m.DontCares())),
			},
		},
	}
	res, err := z.Simplify()
	expr := res.Expression
	if err != nil {
		expr = err.Error()
	}
	groups = append(groups, core.ParameterGroup{
		Name: "Result",
		Params: []core.Parameter{
			textParam("expression", "Expression", expr),
			intParam("primes", "Prime implicants", len(res.PrimeImplicants)),
			intParam("terms", "Terms", len(res.Cover)),
		},
	})
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (z *Minimizer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "vars",
			Label:  "Variables",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    MinVars,
			Max:    MaxVars,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter applies an integer parameter. Changing "vars" clears the map.
func (z *Minimizer) SetIntParameter(key string, value int) bool {
	switch key {
	case "vars":
		if value == z.m.Layout().Vars {
			return true
		}
		return z.Configure(value) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
