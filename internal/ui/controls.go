package ui

import (
	"math"
	"strconv"

	"sandgarden/internal/core"
)

// controlState tracks the last known value of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// controls binds a sim's parameter controls to its setters.
type controls struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControls(sim core.Sim) *controls {
	c := &controls{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	c.intSetter, _ = sim.(core.IntParameterSetter)
	c.floatSetter, _ = sim.(core.FloatParameterSetter)
	return c
}

// refresh reloads every control's value from snap.
func (c *controls) refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		s := &c.states[i]
		s.hasValue = false
		s.value = "--"
		param, ok := snap.Lookup(s.control.Key)
		if !ok {
			continue
		}
		switch s.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			s.intValue, s.floatValue = v, float64(v)
			s.value = strconv.Itoa(v)
			s.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			s.floatValue = v
			s.value = formatFloat(s.control, v)
			s.hasValue = true
		}
	}
}

// target returns the value one step in direction dir, and whether it differs
// from the current value.
func (c *controls) target(i, dir int) (float64, bool) {
	if i < 0 || i >= len(c.states) || dir == 0 {
		return 0, false
	}
	s := &c.states[i]
	if !s.hasValue {
		return 0, false
	}
	step := s.control.Step
	switch s.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return 0, false
		}
		if step = math.Round(step); step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := s.control.Clamp(s.floatValue + float64(dir)*step)
	return next, math.Abs(next-s.floatValue) > 1e-9
}

// adjust nudges control i one step in direction dir and reports whether the
// sim accepted the new value.
func (c *controls) adjust(i, dir int) bool {
	next, ok := c.target(i, dir)
	if !ok {
		return false
	}
	s := &c.states[i]
	switch s.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(next))
		if !c.intSetter.SetIntParameter(s.control.Key, v) {
			return false
		}
		s.intValue, s.floatValue = v, float64(v)
		s.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !c.floatSetter.SetFloatParameter(s.control.Key, next) {
			return false
		}
		s.floatValue = next
		s.value = formatFloat(s.control, next)
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Toolbar holds the brush tools a sim accepts and which one is selected.
type Toolbar struct {
	tools    []string
	selected int
}

// NewToolbar lists the tools of sim, or none when it does not accept strokes.
func NewToolbar(sim core.Sim) *Toolbar {
	tb := &Toolbar{}
	if placer, ok := sim.(core.Placer); ok {
		tb.tools = append(tb.tools, placer.Tools()...)
	}
	return tb
}

// Tools returns the tool names in display order.
func (tb *Toolbar) Tools() []string { return tb.tools }

// Select makes tool i current. Out of range indices are ignored.
func (tb *Toolbar) Select(i int) bool {
	if i < 0 || i >= len(tb.tools) {
		return false
	}
	tb.selected = i
	return true
}

// Selected returns the index of the current tool.
func (tb *Toolbar) Selected() int { return tb.selected }

// Tool returns the current tool name, or "" when the sim has none.
func (tb *Toolbar) Tool() string {
	if len(tb.tools) == 0 {
		return ""
	}
	return tb.tools[tb.selected]
}
