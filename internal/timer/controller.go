package timer

import (
	"fmt"
	"strconv"

	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// Header section positions, left to right.
const (
	SectionTitle = iota
	SectionStart
	SectionWork
	SectionBreak
)

// Header and prompt text shared by the session loop and the cmd layer.
const (
	Title      = "tomodoro."
	HintStart  = "s start"
	HintStop   = "s stop"
	HintWork   = "w work"
	HintBreak  = "b break"
	IdlePrompt = "Select option (q to quit)"
)

// Controller handles mode switches: it prompts for the interval length
// in the command window, clamps it and reprograms the engine.
type Controller struct {
	engine   *Engine
	cmd      ports.CommandSurface
	header   ports.HeaderSurface
	profiles *domain.Profiles
}

func NewController(engine *Engine, cmd ports.CommandSurface, header ports.HeaderSurface, profiles *domain.Profiles) *Controller {
	return &Controller{
		engine:   engine,
		cmd:      cmd,
		header:   header,
		profiles: profiles,
	}
}

// Profile returns the mutable profile for the given mode.
func (c *Controller) Profile(m domain.Mode) *domain.ModeProfile {
	return c.profiles.For(m)
}

// SwitchMode moves the engine into the given mode, or into the other
// mode when explicit is nil, then asks for the interval length and
// programs a fresh countdown. Bad or empty input keeps the previous
// length for that mode.
func (c *Controller) SwitchMode(explicit *domain.Mode) {
	mode := c.engine.Mode().Other()
	if explicit != nil {
		mode = *explicit
	}
	c.engine.SetMode(mode)

	profile := c.profiles.For(mode)
	profile.Minutes = c.askMinutes(mode, profile)
	c.engine.SetTimer(profile.Minutes)
}

// askMinutes highlights the header hint for the mode being configured,
// prompts with the mode's previous length as the default and reads up
// to two characters. The header and the idle prompt are restored on
// every exit path.
func (c *Controller) askMinutes(mode domain.Mode, profile *domain.ModeProfile) int {
	restore := overrideSection(c.header, sectionForMode(mode), hintForMode(mode), profile.Color, true)
	defer restore()
	defer c.cmd.ShowPrompt(IdlePrompt, false)

	c.cmd.ShowPrompt(fmt.Sprintf("%s [%d]: ", profile.Prompt, profile.Minutes), false)
	line, ok := c.cmd.ReadLine(2)
	if !ok {
		return profile.Minutes
	}
	minutes, err := strconv.Atoi(line)
	if err != nil {
		return profile.Minutes
	}
	return domain.ClampMinutes(minutes)
}

func sectionForMode(m domain.Mode) int {
	if m == domain.ModeBreak {
		return SectionBreak
	}
	return SectionWork
}

func hintForMode(m domain.Mode) string {
	if m == domain.ModeBreak {
		return HintBreak
	}
	return HintWork
}
