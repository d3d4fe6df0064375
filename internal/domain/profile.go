package domain

// ModeProfile is the remembered per-mode configuration: the interval
// length last chosen by the user, the display color for the big digits,
// and the prompt shown when asking for a new length.
type ModeProfile struct {
	Minutes int
	Color   string
	Prompt  string
}

// Profiles is a fixed-size table of one profile per Mode value.
type Profiles [modeCount]ModeProfile

// NewProfiles builds the profile table from the configured defaults.
func NewProfiles(work, brk ModeProfile) Profiles {
	var p Profiles
	p[ModeWork] = work
	p[ModeBreak] = brk
	return p
}

// For returns a pointer to the profile for the given mode.
func (p *Profiles) For(m Mode) *ModeProfile {
	return &p[m]
}
