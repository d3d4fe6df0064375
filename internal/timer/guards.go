package timer

import "github.com/jdhalbert/tomodoro/internal/ports"

// nonBlockingInput switches the command surface to non-blocking reads
// and returns a release func that switches it back. Callers defer the
// release so the surface is restored on every exit path.
func nonBlockingInput(cmd ports.CommandSurface) func() {
	cmd.SetInputMode(false)
	return func() {
		cmd.SetInputMode(true)
	}
}

// overrideSection replaces one header section and returns a release
// func that restores the header to its defaults.
func overrideSection(header ports.HeaderSurface, position int, text, color string, bold bool) func() {
	header.SetSection(position, text, color, bold)
	return func() {
		header.RestoreDefaults()
	}
}
