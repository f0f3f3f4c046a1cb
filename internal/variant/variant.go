// Package variant defines the closed set of supported vim launchers and the
// mapping from each to the command line that reopens an existing session.
package variant

import (
	"os/exec"

	"github.com/vimtools/vsm/internal/errors"
)

// Variant identifies one of the supported vim flavors.
type Variant string

// The supported variant set. Fixed at build time; adding a variant means
// adding a constant here and a case to LaunchCommand.
const (
	// Vim is the classic terminal editor.
	Vim Variant = "vim"
	// Neovim is the terminal fork.
	Neovim Variant = "nvim"
	// Neovide is the GUI wrapper around Neovim.
	Neovide Variant = "neovide"
	// GVim is the GUI build of classic vim.
	GVim Variant = "gvim"
)

// lookPath is a seam for tests; see Installed.
var lookPath = exec.LookPath

// All returns every supported variant in display order. The order is fixed
// so selection numbering stays stable across runs.
func All() []Variant {
	return []Variant{Vim, Neovim, Neovide, GVim}
}

// Default is the variant used when no default has been persisted.
func Default() Variant {
	return Neovim
}

// Parse converts a variant name to a Variant. Names outside the supported
// set fail with ErrUnknownVariant.
func Parse(name string) (Variant, error) {
	for _, v := range All() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownVariant, "%q", name)
}

// String returns the variant's command name.
func (v Variant) String() string {
	return string(v)
}

// LaunchCommand returns the program name and argument list that open an
// existing session file at sessionPath with this variant. The session path
// is the only variable element; everything else is the variant's fixed
// load-session flags.
func (v Variant) LaunchCommand(sessionPath string) (string, []string) {
	switch v {
	case Vim, Neovim, GVim:
		return string(v), []string{"-S", sessionPath}
	case Neovide:
		// Neovide forwards everything after -- to the embedded nvim.
		return string(v), []string{"--", "-S", sessionPath}
	default:
		// Unreachable for values produced by Parse. A zero or hand-rolled
		// Variant is a programming error, not user input.
		panic("variant: unknown variant " + string(v))
	}
}

// Installed reports whether the variant's command is available on PATH.
func (v Variant) Installed() bool {
	_, err := lookPath(string(v))
	return err == nil
}

// InstalledVariants returns the supported variants found on PATH, in
// display order.
func InstalledVariants() []Variant {
	var found []Variant
	for _, v := range All() {
		if v.Installed() {
			found = append(found, v)
		}
	}
	return found
}

// Resolve picks the active variant for one run: an explicit override wins
// when present, otherwise the persisted default applies.
func Resolve(explicit string, persisted Variant) (Variant, error) {
	if explicit == "" {
		return persisted, nil
	}
	return Parse(explicit)
}
