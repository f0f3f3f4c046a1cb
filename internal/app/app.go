// Package app wires the session registry, variant registry, and interactive
// prompts into the three user-facing actions: list, open, and remove. One
// App serves one invocation; every operation blocks until done.
package app

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/vimtools/vsm/internal/config"
	"github.com/vimtools/vsm/internal/errors"
	"github.com/vimtools/vsm/internal/logging"
	"github.com/vimtools/vsm/internal/session"
	"github.com/vimtools/vsm/internal/variant"
)

// Selector prompts the user for a single choice. The production
// implementation drives the terminal; tests supply canned choices or a
// cancellation.
type Selector interface {
	ChooseSession([]session.Entry) (session.Entry, error)
	ChooseVariant([]variant.Variant) (variant.Variant, error)
}

// ConfirmFunc asks a yes/no question and reports the answer. The default
// answer is no: only an explicit yes returns true.
type ConfirmFunc func(prompt string) (bool, error)

// App dispatches one resolved action per invocation.
type App struct {
	cfg      *config.Config
	log      *logging.Logger
	selector Selector
	confirm  ConfirmFunc

	// Seams for tests; New fills in the real implementations.
	sessionDir  string
	stdout      io.Writer
	spawn       func(program string, args []string) error
	saveVariant func(variant.Variant) error
	installed   func() []variant.Variant
}

// New creates an App over the resolved session directory.
func New(cfg *config.Config, log *logging.Logger, sel Selector, confirm ConfirmFunc) *App {
	return &App{
		cfg:         cfg,
		log:         log,
		selector:    sel,
		confirm:     confirm,
		sessionDir:  config.SessionDir(),
		stdout:      os.Stdout,
		spawn:       spawnEditor,
		saveVariant: config.SaveDefaultVariant,
		installed:   variant.InstalledVariants,
	}
}

// spawnEditor runs the editor in the foreground with the terminal attached
// and waits for it to exit. A non-zero exit becomes an ExitCodeError so the
// caller can mirror the code.
func spawnEditor(program string, args []string) error {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errors.NewExitCodeError(exitErr.ExitCode())
		}
		return errors.Wrapf(err, "failed to launch %s", program)
	}
	return nil
}

// List prints every session with its modification time, sorted by name.
// An empty directory is success with a notice; a missing one is an error.
func (a *App) List() error {
	a.log.Debug("listing sessions", "dir", a.sessionDir)

	entries, err := session.List(a.sessionDir)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.stdout, "No sessions found.")
		return nil
	}

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(a.stdout, "%-*s  %s\n", width, e.Name, e.ModTime.Format("02 Jan 06 15:04"))
	}
	return nil
}

// Open launches the active variant on a session. name may be empty, in
// which case the user picks interactively. variantOverride, when non-empty,
// beats the persisted default for this run only.
func (a *App) Open(name, variantOverride string) error {
	entry, err := a.resolveEntry(name)
	if err != nil {
		return err
	}

	v, err := variant.Resolve(variantOverride, a.cfg.DefaultVariant())
	if err != nil {
		return err
	}

	program, args := v.LaunchCommand(entry.Path)
	a.log.Debug("launching editor",
		"variant", v.String(),
		"session", entry.Name,
		"args", strings.Join(args, " "))

	return a.spawn(program, args)
}

// Remove deletes a session file. Unless force is set, the user confirms
// first; answering no leaves the file alone and is not an error.
func (a *App) Remove(name string, force bool) error {
	entry, err := a.resolveEntry(name)
	if err != nil {
		return err
	}

	if !force {
		ok, err := a.confirm(fmt.Sprintf("Delete session %q?", entry.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.stdout, "Not removed.")
			return nil
		}
	}

	if err := session.Delete(entry); err != nil {
		return err
	}

	a.log.Info("removed session", "session", entry.Name, "path", entry.Path)
	fmt.Fprintf(a.stdout, "Removed %s.\n", entry.Name)
	return nil
}

// ChooseDefaultVariant prompts for a variant among the installed subset and
// persists the choice as the new default. Re-selecting the active variant
// skips the write.
func (a *App) ChooseDefaultVariant() error {
	installed := a.installed()
	if len(installed) == 0 {
		names := make([]string, 0, len(variant.All()))
		for _, v := range variant.All() {
			names = append(names, v.String())
		}
		return errors.Wrapf(errors.ErrNoVariantInstalled,
			"looked for %s", strings.Join(names, ", "))
	}

	current := a.cfg.DefaultVariant()
	fmt.Fprintf(a.stdout, "Current default variant: %s\n", current)

	choice, err := a.selector.ChooseVariant(installed)
	if err != nil {
		return err
	}

	if choice == current {
		a.log.Debug("variant unchanged, skipping save", "variant", choice.String())
		fmt.Fprintf(a.stdout, "Default variant is already %s.\n", choice)
		return nil
	}

	if err := a.saveVariant(choice); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Default variant set to %s.\n", choice)
	return nil
}

// resolveEntry turns an optional explicit name into a session entry, going
// interactive only when no name was given.
func (a *App) resolveEntry(name string) (session.Entry, error) {
	if name != "" {
		return session.Find(a.sessionDir, name)
	}

	entries, err := session.List(a.sessionDir)
	if err != nil {
		return session.Entry{}, err
	}
	if len(entries) == 0 {
		return session.Entry{}, errors.Wrapf(errors.ErrNoCandidates,
			"no session files in %s", a.sessionDir)
	}
	return a.selector.ChooseSession(entries)
}
