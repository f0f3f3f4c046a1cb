package selector

import (
	"time"

	"github.com/vimtools/vsm/internal/session"
	"github.com/vimtools/vsm/internal/variant"
)

// Terminal prompts on the controlling terminal. It is the production
// implementation of the dispatcher's Selector interface; tests substitute a
// double instead of driving a real terminal.
type Terminal struct{}

// NewTerminal creates a terminal-backed selector.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// ChooseSession prompts for a single session from entries.
func (t *Terminal) ChooseSession(entries []session.Entry) (session.Entry, error) {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			Label:  e.Name,
			Detail: e.ModTime.Format(time.RFC822),
		}
	}

	idx, err := Choose("Which session would you like to use?", items)
	if err != nil {
		return session.Entry{}, err
	}
	return entries[idx], nil
}

// ChooseVariant prompts for a single variant from variants.
func (t *Terminal) ChooseVariant(variants []variant.Variant) (variant.Variant, error) {
	items := make([]Item, len(variants))
	for i, v := range variants {
		items[i] = Item{Label: v.String()}
	}

	idx, err := Choose("Which variant would you like to use?", items)
	if err != nil {
		return "", err
	}
	return variants[idx], nil
}
