package cmd

import (
	"testing"

	"github.com/vimtools/vsm/internal/errors"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "vsm" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "vsm")
	}

	// Compare by Name(), not Use which includes args
	expectedCmds := []string{"list", "open", "remove", "variant", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

func TestOpenCommand_VariantFlag(t *testing.T) {
	flag := openCmd.Flags().Lookup("variant")
	if flag == nil {
		t.Fatal("open command should have a --variant flag")
	}
	if flag.Shorthand != "v" {
		t.Errorf("variant flag shorthand = %q, want %q", flag.Shorthand, "v")
	}
}

func TestRemoveCommand_ForceFlag(t *testing.T) {
	flag := removeCmd.Flags().Lookup("force")
	if flag == nil {
		t.Fatal("remove command should have a --force flag")
	}
	if flag.Shorthand != "f" {
		t.Errorf("force flag shorthand = %q, want %q", flag.Shorthand, "f")
	}
}

func TestConfigCommand_Subcommands(t *testing.T) {
	cmdMap := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range []string{"show", "path"} {
		if !cmdMap[expected] {
			t.Errorf("expected config subcommand %q not found", expected)
		}
	}
}

func TestDone(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "nil passes through", err: nil, wantErr: false},
		{name: "cancellation is swallowed", err: errors.ErrSelectionCancelled, wantErr: false},
		{name: "wrapped cancellation is swallowed", err: errors.Wrap(errors.ErrSelectionCancelled, "choosing session"), wantErr: false},
		{name: "other errors propagate", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := done(tt.err)
			if (err != nil) != tt.wantErr {
				t.Errorf("done(%v) error = %v, wantErr %v", tt.err, err, tt.wantErr)
			}
		})
	}
}
