package main

import (
	"bytes"
	"testing"

	"github.com/dtnitsch/product-page-parser/pkg/help"
)

func TestQuickstartCommand(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"product-page-parser", "quickstart"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != help.QuickstartYAML {
		t.Errorf("quickstart output differs from QuickstartYAML")
	}
}

func TestCommandsRegistered(t *testing.T) {
	app := newApp()
	for _, name := range []string{"parse", "check", "quickstart"} {
		if app.Command(name) == nil {
			t.Errorf("command %q not registered", name)
		}
	}
}
