package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/hcl"
)

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	tempDir := t.TempDir()

	// 1. Create module manifest file.
	moduleDir := filepath.Join(tempDir, "modules", "greeter")
	if err := os.MkdirAll(moduleDir, 0755); err != nil {
		t.Fatalf("failed to create module directory: %v", err)
	}
	manifestHCL := `
		action "greet" {
			description = "Greets the argument."
			params      = string
			returns     = string
			handler     = "OnGreet"
		}
	`
	if err := os.WriteFile(filepath.Join(moduleDir, "manifest.hcl"), []byte(manifestHCL), 0600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	// 2. Create scenario file.
	scenarioHCL := `
		delegate "string" "words" {
			returns = string
		}
		step "subscribe" "words" {
			action = "greet"
			args   = "hello"
		}
		step "invoke" "words" {
			args = "bye"
		}
	`
	scenarioPath := filepath.Join(tempDir, "main.hcl")
	if err := os.WriteFile(scenarioPath, []byte(scenarioHCL), 0600); err != nil {
		t.Fatalf("failed to write scenario file: %v", err)
	}

	// --- Act ---
	loader := hcl.NewLoader()
	model, converter, err := loader.Load(context.Background(), scenarioPath, filepath.Join(tempDir, "modules"))

	// --- Assert ---
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if model == nil {
		t.Fatal("Load() returned a nil model")
	}
	if converter == nil {
		t.Fatal("Load() returned a nil converter")
	}

	// Assert on the Action Definition
	expectedAction := &config.ActionDefinition{
		Name:        "greet",
		Description: "Greets the argument.",
		Params:      config.KindString,
		Returns:     config.KindString,
		Handler:     "OnGreet",
	}
	if actionDef, ok := model.Actions["greet"]; ok {
		if diff := cmp.Diff(expectedAction, actionDef); diff != "" {
			t.Errorf("ActionDefinition mismatch (-want +got):\n%s", diff)
		}
	} else {
		t.Fatal("Expected action 'greet' not found in model")
	}

	// Assert on the Delegate Declaration
	expectedDelegates := []*config.DelegateDecl{
		{Params: config.KindString, Name: "words", Returns: config.KindString},
	}
	if diff := cmp.Diff(expectedDelegates, model.Scenario.Delegates); diff != "" {
		t.Errorf("Delegates mismatch (-want +got):\n%s", diff)
	}

	// Assert on the Steps
	if len(model.Scenario.Steps) != 2 {
		t.Fatalf("Expected 2 steps in the scenario, got %d", len(model.Scenario.Steps))
	}
	subscribe := model.Scenario.Steps[0]
	if subscribe.Verb != "subscribe" || subscribe.Delegate != "words" || subscribe.Action != "greet" {
		t.Errorf("Unexpected subscribe step fields: Verb=%s, Delegate=%s, Action=%s", subscribe.Verb, subscribe.Delegate, subscribe.Action)
	}
	if subscribe.Args == nil {
		t.Error("Expected 'args' expression on the subscribe step")
	}
	invoke := model.Scenario.Steps[1]
	if invoke.Verb != "invoke" || invoke.Mode != "all" || invoke.Report != "none" {
		t.Errorf("Unexpected invoke step fields: Verb=%s, Mode=%s, Report=%s", invoke.Verb, invoke.Mode, invoke.Report)
	}
}
