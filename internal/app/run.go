package app

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/delegatego/internal/ctxlog"
	"github.com/vk/delegatego/internal/runner"
)

// Run executes the loaded scenario against the registered action handlers.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Action handlers registered:", "count", len(a.registry.HandlerRegistry), "keys", reflect.ValueOf(a.registry.HandlerRegistry).MapKeys())

	scenario := a.config.Scenario
	if len(scenario.Delegates) == 0 && len(scenario.Steps) == 0 {
		a.logger.Warn("No delegates or steps found in scenario, execution not required.")
		return nil
	}

	a.logger.Info("🚀 Starting scenario execution...")
	run := runner.New(a.registry, a.converter, a.reportW)
	if err := run.Run(ctx, scenario); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}
