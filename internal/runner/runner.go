package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/delegatego/delegate/visualizer"
	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/ctxlog"
	"github.com/vk/delegatego/internal/registry"
)

// Runner applies a scenario to freshly built delegate instances.
type Runner struct {
	registry  *registry.Registry
	converter config.Converter
	out       io.Writer
}

// New wires a runner to a validated registry, an expression converter, and
// the writer that receives invocation reports.
func New(reg *registry.Registry, converter config.Converter, out io.Writer) *Runner {
	return &Runner{
		registry:  reg,
		converter: converter,
		out:       out,
	}
}

// Run builds every declared delegate and applies the steps in source order.
// The first failing step aborts the run.
func (r *Runner) Run(ctx context.Context, scenario *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	instances := make(map[string]instance, len(scenario.Delegates))
	for _, decl := range scenario.Delegates {
		inst, err := newInstance(decl)
		if err != nil {
			return err
		}
		instances[decl.Name] = inst
		logger.Debug("Delegate instance created.",
			"delegate", decl.Name,
			"params", decl.Params.String(),
			"returns", decl.Returns.String(),
		)
	}

	for i, step := range scenario.Steps {
		if err := r.applyStep(ctx, instances, step); err != nil {
			return fmt.Errorf("step %d (%s %q) failed: %w", i, step.Verb, step.Delegate, err)
		}
	}

	logger.Info("✅ Scenario finished.", "delegates", len(scenario.Delegates), "steps", len(scenario.Steps))
	return nil
}

func (r *Runner) applyStep(ctx context.Context, instances map[string]instance, step *config.Step) error {
	inst, ok := instances[step.Delegate]
	if !ok {
		return fmt.Errorf("unknown delegate '%s'", step.Delegate)
	}
	switch step.Verb {
	case "subscribe":
		return r.applySubscribe(ctx, inst, step)
	case "invoke":
		return r.applyInvoke(ctx, inst, step)
	default:
		return fmt.Errorf("unknown step verb '%s'", step.Verb)
	}
}

// applySubscribe resolves the step's action against the registry, checks it
// is shape-compatible with the target delegate, and attaches its handler in
// the form the step asks for: plain, with cached arguments, or as a series.
func (r *Runner) applySubscribe(ctx context.Context, inst instance, step *config.Step) error {
	logger := ctxlog.FromContext(ctx).With("delegate", step.Delegate, "action", step.Action)
	logger.Info("▶️ Subscribing action")

	def, ok := r.registry.ActionRegistry[step.Action]
	if !ok {
		return fmt.Errorf("unknown action '%s'", step.Action)
	}
	decl := inst.decl()
	if def.Params != decl.Params {
		return fmt.Errorf("action '%s' takes %s arguments, delegate '%s' carries %s", def.Name, def.Params, decl.Name, decl.Params)
	}
	if def.Returns != decl.Returns {
		return fmt.Errorf("action '%s' returns %s, delegate '%s' expects %s", def.Name, def.Returns, decl.Name, decl.Returns)
	}
	handler, ok := r.registry.HandlerRegistry[def.Handler]
	if !ok {
		return fmt.Errorf("handler '%s' not registered", def.Handler)
	}

	switch {
	case step.Series != nil:
		series, err := r.converter.SeriesValues(ctx, step.Series, decl.Params)
		if err != nil {
			return fmt.Errorf("evaluating series: %w", err)
		}
		if err := inst.subscribeSeries(handler.Fn, series); err != nil {
			return err
		}
		logger.Debug("Series subscription stored.", "values", len(series))
	case step.Args != nil:
		args, err := r.converter.ScalarValue(ctx, step.Args, decl.Params)
		if err != nil {
			return fmt.Errorf("evaluating args: %w", err)
		}
		if err := inst.subscribeWith(args, handler.Fn); err != nil {
			return err
		}
	default:
		if err := inst.subscribe(handler.Fn); err != nil {
			return err
		}
	}

	subscribers, deferred := inst.counts()
	logger.Info("✅ Action subscribed.", "subscribers", subscribers, "deferred", deferred)
	return nil
}

// applyInvoke fires the delegate. Mode "all" calls every subscriber with the
// step's args; mode "deferred" replays the stored argument entries. A report
// other than "none" renders per-subscriber results to the run's output
// writer instead of a plain invocation.
func (r *Runner) applyInvoke(ctx context.Context, inst instance, step *config.Step) error {
	logger := ctxlog.FromContext(ctx).With("delegate", step.Delegate, "mode", step.Mode)
	logger.Info("▶️ Invoking delegate")

	switch step.Mode {
	case "deferred":
		sum, hasSum, err := inst.invokeDeferred()
		if err != nil {
			return err
		}
		if hasSum {
			logger.Info("✅ Deferred invocation finished.", "sum", sum)
		} else {
			logger.Info("✅ Deferred invocation finished.")
		}
		return nil
	case "all":
		if step.Args == nil {
			return fmt.Errorf("invoke mode 'all' requires args")
		}
		args, err := r.converter.ScalarValue(ctx, step.Args, inst.decl().Params)
		if err != nil {
			return fmt.Errorf("evaluating args: %w", err)
		}
		if step.Report != "none" {
			view, err := visualizer.ParseView(step.Report)
			if err != nil {
				return err
			}
			if err := inst.report(r.out, args, view); err != nil {
				return err
			}
			logger.Info("✅ Invocation report written.", "view", view.String())
			return nil
		}
		sum, hasSum, err := inst.invokeAll(args)
		if err != nil {
			return err
		}
		if hasSum {
			logger.Info("✅ Invocation finished.", "sum", sum)
		} else {
			logger.Info("✅ Invocation finished.")
		}
		return nil
	default:
		return fmt.Errorf("unknown invoke mode '%s'", step.Mode)
	}
}
