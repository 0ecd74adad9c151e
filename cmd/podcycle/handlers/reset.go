// Package handlers implements the podcycle command logic.
//
// Commands in cmd/podcycle/commands delegate here. Collaborator
// construction goes through package-level factory variables so tests
// can substitute fakes without touching the wiring.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/podcycle/podcycle/internal/config"
	"github.com/podcycle/podcycle/internal/k8s"
	"github.com/podcycle/podcycle/internal/monitor"
	"github.com/podcycle/podcycle/internal/orchestrator"
	"github.com/podcycle/podcycle/internal/runlog"
	"github.com/podcycle/podcycle/internal/ui"
	"github.com/podcycle/podcycle/internal/util/privilege"
)

// Factory function variables - can be replaced in tests.
var (
	loadConfig = config.Load

	newCluster = func(kubeconfigPath string) (orchestrator.Cluster, error) {
		return k8s.NewClient(kubeconfigPath)
	}

	newMonitor = func(name string, args []string) (orchestrator.Monitor, error) {
		return monitor.New(name, args)
	}

	ensurePrivilege = privilege.Ensure

	now = time.Now
)

// Reset handles the reset command.
//
// It validates the stateful group topology, resets its members one by
// one with a pre-deletion event audit, waits for the whole group to
// become ready, resets the dependent group, and hands the terminal to
// the configured monitor. The session log is the durable record of the
// run; the exit status reflects only the fatal failure categories.
func Reset(ctx context.Context, configPath, kubeconfigPath string, skipConfirm bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := ensurePrivilege(skipConfirm); err != nil {
		return err
	}

	cluster, err := newCluster(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to create cluster client: %w", err)
	}

	mon, err := newMonitor(cfg.Monitor, cfg.MonitorArgs)
	if err != nil {
		return err
	}

	started := now()
	sessionLog, err := runlog.New(cfg.LogDir, started, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := sessionLog.Close(); err != nil {
			log.Printf("Warning: failed to close session log: %v", err)
		}
	}()

	fmt.Println(ui.Title("podcycle reset"))
	fmt.Println(ui.Dim("session log: " + sessionLog.Path()))

	orch := orchestrator.New(cluster, mon, sessionLog, orchestrator.Params{
		Namespace:         cfg.Namespace,
		StatefulSelector:  cfg.StatefulSelector,
		DependentSelector: cfg.DependentSelector,
		PacingDelay:       cfg.PacingDelay.Std(),
		ReadinessTimeout:  cfg.ReadinessTimeout.Std(),
		HandoffDelay:      cfg.HandoffDelay.Std(),
	}, orchestrator.WithClock(func() time.Time { return started }))

	result, err := orch.Run(ctx)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("run %s: %v", result.Outcome, err)))
		return err
	}

	if len(result.ResetErrors)+len(result.DependentErrors) > 0 {
		fmt.Println(ui.Warn("run completed with recoverable errors, see session log"))
		return nil
	}

	fmt.Println(ui.Ok("run completed"))
	return nil
}
