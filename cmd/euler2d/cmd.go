// Package main implements the euler2d command-line interface, built on
// cobra/viper the same way inmaputil wires its Root command tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bryanceoyang/euler2d/internal/broadcast"
	"github.com/bryanceoyang/euler2d/internal/config"
	"github.com/bryanceoyang/euler2d/internal/euler"
	"github.com/bryanceoyang/euler2d/internal/problem"
)

// App holds the cobra command tree and the values its flags bind to,
// following the Cfg struct inmaputil.InitializeConfig builds; the config
// file itself is read through viper by config.Load.
type App struct {
	Root, runCmd *cobra.Command

	configPath string
	threads    int
	logLevel   string
}

func initializeApp() *App {
	app := &App{}

	app.Root = &cobra.Command{
		Use:   "euler2d",
		Short: "A 2D compressible Euler equations solver.",
		Long: `euler2d integrates the 2D compressible Euler equations on a
structured grid using a tiled, barrier-synchronised finite-volume solver.
Use the run subcommand with a YAML or TOML configuration file to start a
simulation.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setLogLevel()
		},
	}
	app.Root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	app.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a simulation from a config file.",
		Long: `run reads a grid/physics/integrator/broadcast configuration from
--config and integrates the described problem to completion.`,
		DisableAutoGenTag: true,
		RunE:              app.runE,
	}
	app.runCmd.Flags().StringVar(&app.configPath, "config", "", "path to a YAML or TOML config file")
	app.runCmd.Flags().IntVar(&app.threads, "threads", 0, "override config nthread (0 keeps the config value)")
	app.runCmd.MarkFlagRequired("config")

	app.Root.AddCommand(app.runCmd)
	return app
}

func (app *App) setLogLevel() error {
	level, err := logrus.ParseLevel(app.logLevel)
	if err != nil {
		return fmt.Errorf("euler2d: invalid log level %q: %w", app.logLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

func (app *App) runE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	if app.threads > 0 {
		cfg.NThread = app.threads
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	prob, err := problem.Lookup(cfg.Problem, cfg.Params)
	if err != nil {
		return err
	}

	order, err := reconstructOrder(cfg.ReconstructOrder)
	if err != nil {
		return err
	}

	prop := prob.Property()
	prop.Order = order
	prop.PPMOpt = euler.PPMOptions{
		AlwaysLimit: cfg.PPM.AlwaysLim,
		StrictLimit: cfg.PPM.StrictLim,
		WeirdPPM:    cfg.PPM.WeirdPPM,
	}
	if cfg.Gamma > 0 {
		prop.Gamma = cfg.Gamma
	}
	if cfg.RhoFloor > 0 {
		prop.RhoFloor = cfg.RhoFloor
	}
	if cfg.PressFloor > 0 {
		prop.PressFloor = cfg.PressFloor
	}
	if cfg.NScalar > 0 {
		prop.NScalar = cfg.NScalar
	}

	grid := euler.NewGrid(prop)
	prob.InitCond(grid)
	prob.Boundary(grid, 0)
	grid.Physics.ConsLim(grid.Cons, grid.Prim, cfg.PPM.StrictLim)

	scheme, err := parseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	integrator := euler.NewIntegrator(scheme, cfg.CFLNum)

	sim := &euler.Simulation{
		Grid:       grid,
		Integrator: integrator,
		Problem:    prob,
		NThread:    cfg.NThread,
		MaxEpoch:   cfg.MaxEpoch,
		OutDt:      cfg.OutTf / float64(maxInt(cfg.MaxOut, 1)),
		ClipMin:    cfg.Broadcast.ClipMin,
		ClipMax:    cfg.Broadcast.ClipMax,
	}

	logger := logrus.WithFields(logrus.Fields{
		"problem": prob.Name(),
		"nu":      prop.NU,
		"nv":      prop.NV,
		"nthread": cfg.NThread,
	})
	var lastState euler.StepState
	sim.OnEpoch = func(epoch int, state euler.StepState) {
		lastState = state
		logger.WithFields(logrus.Fields{
			"epoch": epoch,
			"time":  state.Time,
			"dt":    state.Dt,
		}).Debug("step complete")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		logger.Warn("interrupted, cancelling run")
		cancel()
	}()

	var hub *broadcast.Hub
	if cfg.Broadcast.Enabled {
		sim.FrameCh = euler.NewFrameChannel()
		hub, err = broadcast.Open(cfg.Broadcast.Addr, cfg.Broadcast.MaxClients, 5*time.Second, cfg.Broadcast.MaxFPS)
		if err != nil {
			return fmt.Errorf("euler2d: starting broadcast hub: %w", err)
		}
		go hub.Run(ctx, sim.FrameCh)
		logger.WithField("addr", cfg.Broadcast.Addr).Info("broadcast hub listening")
	}

	logger.Info("starting run")
	sim.Run(ctx)
	logger.WithField("time", lastState.Time).Info("run complete")

	if hub != nil {
		hub.Close()
	}
	return nil
}

func reconstructOrder(n int) (euler.ReconstructOrder, error) {
	switch n {
	case 1:
		return euler.OrderPCM, nil
	case 2:
		return euler.OrderPLM, nil
	case 3:
		return euler.OrderPPM, nil
	default:
		return 0, fmt.Errorf("euler2d: reconstruct_order must be in {1,2,3}, got %d", n)
	}
}

func parseScheme(name string) (euler.Scheme, error) {
	switch name {
	case "euler":
		return euler.SchemeEuler, nil
	case "rk2":
		return euler.SchemeRK2, nil
	case "ssprk3":
		return euler.SchemeSSPRK3, nil
	default:
		return 0, fmt.Errorf("euler2d: unknown scheme %q", name)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
