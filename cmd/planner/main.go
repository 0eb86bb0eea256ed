package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/generator"
	"github.com/gdg-garage/park-planner-api/internal/logging"
	"github.com/gdg-garage/park-planner-api/internal/planner"
	"github.com/gdg-garage/park-planner-api/internal/render"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	logLevel    string

	park       string
	duration   string
	ageGroups  []string
	interests  []string
	focuses    []string
	visitor    string
	delay      time.Duration
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Theme park visit planner",
	Long: `Plan a theme park visit from the terminal.

Available subcommands:
  plan    - Generate a plan for the given preferences
  catalog - List the options offered by the form`,
	SilenceUsage: true,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a visit plan",
	Long: `Generate a visit plan for the selected park.

A park is required. Press Ctrl-C to cancel a generation in progress.`,
	RunE: runPlan,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List parks, durations and checkbox options",
	RunE:  runCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a YAML option table (defaults to the built-in one)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	planCmd.Flags().StringVar(&park, "park", "", "Park id (disneyland or disneysea)")
	planCmd.Flags().StringVar(&duration, "duration", "", "Visit duration (half-day, full-day or two-days)")
	planCmd.Flags().StringSliceVar(&ageGroups, "age-group", nil, "Age group, repeatable")
	planCmd.Flags().StringSliceVar(&interests, "interest", nil, "Area of interest, repeatable")
	planCmd.Flags().StringSliceVar(&focuses, "focus", nil, "Priority focus, repeatable")
	planCmd.Flags().StringVar(&visitor, "visitor", "", "Name used in the plan description")
	planCmd.Flags().DurationVar(&delay, "delay", generator.DefaultDelay, "Simulated generation delay")
	planCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plan as JSON")

	rootCmd.AddCommand(planCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := planner.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Catalog(catalog))
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	catalog, err := planner.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	events := []planner.Event{
		planner.SetPark{Park: park},
		planner.SetDuration{Duration: planner.Duration(duration)},
	}
	checked := [][]string{ageGroups, interests, focuses}
	for i, category := range planner.Categories {
		for _, v := range checked[i] {
			if !catalog.Offers(category, v) {
				return fmt.Errorf("unknown %s option %q", category, v)
			}
			events = append(events, planner.ToggleMember{Category: category, Value: v, Included: true})
		}
	}
	if park != "" && !catalog.HasPark(park) {
		return fmt.Errorf("unknown park %q", park)
	}
	if !catalog.HasDuration(planner.Duration(duration)) {
		return fmt.Errorf("unknown duration %q", duration)
	}

	state := planner.Reduce(planner.State{}, events...)
	if !state.CanGenerate() {
		return fmt.Errorf("select a park with --park before generating a plan")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(generator.Options{Delay: delay, Logger: logger})
	task, err := gen.Start(ctx, state.Preferences)
	if err != nil {
		return err
	}
	state = planner.Reduce(state, planner.GenerationStarted{})
	fmt.Fprintln(cmd.ErrOrStderr(), planner.TriggerCaption(state.Busy))

	plan, err := task.Wait(context.Background())
	if err != nil {
		if res, ok := task.Result(); ok && res.Cancelled() {
			fmt.Fprintln(cmd.ErrOrStderr(), "generation cancelled")
			return nil
		}
		return err
	}
	state = planner.Reduce(state, planner.GenerationFinished{Plan: plan})

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(state.Plan)
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Plan(catalog.ParkLabel(state.Preferences.Park), visitor, state.Plan))
	return nil
}
