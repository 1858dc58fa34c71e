package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tovstar/internal/analysis"
	"github.com/san-kum/tovstar/internal/config"
	"github.com/san-kum/tovstar/internal/export"
	"github.com/san-kum/tovstar/internal/integrators"
	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/storage"
	"github.com/san-kum/tovstar/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	eosFile  string
	eosScale float64

	rho0       float64
	rmin       float64
	rmax       float64
	samples    int
	floor      float64
	integName string

	densitySamples int
	workers        int
	live           bool

	lengthKM float64
	svgOut   string
)

var headline = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
var accent = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

func main() {
	rootCmd := &cobra.Command{
		Use:   "tovstar",
		Short: "neutron star structure from the TOV equations",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tovstar", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve one stellar model for a central density",
		RunE:  runSolve,
	}
	addRunFlags(solveCmd)
	solveCmd.Flags().Float64Var(&rho0, "rho", 1.3e-3, "central density (geometric units)")

	sequenceCmd := &cobra.Command{
		Use:   "sequence",
		Short: "sweep central density and build the mass-radius curve",
		RunE:  runSequence,
	}
	addRunFlags(sequenceCmd)
	sequenceCmd.Flags().IntVar(&densitySamples, "density-samples", config.DefaultDensitySamples, "central-density sweep points")
	sequenceCmd.Flags().IntVar(&workers, "workers", 1, "parallel solver workers")
	sequenceCmd.Flags().BoolVar(&live, "live", false, "live terminal view of the sweep")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored mass-radius curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored curve to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "curve.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list equation-of-state presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name].EoS.Polytrope
				fmt.Printf("  %-10s K=%g gamma=%g rho=[%g, %g]\n", name, p.K, p.Gamma, p.RhoMin, p.RhoMax)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, sequenceCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "equation-of-state preset")
	cmd.Flags().StringVar(&eosFile, "eos", "", "two-column density,pressure csv table")
	cmd.Flags().Float64Var(&eosScale, "scale", 1.0, "unit scale applied to both table columns")
	cmd.Flags().Float64Var(&rmin, "rmin", config.DefaultRMin, "inner radial offset")
	cmd.Flags().Float64Var(&rmax, "rmax", config.DefaultRMax, "outer radial bound")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "radial integration samples")
	cmd.Flags().Float64Var(&floor, "floor", config.DefaultPressureFloor, "surface-detection pressure floor")
	cmd.Flags().StringVar(&integName, "integrator", "rk4", "integrator (rk4, euler)")
	cmd.Flags().Float64Var(&lengthKM, "length-km", config.DefaultLengthKM, "km per internal length unit")
}

// resolveConfig layers preset, config file and flags: flags win, then the
// file, then the preset, then defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("eos") {
		cfg.EoS.File = eosFile
	}
	if cmd.Flags().Changed("scale") {
		cfg.EoS.Scale = eosScale
	}
	if cmd.Flags().Changed("rmin") {
		cfg.Grid.RMin = rmin
	}
	if cmd.Flags().Changed("rmax") {
		cfg.Grid.RMax = rmax
	}
	if cmd.Flags().Changed("samples") {
		cfg.Grid.Samples = samples
	}
	if cmd.Flags().Changed("floor") {
		cfg.Grid.PressureFloor = floor
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integName
	}
	if cmd.Flags().Changed("length-km") {
		cfg.LengthKM = lengthKM
	}
	if cmd.Flags().Changed("density-samples") {
		cfg.Sweep.DensitySamples = densitySamples
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sweep.Workers = workers
	}

	return cfg, nil
}

func newStepper(name string) (integrators.Stepper, error) {
	switch name {
	case "rk4", "":
		return integrators.NewRK4(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func runParams(cfg *config.Config) star.Params {
	return star.Params{
		RMin:          cfg.Grid.RMin,
		RMax:          cfg.Grid.RMax,
		Samples:       cfg.Grid.Samples,
		PressureFloor: cfg.Grid.PressureFloor,
	}
}

func eosName(cfg *config.Config) string {
	if preset != "" {
		return preset
	}
	if cfg.EoS.File != "" {
		return "table"
	}
	return "polytrope"
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	table, err := cfg.BuildTable()
	if err != nil {
		return err
	}

	step, err := newStepper(cfg.Integrator)
	if err != nil {
		return err
	}

	solver := star.NewSolver(table, step, runParams(cfg))
	m := solver.Solve(rho0)

	fmt.Println(headline.Render("stellar model"))
	fmt.Printf("  central density  %.6g\n", m.CentralDensity)
	fmt.Printf("  radius           %.4f  (%.2f km)\n", m.Radius, m.Radius*cfg.LengthKM)
	fmt.Printf("  mass             %s\n", accent.Render(fmt.Sprintf("%.4f Msun", m.Mass)))
	fmt.Printf("  compactness 2M/R %.4f\n", analysis.Compactness(m))
	if analysis.Suspect(m) {
		fmt.Println(accent.Render("  warning: result is physically suspect"))
	}
	return nil
}

func runSequence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	table, err := cfg.BuildTable()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if _, err := newStepper(cfg.Integrator); err != nil {
		return err
	}

	builder := star.NewSequenceBuilder(table, runParams(cfg))
	builder.SetSamples(cfg.Sweep.DensitySamples)
	builder.SetWorkers(cfg.Sweep.Workers)
	builder.SetStepper(func() integrators.Stepper {
		step, _ := newStepper(cfg.Integrator)
		return step
	})

	var seq *star.Sequence
	start := time.Now()

	if live {
		events := make(chan tui.Event, cfg.Sweep.DensitySamples+1)
		builder.OnModel(func(i int, m star.Model) {
			events <- tui.Event{Index: i, Model: m}
		})

		done := make(chan error, 1)
		go func() {
			var buildErr error
			seq, buildErr = builder.Build(context.Background())
			events <- tui.Event{Done: true, Err: buildErr}
			close(events)
			done <- buildErr
		}()

		if err := tui.RunSweep(events, cfg.Sweep.DensitySamples, cfg.LengthKM); err != nil {
			return err
		}
		if err := <-done; err != nil {
			return err
		}
	} else {
		seq, err = builder.Build(context.Background())
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		EoS:        eosName(cfg),
		Integrator: cfg.Integrator,
		RMin:       cfg.Grid.RMin,
		RMax:       cfg.Grid.RMax,
		Samples:    cfg.Grid.Samples,
		LengthKM:   cfg.LengthKM,
	}, seq)
	if err != nil {
		return err
	}

	peak := seq.MaxMass()
	branches := analysis.SplitBranches(seq)

	fmt.Println(headline.Render("mass-radius sweep"))
	fmt.Printf("  models          %d in %v\n", seq.Len(), elapsed.Round(time.Millisecond))
	fmt.Printf("  run id          %s\n", runID)
	fmt.Printf("  max mass        %s at R = %.2f km (rho_c = %.4g)\n",
		accent.Render(fmt.Sprintf("%.4f Msun", peak.Mass)),
		peak.Radius*cfg.LengthKM, peak.CentralDensity)
	fmt.Printf("  stable branch   %d models\n", branches.Stable.Len())

	printCurve(seq)
	return nil
}

func printCurve(seq *star.Sequence) {
	fmt.Println()
	graph := asciigraph.Plot(seq.Masses,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("mass (Msun) vs central density sample"),
	)
	fmt.Println(graph)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEOS\tTIME\tPOINTS\tMAX MASS\tR(KM)")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%.2f\n",
			run.ID,
			run.EoS,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.DensitySamples,
			run.MaxMass,
			run.MaxMassRadius*run.LengthKM,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	if seq.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s (eos %s, %d points)\n", meta.ID, meta.EoS, seq.Len())
	printCurve(seq)

	radiiKM := make([]float64, seq.Len())
	for i, r := range seq.Radii {
		radiiKM[i] = r * meta.LengthKM
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(radiiKM,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("radius (km) vs central density sample"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	svg := export.CurveToSVG(seq, meta.LengthKM, 800, 600)
	if svg == "" {
		return fmt.Errorf("curve too short to render")
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
