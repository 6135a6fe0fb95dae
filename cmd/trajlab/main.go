package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajlab/internal/config"
	"github.com/san-kum/trajlab/internal/export"
	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/scene"
	"github.com/san-kum/trajlab/internal/tui"
)

var (
	angle   float64
	speed   float64
	mass    float64
	height  float64
	air     bool
	dt      float64
	maxTime float64

	configFile string
	preset     string

	csvOut  string
	jsonOut string
	svgOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trajlab",
		Short: "interactive projectile motion lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	launchCmd := &cobra.Command{
		Use:   "launch",
		Short: "run a single launch headless and print metrics",
		RunE:  runLaunch,
	}
	addLaunchFlags(launchCmd)
	launchCmd.Flags().StringVar(&csvOut, "csv", "", "write trajectory CSV to path")
	launchCmd.Flags().StringVar(&jsonOut, "json", "", "write trajectory JSON to path")
	launchCmd.Flags().StringVar(&svgOut, "svg", "", "write trajectory SVG to path")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run the same launch with and without air resistance",
		RunE:  runCompare,
	}
	addLaunchFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named launch presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(launchCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "launch angle (degrees)")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "start height (m)")
	cmd.Flags().BoolVar(&air, "air", true, "apply air resistance")
	cmd.Flags().Float64Var(&dt, "dt", phys.DefaultDt, "integration timestep (s)")
	cmd.Flags().Float64Var(&maxTime, "max-time", 120.0, "abort integration after this many seconds")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named launch preset")
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// launchSetup resolves config file, preset and flags into the launch
// parameters and physics constants for a headless run. Flag values win
// over preset values only when set explicitly.
func launchSetup(cmd *cobra.Command) (config.LaunchConfig, phys.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.LaunchConfig{}, phys.Config{}, err
	}

	launch := cfg.Launch
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return config.LaunchConfig{}, phys.Config{}, fmt.Errorf("unknown preset %q (see: trajlab presets)", preset)
		}
		launch = *p
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		launch.AngleDeg = angle
	}
	if flags.Changed("speed") {
		launch.Speed = speed
	}
	if flags.Changed("mass") {
		launch.Mass = mass
	}
	if flags.Changed("height") {
		launch.Height = height
	}
	if flags.Changed("air") {
		launch.AirResistance = air
	}
	if flags.Changed("dt") {
		cfg.Physics.Dt = dt
	}
	return launch, cfg.PhysConfig(), nil
}

// integrate spawns one projectile into a fresh scene and ticks until it
// lands or the time cap runs out.
func integrate(launch config.LaunchConfig, pc phys.Config) (*scene.Scene, *phys.Projectile) {
	scn := scene.New(pc)
	idx := scn.Spawn(launch.Params())
	p := scn.Projectiles()[idx]

	steps := int(maxTime / pc.Dt)
	for i := 0; i < steps && !p.Landed(); i++ {
		scn.Tick()
	}
	return scn, p
}

func runLaunch(cmd *cobra.Command, args []string) error {
	launch, pc, err := launchSetup(cmd)
	if err != nil {
		return err
	}
	scn, p := integrate(launch, pc)

	printMetrics(p)
	fmt.Println()
	fmt.Println(altitudePlot(p, "altitude (m)"))

	if csvOut != "" {
		if err := export.ExportCSVFile(csvOut, scn.Projectiles()); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Println("wrote", csvOut)
	}
	if jsonOut != "" {
		if err := export.ExportJSONFile(jsonOut, scn.Projectiles()); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		fmt.Println("wrote", jsonOut)
	}
	if svgOut != "" {
		if err := export.ExportSVGFile(svgOut, scn, 800, 600); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Println("wrote", svgOut)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	launch, pc, err := launchSetup(cmd)
	if err != nil {
		return err
	}

	withDrag := launch
	withDrag.AirResistance = true
	vacuum := launch
	vacuum.AirResistance = false

	_, pd := integrate(withDrag, pc)
	_, pv := integrate(vacuum, pc)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tdrag\tvacuum")
	fmt.Fprintf(w, "range (m)\t%.2f\t%.2f\n", pd.Range(), pv.Range())
	fmt.Fprintf(w, "max height (m)\t%.2f\t%.2f\n", pd.MaxHeight(), pv.MaxHeight())
	fmt.Fprintf(w, "flight time (s)\t%.2f\t%.2f\n", pd.FlightTime(), pv.FlightTime())
	fmt.Fprintf(w, "final speed (m/s)\t%.2f\t%.2f\n", pd.FinalSpeed(), pv.FinalSpeed())
	w.Flush()

	fmt.Println()
	fmt.Println(altitudePlot(pd, "altitude with drag (m)"))
	fmt.Println()
	fmt.Println(altitudePlot(pv, "altitude in vacuum (m)"))
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tangle\tspeed\tmass\theight\tair")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g°\t%g m/s\t%g kg\t%g m\t%v\n",
			name, p.AngleDeg, p.Speed, p.Mass, p.Height, p.AirResistance)
	}
	return w.Flush()
}

func printMetrics(p *phys.Projectile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "angle\t%.1f°\n", p.AngleDeg())
	fmt.Fprintf(w, "speed\t%.1f m/s\n", p.Speed())
	fmt.Fprintf(w, "mass\t%g kg\n", p.Mass())
	fmt.Fprintf(w, "air resistance\t%v\n", p.AirResistance())
	fmt.Fprintf(w, "max height\t%.2f m\n", p.MaxHeight())
	if p.Landed() {
		fmt.Fprintf(w, "flight time\t%.2f s\n", p.FlightTime())
		fmt.Fprintf(w, "range\t%.2f m\n", p.Range())
		fmt.Fprintf(w, "final speed\t%.2f m/s\n", p.FinalSpeed())
	} else {
		fmt.Fprintf(w, "still airborne after\t%.1f s\n", p.Time())
	}
	fmt.Fprintf(w, "samples\t%d\n", len(p.Trajectory()))
	w.Flush()
}

func altitudePlot(p *phys.Projectile, caption string) string {
	traj := p.Trajectory()
	ys := make([]float64, len(traj))
	for i, s := range traj {
		ys[i] = s.Y
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption))
}
