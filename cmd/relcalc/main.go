package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/skorva/relcalc/internal/config"
	"github.com/skorva/relcalc/internal/decimal"
	"github.com/skorva/relcalc/internal/format"
	"github.com/skorva/relcalc/internal/maneuver"
	"github.com/skorva/relcalc/internal/physics"
	"github.com/skorva/relcalc/internal/units"
)

var (
	digits     int
	configFile string
	preset     string
	places     int
	// journey inputs
	accelG     float64
	distanceLY float64
	tauYears   float64
	// particle inputs
	velocityC float64
	velocity2 float64
	massKG    float64
	frequency float64
	receding  bool
	// interval inputs
	t1, x1 float64
	t2, x2 float64
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: time.Kitchen,
	})))

	rootCmd := &cobra.Command{
		Use:   "relcalc",
		Short: "arbitrary-precision special relativity calculator",
	}
	rootCmd.PersistentFlags().IntVar(&digits, "digits", 0, "significant digits (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset journey")
	rootCmd.PersistentFlags().IntVar(&places, "places", 4, "decimal places to print")

	flipburnCmd := &cobra.Command{
		Use:   "flipburn",
		Short: "two-phase accelerate/decelerate journey",
		RunE:  runFlipBurn,
	}
	flipburnCmd.Flags().Float64Var(&accelG, "accel-g", config.DefaultAccelG, "proper acceleration (g)")
	flipburnCmd.Flags().Float64Var(&distanceLY, "distance-ly", config.DefaultDistanceLY, "distance (light-years)")

	fallCmd := &cobra.Command{
		Use:   "fall",
		Short: "single full burn over a distance",
		RunE:  runFall,
	}
	fallCmd.Flags().Float64Var(&accelG, "accel-g", config.DefaultAccelG, "proper acceleration (g)")
	fallCmd.Flags().Float64Var(&distanceLY, "distance-ly", config.DefaultDistanceLY, "distance (light-years)")

	velocityCmd := &cobra.Command{
		Use:   "velocity",
		Short: "velocity and distance after a proper-time burn",
		RunE:  runVelocity,
	}
	velocityCmd.Flags().Float64Var(&accelG, "accel-g", config.DefaultAccelG, "proper acceleration (g)")
	velocityCmd.Flags().Float64Var(&tauYears, "tau-years", config.DefaultTauYears, "proper time (years)")

	rapidityCmd := &cobra.Command{
		Use:   "rapidity",
		Short: "rapidity for a velocity",
		RunE:  runRapidity,
	}
	rapidityCmd.Flags().Float64Var(&velocityC, "velocity-c", config.DefaultVelocityC, "velocity (fraction of c)")

	gammaCmd := &cobra.Command{
		Use:   "gamma",
		Short: "Lorentz factor and length contraction for a velocity",
		RunE:  runGamma,
	}
	gammaCmd.Flags().Float64Var(&velocityC, "velocity-c", config.DefaultVelocityC, "velocity (fraction of c)")

	addvelCmd := &cobra.Command{
		Use:   "addvel",
		Short: "relativistic velocity addition",
		RunE:  runAddVel,
	}
	addvelCmd.Flags().Float64Var(&velocityC, "v1-c", 0.5, "first velocity (fraction of c)")
	addvelCmd.Flags().Float64Var(&velocity2, "v2-c", 0.5, "second velocity (fraction of c)")

	dopplerCmd := &cobra.Command{
		Use:   "doppler",
		Short: "relativistic Doppler shift for light",
		RunE:  runDoppler,
	}
	dopplerCmd.Flags().Float64Var(&frequency, "frequency", config.DefaultFrequency, "emitted frequency (Hz)")
	dopplerCmd.Flags().Float64Var(&velocityC, "velocity-c", config.DefaultVelocityC, "velocity (fraction of c)")
	dopplerCmd.Flags().BoolVar(&receding, "receding", false, "source moving away")

	momentumCmd := &cobra.Command{
		Use:   "momentum",
		Short: "four-momentum and invariant mass",
		RunE:  runMomentum,
	}
	momentumCmd.Flags().Float64Var(&massKG, "mass", config.DefaultMassKG, "rest mass (kg)")
	momentumCmd.Flags().Float64Var(&velocityC, "velocity-c", config.DefaultVelocityC, "velocity (fraction of c)")

	intervalCmd := &cobra.Command{
		Use:   "interval",
		Short: "spacetime interval between two events",
		RunE:  runInterval,
	}
	intervalCmd.Flags().Float64Var(&t1, "t1", 0, "first event time (s)")
	intervalCmd.Flags().Float64Var(&x1, "x1", 0, "first event position (m)")
	intervalCmd.Flags().Float64Var(&t2, "t2", 1, "second event time (s)")
	intervalCmd.Flags().Float64Var(&x2, "x2", 0, "second event position (m)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset journeys",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(flipburnCmd, fallCmd, velocityCmd, rapidityCmd, gammaCmd,
		addvelCmd, dopplerCmd, momentumCmd, intervalCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and flag overrides in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (try: relcalc presets)", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if digits > 0 {
		cfg.Digits = digits
	}
	return cfg, nil
}

func engine() (*physics.Relativity, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	ctx, err := cfg.Context()
	if err != nil {
		return nil, nil, err
	}
	return physics.New(ctx), cfg, nil
}

func journeyInputs(rel *physics.Relativity) (accel, dist decimal.Value) {
	ctx := rel.Context()
	accel = units.Gravities(ctx.FromFloat64(accelG)).Value()
	dist = units.LightYears(ctx.FromFloat64(distanceLY)).Value()
	return accel, dist
}

func printRows(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	w.Flush()
}

func fixed(v decimal.Value) string {
	return format.Fixed(v, places)
}

func runFlipBurn(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("accel-g") {
		accelG = cfg.Journey.AccelG
	}
	if !cmd.Flags().Changed("distance-ly") {
		distanceLY = cfg.Journey.DistanceLY
	}
	accel, dist := journeyInputs(rel)
	res, err := maneuver.FlipAndBurn(rel, accel, dist)
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"proper time (years)", fixed(units.Seconds(res.ProperTime).InYears())},
		{"coord time (years)", fixed(units.Seconds(res.CoordTime).InYears())},
		{"peak velocity (m/s)", fixed(res.PeakVelocity)},
		{"peak velocity (c)", format.Significant(units.MetersPerSecond(res.PeakVelocity).AsFractionOfC(), places, '9')},
		{"peak Lorentz factor", fixed(res.PeakLorentz)},
	})
	return nil
}

func runFall(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("accel-g") {
		accelG = cfg.Journey.AccelG
	}
	if !cmd.Flags().Changed("distance-ly") {
		distanceLY = cfg.Journey.DistanceLY
	}
	accel, dist := journeyInputs(rel)
	res, err := maneuver.Fall(rel, accel, dist)
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"proper time (years)", fixed(units.Seconds(res.ProperTime).InYears())},
		{"coord time (years)", fixed(units.Seconds(res.CoordTime).InYears())},
		{"impact velocity (m/s)", fixed(res.ImpactVelocity)},
		{"impact velocity (c)", format.Significant(units.MetersPerSecond(res.ImpactVelocity).AsFractionOfC(), places, '9')},
	})
	return nil
}

func runVelocity(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("accel-g") {
		accelG = cfg.Journey.AccelG
	}
	if !cmd.Flags().Changed("tau-years") {
		tauYears = cfg.Journey.TauYears
	}
	ctx := rel.Context()
	accel := units.Gravities(ctx.FromFloat64(accelG)).Value()
	tau := units.Years(ctx.FromFloat64(tauYears)).Value()

	v, err := rel.RelativisticVelocity(accel, tau)
	if err != nil {
		return err
	}
	d, err := rel.RelativisticDistance(accel, tau)
	if err != nil {
		return err
	}
	coord, err := rel.CoordinateTime(accel, tau)
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"velocity (m/s)", fixed(v)},
		{"velocity (c)", format.Significant(units.MetersPerSecond(v).AsFractionOfC(), places, '9')},
		{"distance (ly)", fixed(units.Meters(d).InLightYears())},
		{"coord time (years)", fixed(units.Seconds(coord).InYears())},
	})
	return nil
}

func runRapidity(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("velocity-c") {
		velocityC = cfg.Particle.VelocityC
	}
	v, err := units.FractionOfC(rel.Context().FromFloat64(velocityC))
	if err != nil {
		return err
	}
	phi, err := rel.RapidityFromVelocity(v.Value())
	if err != nil {
		return err
	}
	back, err := rel.VelocityFromRapidity(phi)
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"rapidity", fixed(phi)},
		{"velocity (m/s)", fixed(back)},
	})
	return nil
}

func runGamma(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("velocity-c") {
		velocityC = cfg.Particle.VelocityC
	}
	ctx := rel.Context()
	v, err := units.FractionOfC(ctx.FromFloat64(velocityC))
	if err != nil {
		return err
	}
	gamma, err := rel.LorentzFactor(v.Value())
	if err != nil {
		return err
	}
	meter, err := rel.LengthContraction(ctx.FromInt64(1), v.Value())
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"Lorentz factor", fixed(gamma)},
		{"1 m contracts to (m)", fixed(meter)},
	})
	return nil
}

func runAddVel(cmd *cobra.Command, args []string) error {
	rel, _, err := engine()
	if err != nil {
		return err
	}
	ctx := rel.Context()
	v1, err := units.FractionOfC(ctx.FromFloat64(velocityC))
	if err != nil {
		return err
	}
	v2, err := units.FractionOfC(ctx.FromFloat64(velocity2))
	if err != nil {
		return err
	}
	sum, err := rel.AddVelocities(v1.Value(), v2.Value())
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"combined velocity (m/s)", fixed(sum)},
		{"combined velocity (c)", format.Significant(units.MetersPerSecond(sum).AsFractionOfC(), places, '9')},
	})
	return nil
}

func runDoppler(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("frequency") {
		frequency = cfg.Particle.Frequency
	}
	if !cmd.Flags().Changed("velocity-c") {
		velocityC = cfg.Particle.VelocityC
	}
	ctx := rel.Context()
	v, err := units.FractionOfC(ctx.FromFloat64(velocityC))
	if err != nil {
		return err
	}
	shifted, err := rel.DopplerShift(ctx.FromFloat64(frequency), v.Value(), !receding)
	if err != nil {
		return err
	}
	printRows([][2]string{
		{"emitted (Hz)", fixed(ctx.FromFloat64(frequency))},
		{"observed (Hz)", fixed(shifted)},
	})
	return nil
}

func runMomentum(cmd *cobra.Command, args []string) error {
	rel, cfg, err := engine()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("mass") {
		massKG = cfg.Particle.MassKG
	}
	if !cmd.Flags().Changed("velocity-c") {
		velocityC = cfg.Particle.VelocityC
	}
	ctx := rel.Context()
	v, err := units.FractionOfC(ctx.FromFloat64(velocityC))
	if err != nil {
		return err
	}
	fm, err := rel.NewFourMomentum(units.Kilograms(ctx.FromFloat64(massKG)).Value(), v.Value())
	if err != nil {
		return err
	}
	energy := units.Joules(fm.Energy)
	momentum := units.KilogramMetersPerSecond(fm.Momentum)
	rest := rel.InvariantMass(energy.Value(), momentum.Value())
	printRows([][2]string{
		{"energy (J)", fixed(energy.Value())},
		{"momentum (kg·m/s)", fixed(momentum.Value())},
		{"invariant mass (kg)", fixed(rest)},
	})
	return nil
}

func runInterval(cmd *cobra.Command, args []string) error {
	rel, _, err := engine()
	if err != nil {
		return err
	}
	ctx := rel.Context()
	a := physics.Event{T: ctx.FromFloat64(t1), X: ctx.FromFloat64(x1)}
	b := physics.Event{T: ctx.FromFloat64(t2), X: ctx.FromFloat64(x2)}
	squared := rel.IntervalSquared1D(a, b)
	if err := squared.Err(); err != nil {
		return err
	}
	kind := physics.Classify(squared)
	rows := [][2]string{
		{"separation", kind.String()},
		{"interval squared", fixed(squared)},
	}
	if kind != physics.Spacelike {
		rows = append(rows, [2]string{"interval", fixed(rel.SpacetimeInterval1D(a, b))})
	}
	printRows(rows)
	return nil
}
