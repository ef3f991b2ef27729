package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/technik/ranger"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a motor described by a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, _ := cmd.Flags().GetString("scenario")
		verbose, _ := cmd.Flags().GetBool("verbose")
		return simulate(scenario, verbose)
	},
}

func init() {
	simulateCmd.Flags().String("scenario", "", "scenario TOML or YAML file")
	simulateCmd.MarkFlagRequired("scenario")
}

func simulate(scenario string, verbose bool) error {
	v := viper.New()
	v.SetConfigFile(scenario)
	v.SetDefault("simulation.step", 0.01)
	v.SetDefault("export.csv", true)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%s: %w", scenario, err)
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "scenario", scenario)

	motor, err := readMotor(v)
	if err != nil {
		return fmt.Errorf("%s: %w", scenario, err)
	}
	step := v.GetFloat64("simulation.step")
	duration := v.GetFloat64("simulation.duration")
	if !v.IsSet("simulation.duration") {
		duration = 1
		if sm, ok := motor.(*ranger.SolidMotor); ok {
			// Simulate a little past burn out by default.
			duration = sm.Profile().BurnTime() + 1
		}
	}
	conf := ranger.ExportConfig{
		Filename:  v.GetString("export.filename"),
		OutputDir: v.GetString("export.output_path"),
		AsCSV:     v.GetBool("export.csv"),
		Summary:   v.GetBool("export.summary"),
		Timestamp: v.GetBool("export.timestamp"),
	}
	if conf.Filename == "" {
		conf.Filename = strings.TrimSuffix(filepath.Base(scenario), filepath.Ext(scenario))
	}
	if verbose {
		logger.Log("level", "debug", "subsys", "conf", "motor", motor, "step(s)", step, "duration(s)", duration, "export", fmt.Sprintf("%+v", conf))
	}
	_, err = ranger.NewSimulation(motor, step, duration, logger, conf).Run()
	return err
}

// readMotor builds the motor from, in order of precedence, motor.profile, motor.knots
// or motor.thrust and motor.duration.
func readMotor(v *viper.Viper) (ranger.Thruster, error) {
	switch {
	case v.IsSet("motor.profile"):
		p, err := ranger.LoadProfile(v.GetString("motor.profile"))
		if err != nil {
			return nil, err
		}
		return ranger.NewSolidMotorFromProfile(p), nil
	case v.IsSet("motor.knots"):
		var points [][]float64
		if err := v.UnmarshalKey("motor.knots", &points); err != nil {
			return nil, err
		}
		knots := make([]ranger.Knot, len(points))
		for i, pt := range points {
			if len(pt) != 2 {
				return nil, fmt.Errorf("motor.knots #%d: expected [time, thrust], got %v", i, pt)
			}
			knots[i] = ranger.Knot{Time: pt[0], Thrust: pt[1]}
		}
		return ranger.NewSolidMotor(knots)
	case v.IsSet("motor.thrust"):
		return ranger.NewConstantMotor(v.GetFloat64("motor.thrust"), v.GetFloat64("motor.duration"))
	}
	return nil, fmt.Errorf("no motor defined: set motor.profile, motor.knots or motor.thrust")
}
