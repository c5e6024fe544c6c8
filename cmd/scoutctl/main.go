// Command scoutctl generates and replays scouting content offline, printing YAML.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
)

const (
	rngFlag       = "rng"
	outputFlag    = "output"
	stdoutCLIName = "-"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func engineFor(source string) (*scouting.Engine, error) {
	src, err := random.SourceFor(source)
	if err != nil {
		return nil, err
	}
	return scouting.NewEngine(random.NewGenerator(src)), nil
}

func writeResult(outputLocation string, v interface{}) error {
	out, err := openOutput(outputLocation)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()
	return encodeYAML(out, v)
}

func main() {
	var rngSource string
	var outputLocation = stdoutCLIName

	var gen generateOptions
	var adv advanceOptions
	var inputLocation string
	var academyBudget, scoutingBudget int64

	app := &cli.App{
		Name:    "scoutctl",
		Usage:   "Generate, replay and size youth scouting batches",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        rngFlag,
				Usage:       "Random source: \"legacy\" or \"pcg\"",
				Value:       random.SourceLegacy,
				Destination: &rngSource,
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "The location to write the YAML result. Can be a file path or \"-\" (for stdout).",
				Value:       stdoutCLIName,
				Destination: &outputLocation,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Draw a batch of scouting reports",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "week", Usage: "Week the batch is drawn in", Destination: &gen.Week},
					&cli.IntFlag{Name: "count", Usage: "Reports to draw (default: budget's reports per cycle)", Destination: &gen.Count},
					&cli.Int64Flag{Name: "budget", Usage: "Scouting budget", Destination: &gen.Budget},
					&cli.Int64Flag{Name: "seed", Usage: "Base seed", Value: 1, Destination: &gen.Seed},
					&cli.BoolFlag{Name: "reveal", Usage: "Include hidden attributes and potentials", Destination: &gen.Reveal},
				},
				Action: func(cCtx *cli.Context) error {
					engine, err := engineFor(rngSource)
					if err != nil {
						return err
					}
					return writeResult(outputLocation, generateReports(engine, gen))
				},
			},
			{
				Name:  "advance",
				Usage: "Replay scouting cycles over revealed reports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "input",
						Aliases:     []string{"i"},
						Usage:       "YAML produced by \"generate --reveal\", or \"-\" for stdin",
						Required:    true,
						Destination: &inputLocation,
					},
					&cli.IntFlag{Name: "week", Usage: "Week the first cycle resolves in", Value: scouting.ScoutingCycleWeeks, Destination: &adv.Week},
					&cli.IntFlag{Name: "cycles", Usage: "Cycles to replay", Value: 1, Destination: &adv.Cycles},
					&cli.Int64Flag{Name: "seed", Usage: "Base seed", Value: 1, Destination: &adv.Seed},
					&cli.BoolFlag{Name: "continue", Usage: "Request continued scouting on every open report", Destination: &adv.ContinueAll},
				},
				Action: func(cCtx *cli.Context) error {
					engine, err := engineFor(rngSource)
					if err != nil {
						return err
					}
					var in io.Reader = os.Stdin
					if inputLocation != stdoutCLIName {
						f, err := os.Open(inputLocation)
						if err != nil {
							return fmt.Errorf("opening input: %w", err)
						}
						defer f.Close()
						in = f
					}
					reports, err := readReports(in)
					if err != nil {
						return err
					}
					return writeResult(outputLocation, advanceReports(engine, reports, adv))
				},
			},
			{
				Name:  "capacity",
				Usage: "Show academy slots and scouting output for a pair of budgets",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "academy-budget", Destination: &academyBudget},
					&cli.Int64Flag{Name: "scouting-budget", Destination: &scoutingBudget},
				},
				Action: func(cCtx *cli.Context) error {
					return writeResult(outputLocation, capacityFor(academyBudget, scoutingBudget))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
