// Command goldilocks is a small driver around the field and transform
// packages: it parses numeric literals into field elements and benchmarks
// the NTT at a chosen size.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/luxfi/goldilocks/field"
	"github.com/luxfi/goldilocks/ntt"
	"github.com/luxfi/goldilocks/sampling"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "goldilocks",
		Usage: "Goldilocks field arithmetic and NTT utilities",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse decimal or hex literals into field elements",
				ArgsUsage: "LITERAL...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("no literals given", 1)
					}
					for _, arg := range c.Args().Slice() {
						e, err := field.Parse(arg)
						if err != nil {
							log.Error().Err(err).Str("literal", arg).Msg("parse failed")
							return cli.Exit("", 1)
						}
						fmt.Printf("%s\tcanonical=%d\thex=0x%s\tdisplay=%s\n",
							arg, e.Value(), e.Hex(), e)
					}
					return nil
				},
			},
			{
				Name:  "bench",
				Usage: "time forward/inverse NTT round trips",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 1 << 12, Usage: "transform size (power of two)"},
					&cli.IntFlag{Name: "rounds", Value: 32, Usage: "timed rounds"},
				},
				Action: func(c *cli.Context) error {
					return runBench(log, c.Int("size"), c.Int("rounds"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runBench(log zerolog.Logger, size, rounds int) error {
	src, err := sampling.NewRandomSource()
	if err != nil {
		return err
	}
	data, err := src.Elements(size)
	if err != nil {
		return err
	}

	log.Info().Int("size", size).Int("rounds", rounds).Msg("benchmarking NTT round trips")

	samples := make([]float64, 0, rounds)
	for i := 0; i < rounds; i++ {
		start := time.Now()
		if err := ntt.Forward(data); err != nil {
			return err
		}
		if err := ntt.Inverse(data); err != nil {
			return err
		}
		samples = append(samples, float64(time.Since(start).Microseconds()))
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return err
	}
	stddev, err := stats.StandardDeviation(samples)
	if err != nil {
		return err
	}

	fmt.Printf("rounds=%d size=%d mean=%.1fus median=%.1fus stddev=%.1fus\n",
		rounds, size, mean, median, stddev)
	return nil
}
