// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/phuslu/log"
	"googlemaps.github.io/maps"
	"gopkg.in/urfave/cli.v1"

	"decide-restaurant/decider/config"
	"decide-restaurant/decider/geo"
	"decide-restaurant/decider/pick"
	"decide-restaurant/decider/places"
	"decide-restaurant/decider/present"
	"decide-restaurant/decider/util"
)

var version = "v1.0.0"

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "address, a",
		Usage: "address where you are searching for",
	},
	cli.StringFlag{
		Name:  "distance, d",
		Usage: "distance in miles from the address",
	},
	cli.IntFlag{
		Name:  "price_level, p",
		Usage: "price level to look for, 1 (cheapest) to 4 (most expensive)",
	},
	cli.Float64Flag{
		Name:  "rating, r",
		Usage: "minimum rating to look for, 1 (lowest) to 5 (highest)",
	},
	cli.BoolFlag{
		Name:  "list, l",
		Usage: "list all restaurants found",
	},
}

func action(c *cli.Context) error {
	logger := log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: "2006-01-02 15:04:05",
		Writer:     &log.ConsoleWriter{ColorOutput: true, EndWithMessage: true},
	}

	address := c.GlobalString("address")
	if address == "" {
		cli.ShowAppHelp(c)
		return cli.NewExitError("an address is required", 1)
	}

	constraints := places.Constraints{}
	if c.GlobalIsSet("price_level") {
		p := c.GlobalInt("price_level")
		if p < 1 || p > 4 {
			return cli.NewExitError("price_level must be between 1 and 4", 1)
		}
		constraints.PriceLevel = &p
	}
	if c.GlobalIsSet("rating") {
		r := c.GlobalFloat64("rating")
		if r < 1 || r > 5 {
			return cli.NewExitError("rating must be between 1 and 5", 1)
		}
		constraints.MinRating = &r
	}

	cfg, err := config.FromEnvironment()
	if err != nil {
		logger.Error().Err(err).Msg("API key not found, exiting")
		return cli.NewExitError("", 1)
	}

	radius := util.DefaultRadiusMeters
	if d := c.GlobalString("distance"); d != "" {
		meters, err := util.MilesToMeters(d)
		if err != nil {
			logger.Error().Err(err).Msg("bad distance")
			return cli.NewExitError("", 1)
		}
		radius = float64(meters)
	}

	start := time.Now()
	ctx := context.Background()

	resolver, err := geo.NewResolver(cfg.GoogleMapsKey, maps.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	if err != nil {
		logger.Error().Err(err).Msg("error setting up geocoder")
		return cli.NewExitError("", 1)
	}
	coords, area, err := resolver.Resolve(ctx, address)
	if err != nil {
		logger.Error().Err(err).Msg("error converting address to coordinates")
		return cli.NewExitError("", 1)
	}
	logger.Info().Str("address", address).Str("area", area).Msg("finding restaurants")

	client := places.NewClient(cfg, logger)
	candidates, err := client.Search(ctx, places.Query{
		Location:     coords,
		RadiusMeters: radius,
		Constraints:  constraints,
	})
	if errors.Is(err, places.ErrNoRestaurants) {
		logger.Info().Msg("no restaurants found")
		logger.Info().Dur("elapsed", time.Since(start)).Msg("completed")
		return nil
	}
	if err != nil {
		logger.Error().Err(err).Msg("error finding restaurants")
		return cli.NewExitError("", 1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pick.Shuffle(rng, candidates)
	choice, err := pick.One(rng, candidates)
	if err != nil {
		logger.Error().Err(err).Msg("error selecting a restaurant")
		return cli.NewExitError("", 1)
	}

	p := &present.Presenter{Out: os.Stdout}
	p.Pick(choice)
	if c.GlobalBool("list") {
		p.Listing(coords, candidates)
	}

	fmt.Println()
	logger.Info().Dur("elapsed", time.Since(start)).Msg("completed")
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "decide-restaurant"
	app.Usage = "help decide on a restaurant"
	app.Version = version
	app.Flags = flags
	app.Action = action

	// app.Run exits itself for cli.ExitError values returned by the action.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
