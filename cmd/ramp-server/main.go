package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jahpay/ramp-aggregator/pkg/app"
	"github.com/jahpay/ramp-aggregator/pkg/app/api"
	"github.com/jahpay/ramp-aggregator/pkg/config"
)

type options struct {
	Config string `short:"c" long:"config" env:"RAMP_CONFIG" default:"config.yaml" description:"Path to configuration file"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ramp server exited: %v\n", err)
		os.Exit(1)
	}
}
