//go:build ignore

// Issues a wallet session token for calling the ramp API locally.
// Run with: go run scripts/generate-jwt.go -c config.yaml 0xYourWallet

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jahpay/ramp-aggregator/pkg/auth"
	"github.com/jahpay/ramp-aggregator/pkg/config"
)

type options struct {
	Config string `short:"c" long:"config" default:"config.yaml" description:"Path to configuration file"`
	Args   struct {
		Wallet string `positional-arg-name:"wallet" required:"yes"`
	} `positional-args:"yes"`
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

	if !auth.ValidateEVMAddress(opts.Args.Wallet) {
		fmt.Fprintf(os.Stderr, "invalid wallet address: %s\n", opts.Args.Wallet)
		os.Exit(1)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "auth.jwt_secret is empty, the server would reject this token after a restart")
	}

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create issuer: %v\n", err)
		os.Exit(1)
	}

	token, expires, err := tokens.Issue(auth.NormalizeAddress(opts.Args.Wallet))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# expires %s\n", expires.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Printf("export RAMP_TOKEN=%s\n", token)
	fmt.Println(`# curl -H "Authorization: Bearer $RAMP_TOKEN" localhost:8080/ramp/transactions`)
}
