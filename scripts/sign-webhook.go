//go:build ignore

// Signs a webhook payload the way a provider does and prints a curl command
// that delivers it to a local server.
// Run with: go run scripts/sign-webhook.go -c config.yaml -p cashramp payload.json

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/webhook"
)

type options struct {
	Config   string `short:"c" long:"config" default:"config.yaml" description:"Path to configuration file"`
	Provider string `short:"p" long:"provider" required:"yes" description:"Provider name"`
	URL      string `short:"u" long:"url" default:"http://localhost:8080" description:"Server base URL"`
	Args     struct {
		Payload string `positional-arg-name:"payload.json" required:"yes"`
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

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fail("failed to load config: %v", err)
	}

	var spec *webhook.Spec
	for _, s := range webhook.Specs(cfg.Providers) {
		if s.Provider == opts.Provider {
			spec = &s
			break
		}
	}
	if spec == nil {
		fail("unknown provider %q", opts.Provider)
	}
	if spec.Secret == "" {
		fail("providers.%s.webhook_secret is empty", opts.Provider)
	}

	raw, err := os.ReadFile(opts.Args.Payload)
	if err != nil {
		fail("failed to read payload: %v", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		fail("payload is not valid JSON: %v", err)
	}

	fmt.Printf("curl -X POST %s/webhooks/%s \\\n", opts.URL, spec.Provider)
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -H '%s: %s' \\\n", spec.SignatureHeader, webhook.Sign(spec.Secret, compact.Bytes()))
	fmt.Printf("  -d '%s'\n", compact.String())
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
