package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scieloorg/oai-pmh/models/common"
	"github.com/scieloorg/oai-pmh/server"
	"github.com/scieloorg/oai-pmh/util"
	"github.com/scieloorg/oai-pmh/util/cli"
)

const shutdownTimeout = 10 * time.Second

func main() {
	opts, flags, err := cli.ParseOpts("oai_provider", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.PrintHelp {
		printHelp()
		flags.PrintDefaults()
		os.Exit(0)
	}

	// If anything goes wrong during setup, this panics.
	config, err := common.LoadConfig(opts.ConfigDir, opts.ConfigName)
	if err != nil {
		panic(err)
	}
	if opts.Port != 0 {
		config.HTTPPort = opts.Port
	}
	oaiContext, err := common.NewContextFromConfig(config)
	if err != nil {
		panic(err)
	}

	if config.PidFile != "" {
		if err := util.AcquirePidFile(config.PidFile); err != nil {
			oaiContext.Logger.Fatal(err)
		}
		defer util.DeletePidFile(config.PidFile)
	}

	srv := server.NewServer(oaiContext.Repository, oaiContext.Logger, basePath(config.Repository.BaseURL))

	// Shut down cleanly on Control-C or kill, so the pid file goes away.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			oaiContext.Logger.Errorf("Shutdown: %v", err)
		}
	}()

	if err := srv.Start(config.HTTPPort); err != nil {
		oaiContext.Logger.Errorf("Server stopped: %v", err)
	}
	oaiContext.Logger.Info("oai_provider exiting")
}

func basePath(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "/"
	}
	return u.Path
}

func printHelp() {
	message := `
oai_provider serves the SciELO article collection over OAI-PMH 2.0.

It answers GET and POST requests on / and on the path of REPO_BASEURL,
exposes Prometheus metrics on /metrics and a health check on /healthz.
Records come from the source named by DATA_SOURCE: the article catalog
REST API (catalog), a catalog snapshot in S3 (s3) or an empty in-memory
store (memory).
`
	fmt.Println(message)
	fmt.Println(cli.EnvMessage)
}
