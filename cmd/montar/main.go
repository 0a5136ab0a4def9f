package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/montar/internal/bootstrap"
	"github.com/MKhiriev/montar/internal/logger"
	"github.com/MKhiriev/montar/internal/server"
	"github.com/MKhiriev/montar/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run starts Montar with the configuration path taken from args and returns
// the process exit code. A nil inst installs the logger process-wide.
func run(args []string, stdout, stderr io.Writer, inst *logger.Installer) int {
	opts := []bootstrap.Option{bootstrap.WithConsole(stdout)}
	if inst != nil {
		opts = append(opts, bootstrap.WithInstaller(inst))
	}

	cfg, log, err := bootstrap.Run(args, opts...)
	if err != nil {
		return fail(stderr, err)
	}
	defer log.Close()

	logBuildInfo(log)
	log.Debug().Str("address", cfg.Address).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := server.New(*cfg, log).Start(ctx); err != nil {
		return fail(stderr, err)
	}

	return bootstrap.ExitOK
}

// fail prints the diagnostic for err and returns its exit code.
func fail(stderr io.Writer, err error) int {
	d := bootstrap.Diagnose(err)
	_ = d.Write(stderr)
	return d.Code
}

func logBuildInfo(log *logger.Logger) {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	log.Debug().Msgf("Build version: %s", info.Version())
	log.Debug().Msgf("Build date: %s", info.Date())
	log.Debug().Msgf("Build commit: %s", info.Commit())
}
