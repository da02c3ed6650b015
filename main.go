package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/deauthe/student_results_go/cli"
	"github.com/deauthe/student_results_go/config"
	"github.com/deauthe/student_results_go/util"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize logger
	logger, closeLog, err := util.NewLogger(util.LoggerOpts{
		Prefix: cfg.LogPrefix,
		Dir:    cfg.LogDir,
		Level:  cfg.LogLevel,
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger = log.With(logger, "session", uuid.New().String())

	for _, w := range cfg.Warnings {
		level.Warn(logger).Log("msg", "config", "warning", w)
	}

	startTime := time.Now()
	level.Info(logger).Log("msg", "Starting session")

	session := cli.NewSession(cli.SessionOpts{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
	})

	report, err := session.Run()
	if err != nil {
		if errors.Is(err, cli.ErrInputClosed) {
			level.Warn(logger).Log("msg", "session aborted", "err", err)
			fmt.Println("\nNo more input. Exiting.")
		} else {
			level.Error(logger).Log("msg", "session failed", "err", err)
			fmt.Printf("Error: %v\n", err)
		}
		closeLog()
		os.Exit(1)
	}

	util.LogWithTiming(logger, startTime, "Session for %s finished with status %s", report.RegistrationNumber, report.Status)
}
