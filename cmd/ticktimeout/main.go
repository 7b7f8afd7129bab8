package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/getsentry/raven-go"

	"ticktimeout/internal/log"
	"ticktimeout/internal/meta"
	"ticktimeout/internal/metrics"
	"ticktimeout/internal/tick"
	"ticktimeout/internal/timeout"
	"ticktimeout/internal/watchdog"
)

func main() {
	configPath := flag.String(
		"config",
		os.Getenv("TICKTIMEOUT_CONFIG"),
		"path to the configuration file on disk",
	)
	version := flag.Bool(
		"version",
		false,
		"print the compiled ticktimeout version SHA",
	)
	verbosity := flag.String(
		"verbosity",
		"warn",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	flag.Parse()

	// Report the compiled version and exit
	if *version {
		fmt.Printf("ticktimeout/%s\n", meta.VersionSHA)
		return
	}

	// Logging configuration; unknown names fall back to log.Error verbosity
	level, _ := log.ParseLevel(*verbosity)
	logger := log.NewConsoleLogger(level)
	logger.Debug("main: initialized logger: level=%v", level)

	// Parse application configuration
	logger.Debug("main: reading and parsing config: path=%s", *configPath)
	config, err := meta.ParseConfig(*configPath)
	if err != nil {
		panic(err)
	}

	// Configure error reporting
	reportErrors := config.Application != nil && config.Application.SentryDSN != ""
	if reportErrors {
		if err := raven.SetDSN(config.Application.SentryDSN); err != nil {
			panic(fmt.Errorf("main: invalid sentry DSN: err=%v", err))
		}
		raven.SetRelease(meta.VersionSHA)
	}

	// Configure metrics reporting
	hook := metrics.NewNoopWatchdogHook()

	if config.Metrics != nil && config.Metrics.Statsd != nil {
		logger.Info(
			"main: configuring statsd metrics reporting: addr=%s sample_rate=%f",
			config.Metrics.Statsd.Address,
			config.Metrics.Statsd.SampleRate,
		)

		if hook, err = metrics.NewAsyncStatsdWatchdogHook(
			config.Metrics.Statsd.Address,
			config.Metrics.Statsd.SampleRate,
			meta.VersionSHA,
		); err != nil {
			raven.CaptureErrorAndWait(err, nil)
			panic(err)
		}
	} else {
		logger.Warn("main: no metrics output engine specified; disabling metrics")
	}

	// Configure the process-wide tick source
	logger.Info("main: starting millisecond tick source: start=%d", config.Tick.Start)
	timeout.SetTickSource(tick.NewMonotonicSource(config.Tick.Start))

	watches := make([]watchdog.Watch, 0, len(config.Watches))
	for _, watch := range config.Watches {
		logger.Info(
			"main: configuring watch: name=%s timeout=%v auto_reset=%v",
			watch.Name,
			watch.Timeout,
			watch.AutoReset,
		)

		watches = append(watches, watchdog.Watch{
			Name:      watch.Name,
			Timeout:   timeout.Duration(watch.Timeout),
			AutoReset: watch.AutoReset,
		})
	}

	wd := watchdog.New(timeout.Default(), watches, hook, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop polling on interrupt
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("main: received signal; stopping: signal=%v", sig)
		cancel()
	}()

	// Each line on standard input kicks the watch it names
	go func() {
		if err := kickFromReader(os.Stdin, wd, logger); err != nil {
			logger.Error("main: error reading kicks: err=%v", err)
		}
	}()

	onExpiry := func(expiry watchdog.Expiry) {
		if reportErrors {
			raven.CaptureMessage(
				fmt.Sprintf("watchdog: watch expired: %s", expiry),
				map[string]string{"watch": expiry.Name},
			)
		}
	}

	logger.Info(
		"main: polling watches: count=%d interval=%v",
		len(watches),
		config.PollInterval,
	)

	if err := wd.Run(ctx, config.PollInterval, onExpiry); err != nil && err != context.Canceled {
		panic(err)
	}
}
