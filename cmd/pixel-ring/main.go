package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/callebjorkell/pixel-ring/internal/accel"
	"github.com/callebjorkell/pixel-ring/internal/clock"
	"github.com/callebjorkell/pixel-ring/internal/demo"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	"github.com/callebjorkell/pixel-ring/internal/pattern"
	"github.com/callebjorkell/pixel-ring/internal/tilt"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("pixel-ring", "Pixel ring and tilt demo")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Path to the YAML configuration.").Short('c').Default("config.yaml").String()
	start      = app.Command("start", "Start the demo loop")
	version    = app.Command("version", "Show current version.")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case start.FullCommand():
		if err := startDemo(); err != nil {
			log.Fatal(err)
		}
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

var buildTime, buildVersion string

func showVersion() {
	fmt.Println(versionLine())
}

func versionLine() string {
	v := "dev"
	if buildTime != "" && buildVersion != "" {
		v = fmt.Sprintf("%s (built: %s)", buildVersion, buildTime)
	}
	return fmt.Sprintf("pixel-ring %s, tilt strategies: %s", v, strings.Join(tilt.StrategyNames(), ", "))
}

// shutdownContext is cancelled by the first of signals. Later signals get their default
// handling again, so a second Ctrl-C kills a cycle that is still running.
func shutdownContext(signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), signals...)
	go func() {
		<-ctx.Done()
		log.Info("Shutting down after the current cycle, signal again to abort")
		stop()
	}()
	return ctx, stop
}

func startDemo() error {
	conf, err := readConfig(*configFile)
	if err != nil {
		return err
	}
	palette, err := conf.Palette()
	if err != nil {
		return err
	}
	strategy, err := tilt.StrategyByName(conf.Tilt.Strategy)
	if err != nil {
		return err
	}
	log.Infof("Brightness %.2f, tilt strategy %s", conf.Brightness, conf.Tilt.Strategy)

	strip, err := neopixel.NewStrip(neopixel.RingSize)
	if err != nil {
		return err
	}
	defer strip.Close()

	sensor, err := accel.Open(conf.Sensor.Bus, conf.Sensor.Address)
	if err != nil {
		return err
	}
	defer sensor.Close()

	clk := clock.Real{}
	loop := demo.NewLoop(
		pattern.NewRenderer(strip, clk, conf.Brightness),
		tilt.NewMapper(strip, conf.Brightness, strategy),
		sensor,
		clk,
		palette,
	)

	ctx, stop := shutdownContext(syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	log.Info("Done...")
	return err
}
