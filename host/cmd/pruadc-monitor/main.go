package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"pruadc/host/monitor"
	"pruadc/host/serial"
)

func main() {
	cfg := monitor.DefaultConfig()
	var cfgPath string
	var noTrigger bool

	root := &cobra.Command{
		Use:   "pruadc-monitor",
		Short: "Trigger the co-processor ADC sampler and print its sample batches",
		Example: `  pruadc-monitor
  pruadc-monitor --device /dev/ttyACM0 --trigger-device "" --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = monitor.DefaultConfigPath()
			}
			if cfgFile != "" && monitor.FileExists(cfgFile) {
				if err := monitor.LoadFile(cfgFile, &cfg, changed); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := monitor.NewLogger(os.Stderr, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			port, err := serial.Open(&serial.Config{Device: cfg.Device, Baud: cfg.Baud})
			if err != nil {
				return err
			}
			defer port.Close()

			if !noTrigger {
				// An empty trigger device means the bridge takes the trigger
				// on the data port itself
				if cfg.TriggerDevice == "" || cfg.TriggerDevice == cfg.Device {
					err = monitor.Trigger(port, []byte(cfg.Trigger))
				} else {
					err = sendTrigger(cfg)
				}
				if err != nil {
					return err
				}
				log.Info().Str("payload", cfg.Trigger).Msg("trigger sent")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				// Unblock the pending read
				<-ctx.Done()
				port.Close()
			}()

			handle, err := monitor.NewWriterHandler(cmd.OutOrStdout(), cfg.Format)
			if err != nil {
				return err
			}
			m := monitor.New(port, log)
			runErr := m.Run(ctx, cfg.Batches, handle)

			st := m.Stats()
			log.Info().
				Uint64("batches", st.Batches).
				Uint64("samples", st.Samples).
				Int32("min", int32(st.Min)).
				Int32("max", int32(st.Max)).
				Msg("done")
			return runErr
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "config file (default $HOME/.pruadc/monitor.toml)")
	f.StringVar(&cfg.Device, "device", cfg.Device, "device carrying sample batches")
	f.StringVar(&cfg.TriggerDevice, "trigger-device", cfg.TriggerDevice, "device the trigger message is written to")
	f.StringVar(&cfg.Trigger, "trigger", cfg.Trigger, "trigger message payload")
	f.BoolVar(&noTrigger, "no-trigger", false, "do not send a trigger message")
	f.IntVar(&cfg.Baud, "baud", cfg.Baud, "baud rate for serial devices")
	f.Uint64Var(&cfg.Batches, "batches", cfg.Batches, "stop after this many batches (0 = run until interrupted)")
	f.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or csv")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func sendTrigger(cfg monitor.Config) error {
	tp, err := serial.Open(&serial.Config{Device: cfg.TriggerDevice, Baud: cfg.Baud})
	if err != nil {
		return err
	}
	defer tp.Close()
	return monitor.Trigger(tp, []byte(cfg.Trigger))
}
