package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olivier-w/dotsheet/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the dotsheet command. run receives the validated
// configuration.
func newRootCmd(run func(*config.Config) error) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string
	cmd := &cobra.Command{
		Use:           "dotsheet",
		Short:         "Grab and drag a sheet of springs with the mouse.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			if useWindow, _ := cmd.Flags().GetBool("window"); useWindow {
				v.Set("display.backend", config.BackendWindow)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./dotsheet.yaml)")
	flags.BoolP("window", "w", false, "open a desktop window instead of drawing in the terminal")
	flags.String("release", "keep", "velocity of a released point: keep or fling")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"drag.release":    "release",
		"logger.log_file": "log-file",
		"logger.level":    "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}
	return cmd
}

// readConfig reads the config file and DOTSHEET_* environment variables.
// A missing default config file is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dotsheet")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DOTSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
