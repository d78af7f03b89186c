package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configGlobal bool
	configForce  bool
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration sysmon would run with, after merging the
config file, SYSMON_* environment variables and flags.

Examples:
  sysmon config
  SYSMON_INTERVAL=2s sysmon config
  sysmon config set processes 30
  sysmon config init --global`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one key in the config file",
	Long: `Set one key in the config file, keeping its comments and layout.
The file is created if it does not exist yet.

Keys: interval, processes, poll_interval, join_timeout, color, log_file`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.SettableKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configTarget(true)
		if err != nil {
			return err
		}
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print which config file is in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(none, using defaults)")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write ~/.config/sysmon/config.yaml instead of ./.sysmon.yaml")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file without asking")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "edit ~/.config/sysmon/config.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

// confirmOverwrite asks whether an existing config file may be replaced.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

func initConfig(cmd *cobra.Command) error {
	path, err := configTarget(false)
	if err != nil {
		return err
	}

	force := configForce
	if _, err := os.Stat(path); err == nil && !force {
		if !isTerminal(os.Stdin) {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite it")
		}
		ok, err := confirmOverwrite(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		force = true
	}

	if err := config.WriteDefault(path, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func showConfig(cmd *cobra.Command) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path != "" {
		fmt.Fprintf(out, "# %s\n", path)
	} else {
		fmt.Fprintln(out, "# defaults (no config file found)")
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(cfg)
}

// configTarget picks the file init and set write to: --config, then
// --global, then an existing file (set only), then ./.sysmon.yaml.
func configTarget(preferExisting bool) (string, error) {
	if cfgFile != "" {
		return config.ExpandTilde(cfgFile), nil
	}
	if configGlobal {
		path := config.GlobalPath()
		if path == "" {
			return "", errors.New(errors.ErrConfig,
				"Cannot locate your home directory",
				"Pass an explicit path with --config")
		}
		return path, nil
	}
	if preferExisting {
		if path, err := config.Find(""); err == nil && path != "" {
			return path, nil
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Pass an explicit path with --config")
	}
	return filepath.Join(cwd, config.ConfigFileName), nil
}
