package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"minsh.dev/minsh/core/config"
	"minsh.dev/minsh/core/logger"
	"minsh.dev/minsh/core/shell"
	"minsh.dev/minsh/core/vos"
)

var cfgPath string

var motdColor = color.New(color.FgCyan, color.Bold)

var exitCode int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "A small interactive command shell.",
	Long: `minsh is a minimal interactive shell: builtin commands, search-path
resolution and external command execution, one flat command per line.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(afero.NewOsFs(), cfgPath)
		if err != nil {
			return err
		}
		if !color.NoColor && cfg.Prompt == config.DefaultPrompt {
			cfg.Prompt = config.DefaultColorPrompt
		}

		s := shell.New(vos.NewOS(), vos.NewStdIO(), cfg)

		if cfg.LogFile != "" {
			fd, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			defer fd.Close()
			s.Events = logger.NewJSONLines(fd)
		}

		if cfg.Motd != "" {
			motdColor.Fprintln(cmd.OutOrStdout(), cfg.Motd)
		}

		exitCode = s.Run()
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
