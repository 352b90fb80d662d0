package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/totaltranslate/internal/cli"
	"codeberg.org/snonux/totaltranslate/internal/models"
	"codeberg.org/snonux/totaltranslate/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	config := cli.LoadConfig()
	log := cli.NewLogger(config)

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), "")
		return lister.ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	proc, err := processor.NewProcessor(ctx, flags, config, log)
	if err != nil {
		return err
	}
	defer proc.Close()

	switch {
	case flags.ArchiveHistory:
		return proc.ArchiveHistory()
	case flags.ShowHistory > 0:
		return proc.ShowHistory(ctx, flags.ShowHistory)
	case flags.BatchFile != "":
		err = proc.ProcessBatch(ctx)
	case flags.ImageFile != "":
		err = proc.ProcessImage(ctx, flags.ImageFile)
	default:
		text, readErr := inputText(cmd, args)
		if readErr != nil {
			return readErr
		}
		if flags.Detect {
			return proc.Detect(ctx, text)
		}
		err = proc.ProcessText(ctx, text)
	}
	if err != nil {
		return err
	}

	if flags.ShowStats {
		proc.PrintStats()
	}
	return nil
}

// inputText joins the arguments, or reads stdin when there are none
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
