package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/totaltranslate/internal/cli"
	"codeberg.org/snonux/totaltranslate/internal/testutil"
)

// offlineConfig keeps the command away from the network and the real history
func offlineConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	cli.SetDefaults(viper.GetViper())
	viper.Set("detect.url", "")
	viper.Set("history.path", filepath.Join(t.TempDir(), "history.db"))
}

func TestRunCommand_DetectArgs(t *testing.T) {
	offlineConfig(t)
	flags := cli.NewFlags()
	flags.Detect = true
	flags.NoHistory = true
	cmd := cli.CreateRootCommand(flags)

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = runCommand(cmd, []string{"Это", "просто", "тест"}, flags)
	})
	if err != nil {
		t.Fatalf("runCommand() error = %v", err)
	}
	if out != "ru\n" {
		t.Errorf("output = %q, want %q", out, "ru\n")
	}
}

func TestRunCommand_DetectStdin(t *testing.T) {
	offlineConfig(t)
	flags := cli.NewFlags()
	flags.Detect = true
	flags.NoHistory = true
	cmd := cli.CreateRootCommand(flags)
	cmd.SetIn(strings.NewReader("Привет мир\n"))

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = runCommand(cmd, nil, flags)
	})
	if err != nil {
		t.Fatalf("runCommand() error = %v", err)
	}
	if out != "ru\n" {
		t.Errorf("output = %q, want %q", out, "ru\n")
	}
}

func TestRunCommand_EmptyInput(t *testing.T) {
	offlineConfig(t)
	flags := cli.NewFlags()
	flags.NoHistory = true
	cmd := cli.CreateRootCommand(flags)
	cmd.SetIn(strings.NewReader("  \n"))

	if err := runCommand(cmd, nil, flags); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestInputText(t *testing.T) {
	cmd := cli.CreateRootCommand(cli.NewFlags())
	cmd.SetIn(strings.NewReader("from stdin"))

	if got, _ := inputText(cmd, []string{"Hello", "world"}); got != "Hello world" {
		t.Errorf("inputText(args) = %q", got)
	}
	if got, _ := inputText(cmd, nil); got != "from stdin" {
		t.Errorf("inputText(stdin) = %q", got)
	}
}
