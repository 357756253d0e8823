// Kiosk runs the symptom triage guide on a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/linnemanlabs/go-core/cfg"
	"github.com/linnemanlabs/go-core/log"
	v "github.com/linnemanlabs/go-core/version"

	gc "github.com/linnemanlabs/guardian/internal/cfg"
	"github.com/linnemanlabs/guardian/internal/console"
	"github.com/linnemanlabs/guardian/internal/kiosk"
	"github.com/linnemanlabs/guardian/internal/kiosk/memstore"
	"github.com/linnemanlabs/guardian/internal/notify/slack"
)

const appName = "guardian"
const component = "kiosk"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	v.AppName = appName
	v.Component = component

	var (
		content gc.Content
		logCfg  log.Config
	)

	// packages register on a stdlib FlagSet; cobra picks them up through pflag
	gofs := flag.NewFlagSet(component, flag.ContinueOnError)
	content.RegisterFlags(gofs)
	logCfg.RegisterFlags(gofs)

	cmd := &cobra.Command{
		Use:           "kiosk",
		Short:         "Interactive symptom triage guide",
		Long:          "Kiosk walks a user from a symptom to the right facility and first-aid steps,\nand sends safety check-ins to family.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			syncGoFlags(cmd.Flags(), gofs)
			cfg.FillFromEnv(gofs, "GUARDIAN_", func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format+"\n", args...)
			})
			if err := errors.Join(content.Validate(), logCfg.Validate()); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), content, logCfg)
		},
	}
	cmd.Flags().AddGoFlagSet(gofs)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version+build information",
		Run: func(cmd *cobra.Command, _ []string) {
			vi := v.Get()
			fmt.Fprintf(cmd.OutOrStdout(),
				"%s (%s) %s (commit=%s, commit_date=%s, build_id=%s, build_date=%s, go=%s, dirty=%v)\n",
				vi.AppName, vi.Component, vi.Version, vi.Commit, vi.CommitDate, vi.BuildId, vi.BuildDate, vi.GoVersion,
				vi.VCSDirty != nil && *vi.VCSDirty,
			)
		},
	})

	return cmd
}

// syncGoFlags marks flags given on the command line as set on the stdlib
// FlagSet so env values do not override them.
func syncGoFlags(pfs *pflag.FlagSet, gofs *flag.FlagSet) {
	pfs.Visit(func(f *pflag.Flag) {
		if gofs.Lookup(f.Name) != nil {
			_ = gofs.Set(f.Name, f.Value.String())
		}
	})
}

func run(parent context.Context, content gc.Content, logCfg log.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg, err := log.New(logCfg.ToOptions(v.AppName))
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	L := lg.With("component", component)
	ctx = log.WithContext(ctx, L)

	var notifier kiosk.Notifier
	if content.CheckInWebhookURL != "" {
		notifier = slack.New(content.CheckInWebhookURL, L)
		L.Info(ctx, "notifier enabled", "type", "slack")
	}

	svc := kiosk.NewService(memstore.New(), L, kiosk.Hooks{}, notifier, kiosk.Content{
		Site:         content.Site,
		Announcement: content.Announcement,
	})

	err = console.Run(ctx, svc, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
