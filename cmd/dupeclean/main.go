package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	reportAdapter "github.com/bft-labs/dupeclean/internal/adapters/report"
	"github.com/bft-labs/dupeclean/internal/adapters/term"
	"github.com/bft-labs/dupeclean/internal/cliconfig"
	"github.com/bft-labs/dupeclean/internal/domain"
	"github.com/bft-labs/dupeclean/internal/pipeline"
	"github.com/bft-labs/dupeclean/internal/ports"
	"github.com/bft-labs/dupeclean/internal/remove"
	"github.com/bft-labs/dupeclean/internal/retain"
	"github.com/bft-labs/dupeclean/internal/scan"
)

const helpDescription = `
Find files with byte-identical content under a directory and reclaim the
wasted space safely.

Highlights:
  - Streams file content in fixed-size blocks, so memory stays flat no
    matter how large the files are.
  - Deterministic keep policies: first, last, oldest, newest.
  - Reversible by default: duplicates go to a trash directory you can
    restore from at any time. Permanent deletion requires confirmation.
  - Dry-run mode reports every intended action without touching anything.
`

var exampleUsage = strings.TrimSpace(`
  dupeclean ~/photos
  dupeclean ~/photos --extensions .jpg,.png --min-size 1048576
  dupeclean ~/downloads --delete --dry-run
  dupeclean ~/downloads --delete --keep newest --mode permanent
  dupeclean /data --algorithm md5 --report dupes.json
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "dupeclean <path>",
		Short:   "Find and safely remove duplicate files",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.dupeclean/config.toml),
			// then env, then flag overrides win.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			cfg.Root = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Verbose {
				cliconfig.SetVerbose()
				log = cliconfig.Logger()
			}

			algorithm, err := scan.ParseAlgorithm(cfg.Algorithm)
			if err != nil {
				return err
			}
			policy, err := retain.ParsePolicy(cfg.Keep)
			if err != nil {
				return err
			}
			mode, err := remove.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}

			renderer := term.NewRenderer(os.Stdout)
			renderer.Detailed = cfg.Detailed
			sinks := []ports.ReportSink{renderer}
			if cfg.ReportPath != "" {
				sinks = append(sinks, reportAdapter.NewJSONFileSink(cfg.ReportPath))
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Debug().Str("root", cfg.Root).Str("algorithm", algorithm.Name).
				Str("keep", policy.String()).Str("mode", mode.String()).
				Bool("dry_run", cfg.DryRun).Msg("configuration")

			res, err := pipeline.Run(ctx, pipeline.Options{
				Root: cfg.Root,
				Filter: scan.Filter{
					Extensions: cfg.Extensions,
					MinSize:    cfg.MinSize,
					MaxSize:    cfg.MaxSize,
				},
				Algorithm: algorithm,
				BlockSize: cfg.BlockSize,
				Workers:   cfg.Workers,
				Policy:    policy,
				Remove:    cfg.Delete,
				Mode:      mode,
				TrashDir:  cfg.TrashDir,
				DryRun:    cfg.DryRun,
				Confirmer: term.NewConfirmer(os.Stdin, os.Stdout),
				Sinks:     sinks,
				Log:       log,
			})
			if errors.Is(err, domain.ErrConfirmationDeclined) {
				color.Yellow("Deletion cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			if cfg.Delete {
				stats := res.RemovalStats
				if cfg.DryRun {
					color.Yellow("DRY RUN - no files were modified (%d would be removed)", stats.DryRun)
				} else {
					color.Green("Processed %d duplicate files", stats.Succeeded())
					if mode == remove.ModeTrash && stats.Trashed > 0 {
						fmt.Printf("Removed files moved to: %s\n", cfg.TrashDir)
					}
				}
				if stats.Failed > 0 {
					color.Red("%d removals failed, files left untouched", stats.Failed)
				}
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.dupeclean/config.toml)")

	root.Flags().StringSliceVarP(&cfg.Extensions, "extensions", "e", cfg.Extensions, "file extensions to include (e.g. .jpg,.png; default: all)")
	root.Flags().Int64Var(&cfg.MinSize, "min-size", cfg.MinSize, "minimum file size in bytes")
	root.Flags().Int64Var(&cfg.MaxSize, "max-size", cfg.MaxSize, "maximum file size in bytes (0 = no limit)")

	root.Flags().StringVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm, "hash algorithm: md5, sha1 or sha256")
	root.Flags().IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "hash read block size in bytes")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel hashing workers (0 = number of CPUs)")

	root.Flags().StringVar(&cfg.Keep, "keep", cfg.Keep, "which duplicate to keep: first, last, oldest or newest")
	root.Flags().StringVar(&cfg.Mode, "mode", cfg.Mode, "removal mode: trash or permanent")

	root.Flags().BoolVarP(&cfg.Delete, "delete", "d", cfg.Delete, "remove duplicate files (scan-only without this)")
	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "show what would be removed without removing")
	root.Flags().StringVar(&cfg.TrashDir, "trash-dir", cfg.TrashDir, "trash directory (default: ~/.dupeclean-trash)")

	root.Flags().StringVarP(&cfg.ReportPath, "report", "r", cfg.ReportPath, "save a JSON report to this path")
	root.Flags().BoolVar(&cfg.Detailed, "detailed", cfg.Detailed, "show digests in the group listing")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("dupeclean")
		os.Exit(1)
	}
}
