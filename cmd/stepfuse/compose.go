package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arolek/stepfuse/internal/driver"
	"github.com/arolek/stepfuse/internal/emit"
)

func newComposeCmd(log *logrus.Logger) *cobra.Command {
	var (
		outPath    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "compose <assembly.json>",
		Short: "Compose an assembly tree into one STEP exchange file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			treePath := args[0]

			tree, err := loadAssemblyTree(treePath)
			if err != nil {
				return fmt.Errorf("loading assembly tree: %w", err)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			resolver := driver.FileResolver{Root: filepath.Dir(treePath)}
			meta := cfg.metadata(filepath.Base(outPath), time.Now().UTC().Format(time.RFC3339))

			model, warnings, err := driver.Compose(tree, resolver.Resolve, meta, log)
			if err != nil {
				return fmt.Errorf("composing: %w", err)
			}

			lastRun = &runSummary{
				AssemblyPath: treePath,
				OutputPath:   outPath,
				Warnings:     warnings,
				ComposedAt:   time.Now().UTC(),
			}

			out := os.Stdout
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := emit.Write(model, out); err != nil {
				return fmt.Errorf("writing exchange file: %w", err)
			}

			for _, w := range warnings {
				log.WithField("warning_kind", w.Kind).Warn(w.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output path, or - for stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML file with FILE_NAME defaults")

	return cmd
}
