package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mcotrim/advertencia/internal/config"
	"github.com/mcotrim/advertencia/pkg/export"
	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
)

var (
	exportRecordPath string
	exportOutDir     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta um registro YAML diretamente para PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := buildLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		rec, err := loadRecord(exportRecordPath)
		if err != nil {
			return err
		}
		if errs := rec.Validate(); errs != nil {
			for field, msgs := range errs {
				for _, msg := range msgs {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
				}
			}
			return fmt.Errorf("registro incompleto em %s", exportRecordPath)
		}

		outDir := cfg.Export.OutputDir
		if exportOutDir != "" {
			outDir = exportOutDir
		}

		path, err := runExport(cmd.Context(), cfg, log, rec, outDir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportRecordPath, "record", "advertencia.yaml", "arquivo YAML com o registro")
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "diretório de saída (padrão da configuração)")
}

// loadRecord reads a record file and replays the masked fields through the
// reducer so a hand-written file gets the same formatting the form applies.
func loadRecord(path string) (record.WarningRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.WarningRecord{}, fmt.Errorf("ler registro %s: %w", path, err)
	}
	var rec record.WarningRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return record.WarningRecord{}, fmt.Errorf("interpretar registro %s: %w", path, err)
	}
	return normalizeRecord(rec), nil
}

func normalizeRecord(rec record.WarningRecord) record.WarningRecord {
	for _, f := range []struct{ name, value string }{
		{record.FieldCompanyCNPJ, rec.CompanyCNPJ},
		{record.FieldEmployeeCPF, rec.EmployeeCPF},
		{record.FieldDescription, rec.Description},
	} {
		rec = record.Apply(rec, record.SetField{Name: f.name, Value: f.value})
	}
	return rec
}

// runExport drives a one-shot render → capture → assemble and writes the
// PDF under outDir, returning the full path.
func runExport(ctx context.Context, cfg config.Config, log *zap.Logger, rec record.WarningRecord, outDir string) (string, error) {
	exporter, err := export.New(
		export.WithLogger(log),
		export.WithCaptureOptions(export.CaptureOptions{
			ViewportWidth: cfg.Export.ViewportWidth,
			Scale:         cfg.Export.Scale,
			Quality:       cfg.Export.Quality,
		}),
		export.WithRasterizer(export.NewChromeRasterizer(export.WithChromeBin(cfg.Export.ChromeBin))),
	)
	if err != nil {
		return "", err
	}

	res, err := exporter.Export(ctx, rec, render.Options{})
	if err != nil {
		return "", err
	}
	return res.WriteFile(outDir)
}
