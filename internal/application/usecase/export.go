package usecase

import (
	"context"
	"fmt"
	"strings"
)

// reportTarget descreve para onde e em quais formatos um relatório é exportado.
type reportTarget struct {
	name    string
	types   []string
	dir     string
	bucket  string
	prefix  string
	profile string
	label   string
	toCSV   func(name, dir string) ([]string, error)
	toJSON  func(name, dir string) (string, error)
	toPDF   func(name, dir string) (string, error)
}

type exportOutcome struct {
	format string
	paths  []string
	err    error
}

// exportReports exporta o relatório em cada formato pedido e publica os arquivos no S3
// quando um bucket foi configurado. Falhas são registradas e não interrompem os demais formatos.
func (uc *DashboardUseCase) exportReports(ctx context.Context, target reportTarget) []string {
	if target.name == "" || len(target.types) == 0 {
		return nil
	}

	progress := uc.console.ProgressWithTotal("Exporting "+target.label, len(target.types))
	var outcomes []exportOutcome
	for _, reportType := range target.types {
		format := strings.ToLower(strings.TrimSpace(reportType))
		outcome := exportOutcome{format: strings.ToUpper(format)}

		switch format {
		case "csv":
			outcome.paths, outcome.err = target.toCSV(target.name, target.dir)
		case "json":
			path, err := target.toJSON(target.name, target.dir)
			outcome.paths, outcome.err = []string{path}, err
		case "pdf":
			path, err := target.toPDF(target.name, target.dir)
			outcome.paths, outcome.err = []string{path}, err
		default:
			outcome.err = fmt.Errorf("unknown report type %q, expected csv, json or pdf", reportType)
		}

		outcomes = append(outcomes, outcome)
		progress.Increment()
	}
	progress.Stop()

	var written []string
	for _, o := range outcomes {
		if o.err != nil {
			uc.console.LogError("Failed to export %s to %s: %s", target.label, o.format, o.err)
			continue
		}
		for _, path := range o.paths {
			uc.console.LogSuccess("Successfully exported %s to %s: %s", target.label, o.format, path)
		}
		written = append(written, o.paths...)
	}

	uc.publishReports(ctx, target, written)
	return written
}

// publishReports envia os arquivos gerados para o bucket configurado.
func (uc *DashboardUseCase) publishReports(ctx context.Context, target reportTarget, paths []string) {
	if target.bucket == "" || len(paths) == 0 || uc.storage == nil {
		return
	}

	store := uc.storage(target.bucket, target.prefix, target.profile)
	for _, path := range paths {
		location, err := store.UploadReport(ctx, path)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", path, err)
			continue
		}
		uc.console.LogSuccess("Uploaded to %s", location)
	}
}
