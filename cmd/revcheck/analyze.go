package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"revcheck.app/checker/common"
	"revcheck.app/checker/common/id"
	"revcheck.app/checker/core/config"
	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/extract"
	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/report"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type analyzeCmd struct {
	cfg config.Config

	format    string
	output    string
	scopes    []string
	rulesOnly bool
}

func newAnalyzeCmd(cfg config.Config) *analyzeCmd {
	return &analyzeCmd{cfg: cfg}
}

func (cmd *analyzeCmd) command() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Validate the comments of an original document against its revision",
		UsageText: "revcheck analyze [--format json|yaml] [--output <file>] [--scope <index>=<scope>] <original.docx> <revised.docx>",
		Description: `Extracts the comments from the original document, checks each one
against the revised document and writes a report.

The report is written to <original>-report.<format> unless --output is
given. Use --output - to print it.

Examples:
  revcheck analyze draft.docx final.docx
  revcheck analyze --format yaml --output - draft.docx final.docx
  revcheck analyze --scope 0=global --scope 2=local draft.docx final.docx`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "report format (json, yaml)",
				Value:       formatJSON,
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "report file, - for stdout",
				Destination: &cmd.output,
			},
			&cli.StringSliceFlag{
				Name:        "scope",
				Aliases:     []string{"s"},
				Usage:       "scope for a comment as <index>=<local|global|auto> (repeatable)",
				Destination: &cmd.scopes,
			},
			&cli.BoolFlag{
				Name:        "rules-only",
				Usage:       "skip the model oracle even when one is configured",
				Destination: &cmd.rulesOnly,
			},
		},
		Action: cmd.run,
	}
}

func (cmd *analyzeCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected an original and a revised document, got %d arguments", c.NArg())
	}
	if cmd.format != formatJSON && cmd.format != formatYAML {
		return fmt.Errorf("unsupported format %q", cmd.format)
	}
	scopes, err := parseScopes(cmd.scopes)
	if err != nil {
		return err
	}

	originalPath, revisedPath := c.Args().Get(0), c.Args().Get(1)

	original, err := extract.Open(ctx, originalPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", originalPath, err)
	}
	revised, err := extract.Open(ctx, revisedPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", revisedPath, err)
	}

	for index, scope := range scopes {
		if index >= len(original.Comments) || original.Comments[index].IsPlaceholder() {
			return fmt.Errorf("no comment at index %d", index)
		}
		original.Comments[index].UserScope = scope
	}

	var oracle brain.Oracle
	if !cmd.rulesOnly {
		oracle, err = brain.OracleFromConfig(cmd.cfg.Oracle)
		if err != nil {
			return err
		}
	}
	orchestrator := brain.NewOrchestrator(oracle)

	now := time.Now()
	session := &model.Session{
		ID:           id.NewString(),
		OriginalFile: filepath.Base(originalPath),
		RevisedFile:  filepath.Base(revisedPath),
		Original:     original,
		Revised:      revised,
		CreatedAt:    now,
	}
	session.Records = orchestrator.Analyze(ctx, original.Comments, original.FullText, revised.FullText)
	analyzedAt := time.Now()
	session.AnalyzedAt = &analyzedAt

	r, err := report.Build(session)
	if err != nil {
		return err
	}

	out, err := render(r, cmd.format)
	if err != nil {
		return err
	}

	dest := cmd.output
	if dest == "" {
		dest = common.ReportFileName(originalPath, cmd.format)
	}
	if err := write(dest, out, c.Root().Writer); err != nil {
		return err
	}

	slog.InfoContext(ctx, "analysis written",
		"output", dest,
		"oracle", orchestrator.OracleName(),
		"comments", r.Summary.TotalComments,
		"success_rate", r.Summary.SuccessRate)
	return nil
}

// parseScopes reads "<index>=<scope>" pairs.
func parseScopes(values []string) (map[int]model.UserScope, error) {
	scopes := make(map[int]model.UserScope, len(values))
	for _, v := range values {
		rawIndex, rawScope, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("scope %q must look like <index>=<scope>", v)
		}
		index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
		if err != nil || index < 0 {
			return nil, fmt.Errorf("scope %q: invalid comment index", v)
		}
		scope := model.UserScope(strings.ToLower(strings.TrimSpace(rawScope)))
		if !scope.Valid() {
			return nil, fmt.Errorf("scope %q: must be local, global or auto", v)
		}
		scopes[index] = scope
	}
	return scopes, nil
}

func render(r *report.Report, format string) ([]byte, error) {
	if format == formatYAML {
		return r.YAML()
	}
	return r.JSON()
}

func write(dest string, data []byte, stdout io.Writer) error {
	if dest == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
