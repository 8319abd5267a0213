package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"revcheck.app/checker/internal/docx"
	"revcheck.app/checker/internal/extract"
	"revcheck.app/checker/internal/intent"
)

func commentsCommand() *cli.Command {
	return &cli.Command{
		Name:      "comments",
		Usage:     "List the comments extracted from a document",
		UsageText: "revcheck comments <document.docx>",
		Description: `Prints one JSON object per comment, followed by the extraction
method that produced them (structured, inline, placeholder or none).`,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected one document")
			}
			doc, err := docx.Open(c.Args().First())
			if err != nil {
				return err
			}

			snap, method := extract.Snapshot(ctx, doc)
			enc := json.NewEncoder(c.Root().Writer)
			for _, comment := range snap.Comments {
				if err := enc.Encode(comment); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(c.Root().Writer, "method: %s\n", method)
			return err
		},
	}
}

func contractionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "contractions",
		Usage:     "Show the contractions found in text and their expansions",
		UsageText: "revcheck contractions <text>...",
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			for _, found := range intent.FindContractions(text) {
				if _, err := fmt.Fprintf(c.Root().Writer, "%s\t%s\n", found, intent.ExpandContraction(found)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
