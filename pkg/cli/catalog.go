package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/cli/config"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

func cmdCatalog() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect the external risk catalog",
		Commands: []*cli.Command{
			cmdCatalogList(),
			cmdCatalogCheck(),
		},
	}
}

func cmdCatalogList() *cli.Command {
	var catalogCfg config.Catalog
	var query string
	var category string
	var limit int
	var offset int

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Filter entries by hazard, risk or topic text",
			Destination: &query,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Filter entries by group label",
			Destination: &category,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of entries to print",
			Value:       20,
			Destination: &limit,
		},
		&cli.IntFlag{
			Name:        "offset",
			Usage:       "Number of entries to skip",
			Destination: &offset,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "list",
		Usage: "Search and print catalog entries",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			svc := catalogCfg.Configure()
			if svc == nil {
				return goerr.New("catalog-dir is required")
			}

			page, err := svc.Search(ctx, interfaces.CatalogQuery{
				Query:    query,
				Category: category,
				Limit:    limit,
				Offset:   offset,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to search catalog")
			}

			header := color.New(color.FgCyan, color.Bold)
			id := color.New(color.FgYellow)
			group := color.New(color.FgGreen)

			header.Printf("%d of %d entries\n", len(page.Results), page.Total)
			for _, entry := range page.Results {
				id.Printf("#%d ", entry.ID)
				group.Printf("[%s / %s] ", entry.Group, entry.Topic)
				fmt.Printf("%s\n", entry.Risk)
				if entry.Hazard != "" {
					fmt.Printf("    tehlike: %s\n", entry.Hazard)
				}
				if entry.Measure != "" {
					fmt.Printf("    önlem:   %s\n", entry.Measure)
				}
			}
			if page.HasMore {
				fmt.Printf("... more entries available, use --offset %d\n", offset+len(page.Results))
			}
			return nil
		},
	}
}

func cmdCatalogCheck() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "check",
		Usage: "Load the catalog and report its contents",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			svc := catalogCfg.Configure()
			if svc == nil {
				return goerr.New("catalog-dir is required")
			}

			if err := svc.Reload(ctx); err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			page, err := svc.Search(ctx, interfaces.CatalogQuery{Limit: 1})
			if err != nil {
				return goerr.Wrap(err, "failed to count catalog entries")
			}
			categories, err := svc.Categories(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list categories")
			}

			ok := color.New(color.FgGreen, color.Bold)
			ok.Printf("Catalog loaded: %d entries in %d categories\n", page.Total, len(categories))
			for _, cat := range categories {
				fmt.Printf("  - %s\n", cat)
			}
			return nil
		},
	}
}
