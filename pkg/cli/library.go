package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/cli/config"
	"github.com/osgb-lab/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdLibrary() *cli.Command {
	return &cli.Command{
		Name:  "library",
		Usage: "Inspect question library definitions",
		Commands: []*cli.Command{
			cmdLibraryValidate(),
		},
	}
}

func cmdLibraryValidate() *cli.Command {
	var libraryCfg config.Library

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate library definition files and print the question tree",
		Flags:   libraryCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(libraryCfg.Paths()) == 0 {
				return goerr.New("at least one --library file is required")
			}

			registry, err := libraryCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "library validation failed")
			}

			logging.Default().Info("Library validation passed", "tools", len(registry.List()))

			toolColor := color.New(color.FgCyan, color.Bold)
			topicColor := color.New(color.FgGreen)
			for _, tool := range registry.List() {
				toolColor.Printf("%s (%s): %d questions\n", tool.Name, tool.ID, tool.QuestionCount())
				for _, cat := range tool.Categories {
					fmt.Printf("  %s\n", cat.Name)
					for _, topic := range cat.Topics {
						topicColor.Printf("    %s\n", topic.Name)
						for _, q := range topic.Questions {
							fmt.Printf("      - [%s] %s\n", q.ID, q.Text)
						}
					}
				}
			}
			return nil
		},
	}
}
