package config

import (
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/service/catalog"
	"github.com/osgb-lab/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Catalog holds CLI flags for the external risk catalog
type Catalog struct {
	dir string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-dir",
			Usage:       "Directory holding the external risk catalog JSON files",
			Sources:     cli.EnvVars("RISKDESK_CATALOG_DIR"),
			Destination: &c.dir,
		},
	}
}

// Dir returns the configured catalog directory
func (c *Catalog) Dir() string {
	return c.dir
}

// Configure builds the catalog service. It returns nil when no directory
// is configured; catalog-backed features are then disabled.
func (c *Catalog) Configure() interfaces.Catalog {
	if c.dir == "" {
		logging.Default().Info("Catalog directory not configured, catalog features are disabled")
		return nil
	}
	logging.Default().Info("Using external risk catalog", "dir", c.dir)
	return catalog.New(c.dir)
}
