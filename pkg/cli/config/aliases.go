package config

import (
	"log/slog"
	"os"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Aliases points to an optional YAML file overriding field aliases
type Aliases struct {
	Path string
}

// Flags returns CLI flags for Aliases configuration
func (a *Aliases) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aliases",
			Usage:       "YAML file with field alias lists (fields it omits keep the defaults)",
			Category:    "Normalization",
			Sources:     cli.EnvVars("ISSUEDASH_ALIASES"),
			Destination: &a.Path,
		},
	}
}

// Configure returns the alias lists to normalize with
func (a *Aliases) Configure() (*model.FieldAliases, error) {
	if a.Path == "" {
		return model.DefaultFieldAliases(), nil
	}
	return LoadAliasesFromFile(a.Path)
}

// LogValue returns structured log value
func (a Aliases) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", a.Path),
	)
}

// LoadAliasesFromFile loads alias lists from a YAML file
func LoadAliasesFromFile(path string) (*model.FieldAliases, error) {
	if path == "" {
		return nil, goerr.New("aliases file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "aliases file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read aliases file",
			goerr.V("path", path))
	}

	var aliases model.FieldAliases
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, goerr.Wrap(err, "failed to parse aliases YAML",
			goerr.V("path", path))
	}

	merged := aliases.WithDefaults()
	if err := merged.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid aliases",
			goerr.V("path", path))
	}

	return merged, nil
}
