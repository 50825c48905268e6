package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

const defaultConfigName = ".sie4parse.toml"

// configKeys maps config file keys to the flags they provide defaults for.
var configKeys = map[string]string{
	"sort_by_date":   "sort-date",
	"input_encoding": "input-encoding",
	"csv_encoding":   "csv-encoding",
	"sie_encoding":   "sie-encoding",
	"csv_delimiter":  "delimiter",
	"csv_crlf":       "crlf",
}

// applyConfig reads the TOML config file at path and uses its values for
// every flag of cmd that was not given on the command line. With an empty
// path the default location is tried and may be missing.
func applyConfig(cmd *cobra.Command, path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, defaultConfigName)
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("unable to load config: %w", err)
	}
	slog.Debug("loaded config", "path", path)

	keys := tree.Keys()
	slices.Sort(keys)
	for _, key := range keys {
		flagName, ok := configKeys[key]
		if !ok {
			slog.Warn("unknown config key", "path", path, "key", key)
			continue
		}
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || flag.Changed {
			continue
		}
		if err := cmd.Flags().Set(flagName, fmt.Sprint(tree.Get(key))); err != nil {
			return fmt.Errorf("%s: invalid %s: %w", path, key, err)
		}
	}
	return nil
}
