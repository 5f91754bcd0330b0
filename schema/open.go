package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/schemakit/internal/config"
	"github.com/joshuapare/schemakit/internal/dump"
	"github.com/joshuapare/schemakit/internal/gamedata"
	"github.com/joshuapare/schemakit/schema/index"
)

// DumpExt is the file extension of binary schema dumps.
const DumpExt = ".schm"

// OpenTable loads a schema table from a binary dump (.schm) or a gamedata
// file (.toml, .json).
func OpenTable(path string) (*index.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case DumpExt:
		return dump.Open(path)
	case ".toml", ".json":
		return gamedata.Load(path)
	default:
		return nil, fmt.Errorf("schema: unsupported schema file %q", path)
	}
}

// Open loads the schema named by cfg and returns a resolver over it
// configured with cfg's failure policy and cache capacity.
func Open(cfg config.Config) (*Resolver, error) {
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("schema: no schema_path configured")
	}
	policy, err := ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return nil, err
	}
	t, err := OpenTable(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	return NewResolver(t,
		WithFailurePolicy(policy),
		WithCacheCapacity(cfg.CacheCapacity),
	), nil
}
