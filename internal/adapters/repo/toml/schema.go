package toml

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int          `toml:"version"`
	UpdatedAt time.Time    `toml:"updated_at"`
	Lines     []lineSchema `toml:"lines"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported cart schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type lineSchema struct {
	ProductID string `toml:"product_id"`
	Quantity  int    `toml:"quantity"`
}
