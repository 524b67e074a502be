// Package source has adapters that read grouped street-tree counts.
package source

import (
	"fmt"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// New returns the record source selected by the configuration.
func New(cfg *contract.Config) (contract.RecordSource, error) {
	switch cfg.Source {
	case schema.SocrataSource:
		return NewSocrataSource(cfg.SourceURL, cfg.SourceLimit, cfg.SourceTimeout, cfg.AppToken), nil
	case schema.FileSource:
		return NewFileSource(cfg.SourceFile), nil
	case schema.SQLiteSource, schema.MySQLSource, schema.PostgreSQLSource:
		src, err := NewSQLSource(cfg.Source, cfg.SourceDBConnect, cfg.SourceTable, cfg.SourceLimit)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unsupported source: %s", cfg.Source)
	}
}
