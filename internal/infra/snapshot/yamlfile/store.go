// Package yamlfile persists the marketplace snapshot as an ordered YAML
// list, regenerated at startup and loaded to build the run's directory.
package yamlfile

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/flarebot/saleswatch/internal/marketdir"

	"gopkg.in/yaml.v3"
)

// marketplaceRecord is the on-disk shape of one snapshot entry.
type marketplaceRecord struct {
	Name       string `yaml:"name"`
	ProgramID  string `yaml:"programId"`
	InstanceID string `yaml:"instanceId"`
	Site       string `yaml:"site"`
}

// store reads and writes the marketplace snapshot file.
type store struct {
	path string
}

// Compile-time assertion to ensure store implements the SnapshotStore interface.
var _ marketdir.SnapshotStore = (*store)(nil)

// NewStore creates a SnapshotStore backed by the YAML file at path.
func NewStore(path string) *store {
	return &store{
		path: path,
	}
}

// SaveSnapshot implements the marketdir.SnapshotStore interface. It
// overwrites the snapshot file with the given ordered marketplace list.
func (s *store) SaveSnapshot(ctx context.Context, marketplaces []marketdir.Marketplace) error {
	records := make([]marketplaceRecord, len(marketplaces))
	for i, marketplace := range marketplaces {
		records[i] = marketplaceRecord{
			Name:       marketplace.DisplayName,
			ProgramID:  marketplace.ProgramID,
			InstanceID: marketplace.InstanceID,
			Site:       marketplace.SiteURL,
		}
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}

// LoadSnapshot implements the marketdir.SnapshotStore interface. It returns
// marketdir.ErrNoSnapshotFound when the snapshot file does not exist.
func (s *store) LoadSnapshot(ctx context.Context) ([]marketdir.Marketplace, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = marketdir.ErrNoSnapshotFound
		}

		return nil, err
	}

	var records []marketplaceRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	marketplaces := make([]marketdir.Marketplace, len(records))
	for i, record := range records {
		marketplaces[i] = marketdir.Marketplace{
			DisplayName: record.Name,
			ProgramID:   record.ProgramID,
			InstanceID:  record.InstanceID,
			SiteURL:     record.Site,
		}
	}

	return marketplaces, nil
}
