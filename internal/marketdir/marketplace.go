package marketdir

// Marketplace describes one deployment of a marketplace program. Entries are
// keyed by (ProgramID, InstanceID); a single ProgramID may map to multiple
// instances.
type Marketplace struct {
	DisplayName string `validate:"required"` // human-readable marketplace name
	ProgramID   string `validate:"required"` // on-chain program id
	InstanceID  string // instance id disambiguating deployments of the same program, may be blank
	SiteURL     string // marketplace website
}

// Directory is a static in-memory lookup table from (programID, instanceID)
// to marketplace metadata. It is built once at startup and read-only
// afterwards.
type Directory struct {
	byProgram map[string][]Marketplace
}

// NewDirectory builds a Directory from a marketplace list, preserving the
// order of entries sharing a program id.
func NewDirectory(marketplaces []Marketplace) Directory {
	byProgram := make(map[string][]Marketplace, len(marketplaces))
	for _, marketplace := range marketplaces {
		byProgram[marketplace.ProgramID] = append(byProgram[marketplace.ProgramID], marketplace)
	}

	return Directory{byProgram: byProgram}
}

// Resolve looks up marketplace metadata for a (programID, instanceID) pair.
//
// If exactly one entry matches programID it is returned regardless of
// instanceID; this tolerates records that carry a missing or blank instance
// id. Otherwise the entry whose instance id matches exactly is returned, or
// false when none matches.
func (d Directory) Resolve(programID, instanceID string) (Marketplace, bool) {
	matches := d.byProgram[programID]
	if len(matches) == 1 {
		return matches[0], true
	}

	for _, marketplace := range matches {
		if marketplace.InstanceID == instanceID {
			return marketplace, true
		}
	}

	return Marketplace{}, false
}

// Len returns the number of marketplace entries in the directory.
func (d Directory) Len() int {
	var n int
	for _, matches := range d.byProgram {
		n += len(matches)
	}

	return n
}
