package dataset

// Store is the immutable in-memory dataset for one process. Accessors return
// the shared backing slices; callers must copy before reordering.
type Store struct {
	companies    []CompanyRecord
	applications []ApplicationRecord
	advisors     []AdvisorRecord
	partners     []PartnerRecord
	cycles       []CycleSnapshotRecord
	sectors      []PortfolioSectorRecord
	operations   []OperationalHealthRecord
	fingerprint  string
}

// Snapshot is a literal description of a Store, used by tests and fixtures.
type Snapshot struct {
	Companies    []CompanyRecord
	Applications []ApplicationRecord
	Advisors     []AdvisorRecord
	Partners     []PartnerRecord
	Cycles       []CycleSnapshotRecord
	Sectors      []PortfolioSectorRecord
	Operations   []OperationalHealthRecord
}

// NewStore builds a Store from already-validated records.
func NewStore(s Snapshot) *Store {
	return &Store{
		companies:    s.Companies,
		applications: s.Applications,
		advisors:     s.Advisors,
		partners:     s.Partners,
		cycles:       s.Cycles,
		sectors:      s.Sectors,
		operations:   s.Operations,
		fingerprint:  "snapshot",
	}
}

func (s *Store) Companies() []CompanyRecord { return s.companies }
func (s *Store) Applications() []ApplicationRecord { return s.applications }
func (s *Store) Advisors() []AdvisorRecord { return s.advisors }
func (s *Store) Partners() []PartnerRecord { return s.partners }
func (s *Store) Cycles() []CycleSnapshotRecord { return s.cycles }
func (s *Store) Sectors() []PortfolioSectorRecord { return s.sectors }
func (s *Store) Operations() []OperationalHealthRecord { return s.operations }

// Fingerprint identifies the dataset contents; it changes whenever any
// source file changes.
func (s *Store) Fingerprint() string { return s.fingerprint }

// Counts reports the number of rows per dataset, logged at startup.
func (s *Store) Counts() map[Kind]int {
	return map[Kind]int{
		KindFounderSuccess:    len(s.companies),
		KindApplications:      len(s.applications),
		KindAdvisors:          len(s.advisors),
		KindPartnerROI:        len(s.partners),
		KindCycleSnapshot:     len(s.cycles),
		KindPortfolioTrends:   len(s.sectors),
		KindOperationalHealth: len(s.operations),
	}
}
