package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// File names of the static artifacts inside the dataset filesystem.
const (
	FileFounderSuccess    = "mart_founder_success.json"
	FileApplications      = "mart_applications.json"
	FileAdvisors          = "mart_advisors.json"
	FilePartnerROI        = "mart_partner_roi.json"
	FileCycleSnapshot     = "mart_cycle_snapshot.json"
	FilePortfolioTrends   = "mart_portfolio_trends.json"
	FileOperationalHealth = "mart_operational_health.json"
)

// ValidationError reports the first invalid record of a dataset.
type ValidationError struct {
	Dataset Kind
	Index   int
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset %s: record %d: %v", e.Dataset, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidator returns the validator used for every dataset row.
func NewValidator(now func() time.Time) *validator.Validate {
	if now == nil {
		now = time.Now
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		app := sl.Current().Interface().(ApplicationRecord)
		if !app.YearFounded.Valid {
			return
		}
		if app.YearFounded.Year < 1000 || app.YearFounded.Year > now().Year() {
			sl.ReportError(app.YearFounded, "YearFounded", "year_founded", "year", "")
		}
	}, ApplicationRecord{})
	return v
}

// Load decodes and validates every dataset from fsys concurrently.
func Load(ctx context.Context, fsys fs.FS) (*Store, error) {
	v := NewValidator(time.Now)
	store := &Store{}
	var sums [7][]byte

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		store.companies, sums[0], err = decodeFile[CompanyRecord](fsys, FileFounderSuccess, KindFounderSuccess, v)
		return err
	})
	g.Go(func() (err error) {
		store.applications, sums[1], err = decodeFile[ApplicationRecord](fsys, FileApplications, KindApplications, v)
		return err
	})
	g.Go(func() (err error) {
		store.advisors, sums[2], err = decodeFile[AdvisorRecord](fsys, FileAdvisors, KindAdvisors, v)
		return err
	})
	g.Go(func() (err error) {
		store.partners, sums[3], err = decodeFile[PartnerRecord](fsys, FilePartnerROI, KindPartnerROI, v)
		return err
	})
	g.Go(func() (err error) {
		store.cycles, sums[4], err = decodeFile[CycleSnapshotRecord](fsys, FileCycleSnapshot, KindCycleSnapshot, v)
		return err
	})
	g.Go(func() (err error) {
		store.sectors, sums[5], err = decodeFile[PortfolioSectorRecord](fsys, FilePortfolioTrends, KindPortfolioTrends, v)
		return err
	})
	g.Go(func() (err error) {
		store.operations, sums[6], err = decodeFile[OperationalHealthRecord](fsys, FileOperationalHealth, KindOperationalHealth, v)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h := sha256.New()
	for _, sum := range sums {
		h.Write(sum)
	}
	store.fingerprint = hex.EncodeToString(h.Sum(nil))
	return store, nil
}

func decodeFile[T Record](fsys fs.FS, name string, kind Kind, v *validator.Validate) ([]T, []byte, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %s: read %s: %w", kind, name, err)
	}
	records, err := Decode[T](raw, kind, v)
	if err != nil {
		return nil, nil, err
	}
	sum := sha256.Sum256(raw)
	return records, sum[:], nil
}

// Decode parses a JSON array of records and validates each of them.
func Decode[T Record](raw []byte, kind Kind, v *validator.Validate) ([]T, error) {
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("dataset %s: decode: %w", kind, err)
	}
	if records == nil {
		records = []T{}
	}
	if v == nil {
		return records, nil
	}
	for i := range records {
		if err := v.Struct(records[i]); err != nil {
			return nil, &ValidationError{Dataset: kind, Index: i, Err: err}
		}
	}
	return records, nil
}
