package holiday

import "time"

// Region identifies which UK bank-holiday calendar applies.
// Values match the division keys of the GOV.UK bank-holiday feed.
type Region string

const (
	RegionEnglandAndWales Region = "england-and-wales"
	RegionScotland        Region = "scotland"
	RegionNorthernIreland Region = "northern-ireland"
)

// DefaultRegion is used for team-level calculations and for staff
// with no configured home region.
const DefaultRegion = RegionEnglandAndWales

func (r Region) Valid() bool {
	switch r {
	case RegionEnglandAndWales, RegionScotland, RegionNorthernIreland:
		return true
	}
	return false
}

// BankHoliday entity. Rows are unique per (date, region).
type BankHoliday struct {
	ID     string
	Date   time.Time
	Region Region
	Title  string
	Source string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SyncState records when the bank-holiday feed was last pulled.
// The sync job refreshes at most once per calendar month.
type SyncState struct {
	LastSyncedAt *time.Time
}
