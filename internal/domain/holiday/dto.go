package holiday

import "time"

type BankHolidayResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Region string `json:"region"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

func ToResponse(h BankHoliday) BankHolidayResponse {
	return BankHolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format("2006-01-02"),
		Region: string(h.Region),
		Title:  h.Title,
		Source: h.Source,
	}
}

type SyncResult struct {
	Skipped      bool       `json:"skipped"`
	RowsWritten  int        `json:"rows_written"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}
