package domain

// UpsertStatus is the outcome of one entity upsert.
type UpsertStatus string

const (
	UpsertImported UpsertStatus = "imported"
	UpsertUpdated  UpsertStatus = "updated"
	UpsertSkipped  UpsertStatus = "skipped"
	UpsertError    UpsertStatus = "error"
)

// UpsertResult describes what happened to one entity.
type UpsertResult struct {
	Status     UpsertStatus `json:"status"`
	LocalID    int64        `json:"localId,omitempty"`
	ExternalID string       `json:"externalId,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// SyncCounters aggregates upsert outcomes for one run.
type SyncCounters struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Record counts one upsert outcome.
func (c *SyncCounters) Record(status UpsertStatus) {
	switch status {
	case UpsertImported:
		c.Imported++
	case UpsertUpdated:
		c.Updated++
	case UpsertSkipped:
		c.Skipped++
	default:
		c.Errors++
	}
}

// Total is the number of processed entities.
func (c SyncCounters) Total() int {
	return c.Imported + c.Updated + c.Skipped + c.Errors
}

// Changed is the number of entities written.
func (c SyncCounters) Changed() int {
	return c.Imported + c.Updated
}

// Add merges other into c.
func (c *SyncCounters) Add(other SyncCounters) {
	c.Imported += other.Imported
	c.Updated += other.Updated
	c.Skipped += other.Skipped
	c.Errors += other.Errors
}
