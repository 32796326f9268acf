package db

// QueryLatencyStats returns current per-query latency distribution samples.
func (c *Database) QueryLatencyStats() []QueryLatency {
	if c == nil || c.tracker == nil {
		return nil
	}
	return c.tracker.snapshot()
}

// SlowestQueries returns at most limit entries of QueryLatencyStats.
func (c *Database) SlowestQueries(limit int) []QueryLatency {
	stats := c.QueryLatencyStats()
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
