package policy

var descriptions = map[Kind]string{
	FIFO: `FIFO (First-In-First-Out)
  - Replaces the oldest page in memory.
  - Uses queue principle.
  - Simple to implement.
  - May suffer from Belady's anomaly.`,
	LRU: `LRU (Least Recently Used)
  - Replaces the least recently used page.
  - Uses past usage history.
  - Usually fewer faults than FIFO.
  - Requires tracking of recent usage.`,
	Optimal: `Optimal Page Replacement
  - Replaces the page that will not be used for the longest time in future.
  - Gives minimum possible page faults.
  - Not practical in real systems.
  - Used for performance comparison.`,
	LFU: `LFU (Least Frequently Used)
  - Replaces the resident page referenced the fewest times.
  - Ties go to the page loaded earliest.
  - Counts reset when a page is evicted.`,
	Random: `Random Replacement
  - Replaces a uniformly chosen resident page.
  - Needs no usage history.
  - Seeded, so runs are reproducible.`,
}

// Describe returns a short explanation of the policy, or "" for unknown kinds.
func Describe(kind Kind) string {
	return descriptions[kind]
}
