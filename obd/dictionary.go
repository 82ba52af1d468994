package obd

// SignalFormula describes one numeric field embedded in a PID's data
// bytes: value = raw*factor + offset, where raw is the bit field at
// [FirstBitPosition, FirstBitPosition+SizeInBits). FirstBitPosition/8 picks
// the data byte, counted from the PID's first data byte; within that byte,
// bit positions count up from the least-significant bit.
type SignalFormula struct {
	SignalID         string  `yaml:"signal_id"`
	FirstBitPosition int     `yaml:"first_bit_position"`
	SizeInBits       int     `yaml:"size_in_bits"`
	Factor           float64 `yaml:"factor"`
	Offset           float64 `yaml:"offset"`
}

// DictionaryEntry is the per-PID metadata the decoder needs: how many data
// bytes the PID's record occupies, and the signals embedded in it.
type DictionaryEntry struct {
	SizeInBytes int             `yaml:"size_in_bytes"`
	Signals     []SignalFormula `yaml:"signals"`
}

// Dictionary maps a PID to its byte length and signal layout. It is
// immutable for the lifetime of a decode call; swap it wholesale with
// SetDictionary between calls, never mutate one a live decode observes.
type Dictionary struct {
	entries map[PID]DictionaryEntry
}

// NewDictionary builds a Dictionary from pid->entry pairs.
func NewDictionary(entries map[PID]DictionaryEntry) *Dictionary {
	if entries == nil {
		entries = map[PID]DictionaryEntry{}
	}
	return &Dictionary{entries: entries}
}

// Contains reports whether pid has a dictionary entry.
func (d *Dictionary) Contains(pid PID) bool {
	if d == nil {
		return false
	}
	_, ok := d.entries[pid]
	return ok
}

// Lookup returns pid's entry and whether it was found.
func (d *Dictionary) Lookup(pid PID) (DictionaryEntry, bool) {
	if d == nil {
		return DictionaryEntry{}, false
	}
	e, ok := d.entries[pid]
	return e, ok
}

// PIDs returns the set of PIDs the dictionary describes, unordered.
func (d *Dictionary) PIDs() []PID {
	if d == nil {
		return nil
	}
	pids := make([]PID, 0, len(d.entries))
	for pid := range d.entries {
		pids = append(pids, pid)
	}
	return pids
}
