package domain

// Dataset is the ordered collection of enriched records, keyed by a
// caller-supplied match key (the normalised trading name). Keys are
// opaque to the dataset; computing them is the name normaliser's job.
//
// Two invariants hold by construction:
//
//   - no two records share a key;
//   - record order is stable: existing records keep their position when
//     updated, new records append in first-insertion order.
type Dataset struct {
	keys    []string
	records map[string]EnrichedRecord
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{records: make(map[string]EnrichedRecord)}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.keys)
}

// Lookup returns the record stored under key, if any.
func (d *Dataset) Lookup(key string) (EnrichedRecord, bool) {
	rec, ok := d.records[key]
	return rec, ok
}

// Put stores rec under key: in place when the key already exists,
// appended otherwise.
func (d *Dataset) Put(key string, rec EnrichedRecord) {
	if _, ok := d.records[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.records[key] = rec
}

// Keys returns the dataset keys in record order.
func (d *Dataset) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Records returns the records in dataset order.
func (d *Dataset) Records() []EnrichedRecord {
	out := make([]EnrichedRecord, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.records[k])
	}
	return out
}

// Clone returns an independent copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		keys:    make([]string, len(d.keys)),
		records: make(map[string]EnrichedRecord, len(d.records)),
	}
	copy(c.keys, d.keys)
	for k, v := range d.records {
		c.records[k] = v
	}
	return c
}
