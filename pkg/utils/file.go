package utils

// Record is the unit of work flowing through the pipeline: one raw
// interchange on the way in, parsed documents and claim sets on the way out.
type Record = map[string]any

// CloneRecord copies the top level of a record so a stage can annotate it
// without mutating what an earlier stage still holds.
func CloneRecord(rec Record) Record {
	if rec == nil {
		return nil
	}
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
