package fieldgen

// Object builds one record by generating a value for every field. index is
// the zero-based record index, or NoIndex for ad hoc generation (preview of
// a single object), in which case autoIncrement fields fall back to a
// random integer.
func Object(fields []Field, index int) map[string]any {
	record := make(map[string]any, len(fields))
	for _, f := range fields {
		record[f.Name] = Value(f, index)
	}
	return record
}

// Dataset builds count records, passing each record's index through so
// autoIncrement fields yield the sequence 1..count.
func Dataset(fields []Field, count int) []map[string]any {
	if count < 0 {
		count = 0
	}
	records := make([]map[string]any, count)
	for i := 0; i < count; i++ {
		records[i] = Object(fields, i)
	}
	return records
}
