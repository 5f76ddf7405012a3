package sweep

// Curve is one stored (x, y) pair sequence.
type Curve struct {
	Xs []float64
	Ys []float64
}

// MemSink implements TableSink and CurveSink in memory. Rows append in
// arrival order; writing to a closed table reopens it. Not safe for
// concurrent use; the drivers are single-threaded.
type MemSink struct {
	Tables map[string][][]float64
	Closed map[string]bool
	Curves map[string]Curve
}

// NewMemSink returns an empty in-memory sink.
func NewMemSink() *MemSink {
	return &MemSink{
		Tables: make(map[string][][]float64),
		Closed: make(map[string]bool),
		Curves: make(map[string]Curve),
	}
}

// WriteRow appends a copy of row under table.
func (m *MemSink) WriteRow(table string, row []float64) error {
	cp := make([]float64, len(row))
	copy(cp, row)
	m.Tables[table] = append(m.Tables[table], cp)
	m.Closed[table] = false
	return nil
}

// CloseTable marks the table complete.
func (m *MemSink) CloseTable(table string) error {
	m.Closed[table] = true
	return nil
}

// WriteCurve stores copies of the sequences under id, replacing any
// previous curve of the same name.
func (m *MemSink) WriteCurve(id string, xs, ys []float64) error {
	cx := make([]float64, len(xs))
	copy(cx, xs)
	cy := make([]float64, len(ys))
	copy(cy, ys)
	m.Curves[id] = Curve{Xs: cx, Ys: cy}
	return nil
}
