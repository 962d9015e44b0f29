package domain

// ExportRow is a single row in the tour catalogue export.
// List fields are kept as slices; callers that need a joined string
// (e.g. CSV) decide on the separator.
type ExportRow struct {
	TourID    string
	Title     string
	Category  string
	Location  string
	Price     string // two-decimal fixed point, e.g. "1250.00"
	Duration  string
	IsActive  bool
	CreatedAt string // RFC 3339, UTC

	Inclusions []string
	Exclusions []string
	Gallery    []string
}
