package catalog

// StatusFilter selects a gallery view: the zero value shows everything,
// any other value restricts to records with exactly that status.
type StatusFilter struct {
	Status Status
	All    bool
}

// FilterAll matches every record.
var FilterAll = StatusFilter{All: true}

// FilterStatus restricts to a single status value.
func FilterStatus(s Status) StatusFilter { return StatusFilter{Status: s} }

// Label returns the filter's display name for the gallery toolbar.
func (f StatusFilter) Label() string {
	if f.All {
		return "All"
	}
	return f.Status.Label()
}

// Matches reports whether a record passes the filter.
func (f StatusFilter) Matches(r Record) bool {
	return f.All || r.RecordStatus() == f.Status
}

// ByStatus returns the records passing the filter, order preserved. The
// all-filter returns the input slice unchanged; a status filter allocates
// a new slice and leaves the input untouched.
func ByStatus[T Record](items []T, f StatusFilter) []T {
	if f.All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordStatus() == f.Status {
			out = append(out, it)
		}
	}
	return out
}

// GalleryFilters is the toolbar cycle order: All, Ready, In Review, Draft,
// Exported.
var GalleryFilters = []StatusFilter{
	FilterAll,
	FilterStatus(StatusReady),
	FilterStatus(StatusReview),
	FilterStatus(StatusDraft),
	FilterStatus(StatusExported),
}
