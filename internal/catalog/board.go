package catalog

// Board is the session-local state behind the script status board. It is
// seeded with a copy of the catalogue's scripts, so moves are visible for
// the life of the session and gone on the next launch; there is no
// persistence behind it.
//
// All changes go through Move; nothing else mutates the copy.
type Board struct {
	scripts []UGCScript
}

// NewBoard copies scripts into a new board.
func NewBoard(scripts []UGCScript) *Board {
	cp := make([]UGCScript, len(scripts))
	copy(cp, scripts)
	return &Board{scripts: cp}
}

// Scripts returns the board's records in their stable seed order.
func (b *Board) Scripts() []UGCScript { return b.scripts }

// Lane returns the records currently in the given status lane, in seed
// order.
func (b *Board) Lane(s Status) []UGCScript {
	var out []UGCScript
	for _, sc := range b.scripts {
		if sc.Status == s {
			out = append(out, sc)
		}
	}
	return out
}

// Lanes groups every record into the four fixed lanes. The union of the
// returned lanes is always exactly the board's record set.
func (b *Board) Lanes() map[Status][]UGCScript {
	lanes := make(map[Status][]UGCScript, len(AllStatuses))
	for _, s := range AllStatuses {
		lanes[s] = b.Lane(s)
	}
	return lanes
}

// Find returns the record with the given id, if present.
func (b *Board) Find(id string) (UGCScript, bool) {
	for _, sc := range b.scripts {
		if sc.ID == id {
			return sc, true
		}
	}
	return UGCScript{}, false
}

// Move reassigns the record's status to the target lane. Unknown ids,
// invalid lanes, and drops onto the record's current lane are no-ops.
// Returns true only when a record actually changed lanes. Last move wins;
// there is no undo.
func (b *Board) Move(id string, to Status) bool {
	if !to.Valid() {
		return false
	}
	for i := range b.scripts {
		if b.scripts[i].ID != id {
			continue
		}
		if b.scripts[i].Status == to {
			return false
		}
		b.scripts[i].Status = to
		return true
	}
	return false
}
