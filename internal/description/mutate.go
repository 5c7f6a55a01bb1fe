package description

// InsertEntries splices entries into the description at entry offset at,
// shifting every existing entry at or after at to the right.
func (d *Description) InsertEntries(at int, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	raw := make([]byte, len(entries)*EntrySize)
	d.entries.Grow(len(raw))
	byteOffset := at * EntrySize
	d.entries.InsertAt(byteOffset, raw)
	for i, e := range entries {
		d.Set(at+i, e)
	}
}

// RemoveEntries deletes count entries starting at entry offset at.
func (d *Description) RemoveEntries(at, count int) {
	if count == 0 {
		return
	}
	start := at * EntrySize
	end := (at + count) * EntrySize
	d.entries.RemoveRange(start, end)
}

// AdjustJSONOffsetsFrom adds delta to the JSONOffset of every entry at or
// after entry offset from, per spec.md §4.2's invariant-preservation rule:
// "descendants' jsonOffsets following an insert/delete at byte p with
// delta Δ must be shifted by Δ". Entries are written in source order, so
// byte offsets increase monotonically with entry offset; everything
// before from is untouched, and this single linear pass covers every
// sibling, cousin, and ancestor-of-a-later-sibling that follows the edit.
func (d *Description) AdjustJSONOffsetsFrom(from int, delta int32) {
	n := d.Len()
	for i := from; i < n; i++ {
		e := d.At(i)
		e.JSONOffset = uint32(int32(e.JSONOffset) + delta)
		d.Set(i, e)
	}
}

// AdjustRoot applies length/index/member-count deltas to the root entry
// (entry offset 0). Because a Document only ever mutates the direct
// members of its own root container — nested edits go through read-a-
// copy/write-it-back, never a multi-level path-walk — the root is the
// only ancestor any mutation needs to patch (SPEC_FULL.md §4.4).
func (d *Description) AdjustRoot(deltaLen, deltaIndex, deltaMembers int32) {
	root := d.At(0)
	root.JSONLength = uint32(int32(root.JSONLength) + deltaLen)
	root.IndexLength = uint32(int32(root.IndexLength) + deltaIndex)
	root.MemberCount = uint32(int32(root.MemberCount) + deltaMembers)
	d.Set(0, root)
}
