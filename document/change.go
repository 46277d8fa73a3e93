package document

// ChangeOp identifies the operation that produced a change.
type ChangeOp uint8

const (
	OpInsert ChangeOp = iota
	OpDelete
	OpSplit
	OpMerge
	OpFormat
	OpRepair
	OpExternal
	OpReset
)

func (op ChangeOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSplit:
		return "split"
	case OpMerge:
		return "merge"
	case OpFormat:
		return "format"
	case OpRepair:
		return "repair"
	case OpExternal:
		return "external"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// KindChange records a line whose kind changed during a change.
type KindChange struct {
	Row    int
	Before Kind
	After  Kind
}

// Change is a versioned record of the most recent effective mutation.
type Change struct {
	Op            ChangeOp
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	Kinds         []KindChange
}

type changeBuilder struct {
	op            ChangeOp
	versionBefore uint64
	cursorBefore  Pos
	kinds         []KindChange
}

// LastChange returns the most recent effective change.
func (d *Document) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	out := d.lastChange
	out.Kinds = append([]KindChange(nil), d.lastChange.Kinds...)
	return out, true
}

func (d *Document) beginChange(op ChangeOp) changeBuilder {
	return changeBuilder{
		op:            op,
		versionBefore: d.version,
		cursorBefore:  d.cursor,
	}
}

func (cb *changeBuilder) addKind(row int, before, after Kind) {
	if before == after {
		return
	}
	cb.kinds = append(cb.kinds, KindChange{Row: row, Before: before, After: after})
}

func (d *Document) commitChange(cb changeBuilder) {
	if d.version == cb.versionBefore {
		return
	}
	d.lastChange = Change{
		Op:            cb.op,
		VersionBefore: cb.versionBefore,
		VersionAfter:  d.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   d.cursor,
		Kinds:         append([]KindChange(nil), cb.kinds...),
	}
	d.hasLastChange = true
}
