package thrift

// state is one position in the per-codec state machine of spec.md §4.B.
type state uint8

const (
	stateClear state = iota
	stateField
	stateValue
	stateContainer
	stateBool
)

// machine enforces the legal ordering of Reader/Writer calls described in
// spec.md §4.B. A Reader and a Writer each own their own machine; the
// transition table is identical for both, only the side effects (bytes
// read vs written) differ, which live in compact.go.
type machine struct {
	cur state

	lastFid      int16
	fidStack     []int16
	structStack  []state
	containerTop []state

	depth    int
	maxDepth int
}

func newMachine(maxDepth int) *machine {
	return &machine{cur: stateClear, maxDepth: maxDepth}
}

func (m *machine) pushDepth(op string) error {
	m.depth++
	if m.depth > m.maxDepth {
		m.depth--
		return newError(op, StackDepth, nil)
	}
	return nil
}

func (m *machine) popDepth() { m.depth-- }

// beginStruct validates entry into a struct and pushes the enclosing
// last_fid and caller state.
func (m *machine) beginStruct(op string) error {
	switch m.cur {
	case stateClear, stateContainer, stateValue:
	default:
		return newError(op, InvalidState, nil)
	}
	if err := m.pushDepth(op); err != nil {
		return err
	}
	m.fidStack = append(m.fidStack, m.lastFid)
	m.structStack = append(m.structStack, m.cur)
	m.lastFid = 0
	m.cur = stateField
	return nil
}

// endStruct validates exit from a struct and restores the enclosing
// last_fid and caller state.
func (m *machine) endStruct(op string) error {
	if m.cur != stateField {
		return newError(op, InvalidState, nil)
	}
	n := len(m.fidStack)
	if n == 0 {
		return newError(op, InvalidState, nil)
	}
	m.lastFid = m.fidStack[n-1]
	m.fidStack = m.fidStack[:n-1]
	m.cur = m.structStack[n-1]
	m.structStack = m.structStack[:n-1]
	m.popDepth()
	return nil
}

// beginField validates a field header and transitions to VALUE or BOOL.
func (m *machine) beginField(op string, isBool bool) error {
	if m.cur != stateField {
		return newError(op, InvalidState, nil)
	}
	if isBool {
		m.cur = stateBool
	} else {
		m.cur = stateValue
	}
	return nil
}

// endField validates the close of a field and returns to FIELD.
func (m *machine) endField(op string) error {
	switch m.cur {
	case stateValue, stateBool:
		m.cur = stateField
		return nil
	default:
		return newError(op, InvalidState, nil)
	}
}

// fieldStop validates a STOP observation. It is legal only between
// fields, and leaves the state unchanged (the caller follows with
// endStruct).
func (m *machine) fieldStop(op string) error {
	if m.cur != stateField {
		return newError(op, InvalidState, nil)
	}
	return nil
}

// beginList validates entry into a list/set body.
func (m *machine) beginList(op string) error {
	switch m.cur {
	case stateValue, stateContainer:
	default:
		return newError(op, InvalidState, nil)
	}
	if err := m.pushDepth(op); err != nil {
		return err
	}
	m.containerTop = append(m.containerTop, m.cur)
	m.cur = stateContainer
	return nil
}

// endList validates exit from a list/set body and restores the caller
// state.
func (m *machine) endList(op string) error {
	if m.cur != stateContainer {
		return newError(op, InvalidState, nil)
	}
	n := len(m.containerTop)
	if n == 0 {
		return newError(op, InvalidState, nil)
	}
	m.cur = m.containerTop[n-1]
	m.containerTop = m.containerTop[:n-1]
	m.popDepth()
	return nil
}

// scalar validates a scalar read/write; it is legal right after a
// non-bool field header, or anywhere inside a list/set body, and does not
// change state.
func (m *machine) scalar(op string) error {
	switch m.cur {
	case stateValue, stateContainer:
		return nil
	default:
		return newError(op, InvalidState, nil)
	}
}

// boolValue validates the Bool operation that consumes a BOOL field's
// header-packed value, or a bool list element.
func (m *machine) boolValue(op string) error {
	switch m.cur {
	case stateBool, stateContainer:
		return nil
	default:
		return newError(op, InvalidState, nil)
	}
}
