package engine

// NoEntryFound - Custom error to inform that no entry was found for a key
type NoEntryFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NoEntryFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoEntryFound regardless of message
func (E NoEntryFound) Is(target error) bool {
	_, ok := target.(NoEntryFound)
	return ok
}

// ConcurrentModification - Custom error to inform that a dictionary was structurally changed
// while an iterator over it was still in use
type ConcurrentModification struct {
	msg string
}

// Error - Used to notify a structural change during iteration
func (C ConcurrentModification) Error() string {
	if C.msg == "" {
		return "concurrent modification"
	}
	return C.msg
}

// Is - Makes errors.Is match any ConcurrentModification regardless of message
func (C ConcurrentModification) Is(target error) bool {
	_, ok := target.(ConcurrentModification)
	return ok
}

// InvalidIndex - Custom error to inform that an index or bucket number fell outside storage bounds.
// It is an internal guard and never returned through the Dictionary contract.
type InvalidIndex struct {
	msg string
}

// Error - Used to notify an index out of range
func (I InvalidIndex) Error() string {
	if I.msg == "" {
		return "invalid index"
	}
	return I.msg
}

// Is - Makes errors.Is match any InvalidIndex regardless of message
func (I InvalidIndex) Is(target error) bool {
	_, ok := target.(InvalidIndex)
	return ok
}

// EmptyContainer - Custom error to inform that an index lookup was made on empty storage.
// It is an internal guard and never returned through the Dictionary contract.
type EmptyContainer struct {
	msg string
}

// Error - Used to notify an empty container
func (E EmptyContainer) Error() string {
	if E.msg == "" {
		return "empty container"
	}
	return E.msg
}

// Is - Makes errors.Is match any EmptyContainer regardless of message
func (E EmptyContainer) Is(target error) bool {
	_, ok := target.(EmptyContainer)
	return ok
}

// UnknownEngine - Custom error to inform that an engine name or constant is not recognised
type UnknownEngine struct {
	msg string
}

// Error - Used to notify an unknown engine
func (U UnknownEngine) Error() string {
	if U.msg == "" {
		return "unknown engine"
	}
	return U.msg
}

// Is - Makes errors.Is match any UnknownEngine regardless of message
func (U UnknownEngine) Is(target error) bool {
	_, ok := target.(UnknownEngine)
	return ok
}

// NewInvalidIndex - Returns an InvalidIndex error with the given message
func NewInvalidIndex(msg string) InvalidIndex {
	return InvalidIndex{msg: msg}
}
