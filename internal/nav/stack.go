package nav

// Stack is the ordered record of logical screens visited, oldest first.
// It is never empty: index 0 is always the Home floor. Adjacent duplicates
// are allowed; every explicit navigation appends, nothing mutates in place.
//
// Stack is a plain value type with no I/O. The Controller is its only
// mutator.
type Stack struct {
	entries []Entry
}

// NewStack creates a stack seeded with [Home].
func NewStack() *Stack {
	return &Stack{entries: []Entry{Home()}}
}

// Push appends an entry. It never fails.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes the top entry and returns the new top for restoration.
// The Home floor is never popped: ok is false and the stack is unchanged
// when only the floor remains. Callers check Len before relying on a pop.
func (s *Stack) Pop() (newTop Entry, ok bool) {
	if len(s.entries) <= 1 {
		return s.entries[0], false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.entries[len(s.entries)-1], true
}

// Peek returns the current top without mutation.
func (s *Stack) Peek() Entry {
	return s.entries[len(s.entries)-1]
}

// Len returns the number of entries, always >= 1.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Reset replaces the contents with [Home].
func (s *Stack) Reset() {
	s.entries = append(s.entries[:0], Home())
}

// Entries returns a copy of the stack contents, oldest first.
func (s *Stack) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}
