package format

import (
	"github.com/tarantool/go-option"
)

// Scope is the state of one nesting level of a document being written.
type Scope int

// Scopes.
const (
	EmptyDocument Scope = iota + 1
	NonemptyDocument
	EmptyArray
	NonemptyArray
	EmptyObject
	NonemptyObject
	// DanglingName is an object whose property name awaits its value.
	DanglingName
)

// ScopeStack is the nesting state machine shared by the writers. It also
// holds the deferred property name.
type ScopeStack struct {
	scopes   []Scope
	deferred option.Generic[string]
}

// NewScopeStack returns a stack positioned at an empty document.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes:   []Scope{EmptyDocument},
		deferred: option.None[string](),
	}
}

// Peek returns the innermost scope.
func (s *ScopeStack) Peek() Scope {
	return s.scopes[len(s.scopes)-1]
}

// Replace changes the innermost scope.
func (s *ScopeStack) Replace(sc Scope) {
	s.scopes[len(s.scopes)-1] = sc
}

// Push opens a nesting level.
func (s *ScopeStack) Push(sc Scope) {
	s.scopes = append(s.scopes, sc)
}

// Depth returns the number of levels including the document.
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}

// SetName defers name until the next value.
func (s *ScopeStack) SetName(name string) error {
	if s.deferred.IsSome() {
		return errUsage(wrapf(ErrDanglingName, "%q then %q", s.deferred.Unwrap(), name))
	}

	if len(s.scopes) <= 1 {
		return errUsage(wrapf(ErrNesting, "property name %q outside of an object", name))
	}

	s.deferred = option.Some(name)

	return nil
}

// TakeName returns and clears the deferred name.
func (s *ScopeStack) TakeName() (string, bool) {
	name, ok := s.deferred.Get()
	s.deferred = option.None[string]()

	return name, ok
}

// BeforeName moves an object scope to DanglingName. It reports whether the
// object already had entries.
func (s *ScopeStack) BeforeName() (bool, error) {
	switch s.Peek() { //nolint:exhaustive
	case NonemptyObject:
		s.Replace(DanglingName)
		return true, nil
	case EmptyObject:
		s.Replace(DanglingName)
		return false, nil
	default:
		return false, errUsage(wrapf(ErrNesting, "property name outside of an object"))
	}
}

// BeforeValue records that a value is about to be written and returns the
// scope it is written into, as it was before the call.
func (s *ScopeStack) BeforeValue() (Scope, error) {
	prev := s.Peek()

	switch prev { //nolint:exhaustive
	case NonemptyDocument:
		return prev, errUsage(ErrMultipleTopLevel)
	case EmptyDocument:
		s.Replace(NonemptyDocument)
	case EmptyArray:
		s.Replace(NonemptyArray)
	case NonemptyArray:
	case DanglingName:
		s.Replace(NonemptyObject)
	default:
		return prev, errUsage(wrapf(ErrNesting, "value without a property name"))
	}

	return prev, nil
}

// Close pops a level that must be in state empty or nonempty. It returns
// the popped scope.
func (s *ScopeStack) Close(empty, nonempty Scope) (Scope, error) {
	if s.deferred.IsSome() {
		return 0, errUsage(wrapf(ErrDanglingName, "%q", s.deferred.Unwrap()))
	}

	top := s.Peek()
	if len(s.scopes) <= 1 || (top != empty && top != nonempty) {
		return 0, errUsage(ErrNesting)
	}

	s.scopes = s.scopes[:len(s.scopes)-1]

	return top, nil
}

// Complete checks that exactly one top-level value was written and every
// level was closed.
func (s *ScopeStack) Complete() error {
	if s.deferred.IsSome() {
		return errUsage(wrapf(ErrDanglingName, "%q", s.deferred.Unwrap()))
	}

	if len(s.scopes) != 1 || s.scopes[0] != NonemptyDocument {
		return errUsage(ErrIncomplete)
	}

	return nil
}
