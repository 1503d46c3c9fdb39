package types

// ContextList is the key context of the list widget. Bindings in this
// context only fire while the list is focused.
const ContextList = "List"

// Action represents a command the list should execute
type Action interface {
	Type() string
	Context() string
}
