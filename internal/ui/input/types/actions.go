package types

// CancelAction dismisses the list
type CancelAction struct{}

func (a CancelAction) Type() string    { return "cancel" }
func (a CancelAction) Context() string { return ContextList }

// ConfirmAction accepts the selected row
type ConfirmAction struct{}

func (a ConfirmAction) Type() string    { return "confirm" }
func (a ConfirmAction) Context() string { return ContextList }

// SelectPreviousAction moves the selection up, wrapping to the last row
type SelectPreviousAction struct{}

func (a SelectPreviousAction) Type() string    { return "select_previous" }
func (a SelectPreviousAction) Context() string { return ContextList }

// SelectNextAction moves the selection down, wrapping to the first row
type SelectNextAction struct{}

func (a SelectNextAction) Type() string    { return "select_next" }
func (a SelectNextAction) Context() string { return ContextList }
