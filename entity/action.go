package entity

import "context"

// ActionKind identifies a row action.
type ActionKind string

const (
	Add    ActionKind = "add"
	Edit   ActionKind = "edit"
	Delete ActionKind = "delete"
	Custom ActionKind = "custom"
)

// ActionsField is the pseudo-field naming the actions column in visibility toggles.
const ActionsField = "__actions__"

// Action is a row action shown in the actions column.
// Add is rendered once for the table rather than per row.
type Action struct {
	Kind    ActionKind `yaml:"kind"`
	Name    string     `yaml:"name,omitempty"`
	Content string     `yaml:"content,omitempty"`
	Hidden  bool       `yaml:"hidden,omitempty"`
}

func (act Action) Visible() bool {
	return !act.Hidden
}

// Notice tells the host an action was clicked.
// Record is nil for Add and for custom buttons.
type Notice struct {
	Kind   ActionKind
	Name   string
	Record Record
}

// Notifier receives action notices.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(ctx context.Context, notice Notice)

func (fn NotifierFunc) Notify(ctx context.Context, notice Notice) {
	fn(ctx, notice)
}
