package action

import (
	"context"
	"errors"
)

// ErrUserCancel is returned when the operator declines a confirmation
// prompt (e.g. an overwrite or remove confirmation), aborting the current
// action without treating it as a failure.
var ErrUserCancel = errors.New("action: cancelled by user")

// Kind identifies one of the ten menu entries of the interactive CLI.
type Kind int

const (
	KindExit Kind = iota
	KindInfo
	KindEncrypt
	KindDecrypt
	KindEmbed
	KindExtract
	KindEncryptAndEmbed
	KindExtractAndDecrypt
	KindRandomCreate
	KindRandomOverwrite
)

// Request is the tagged-variant container for one dispatched action: the
// Kind selects which of the typed payload fields is meaningful, replacing
// a duck-typed options bag with an explicit, exhaustively-switchable
// struct.
type Request struct {
	Kind Kind

	InputPath  string
	OutputPath string

	// Comment seeds the encrypt comments block; defaults to InputPath's
	// basename when empty.
	Comment string

	KeyfilePaths []string
	Passphrase   []byte
	TimeCost     uint32

	// StartPos/EndPos drive embed/extract positioning; Size drives
	// random-create.
	StartPos uint64
	EndPos   uint64
	Size     uint64

	// Overwrite/RemoveOnAbort carry the operator's confirmation choices:
	// overwriting an existing output defaults to no, removing a partial
	// output on abort defaults to yes.
	Overwrite     bool
	RemoveOnAbort bool
	UnsafeDecrypt bool
}

// Result is the outcome reported back to the CLI layer after a dispatched
// action completes.
type Result struct {
	Comment  string
	Warning  bool
	Messages []string
}

// Dispatcher routes a Request to the handler registered for its Kind.
type Dispatcher struct {
	handlers map[Kind]func(context.Context, Request) (Result, error)
}

// NewDispatcher builds an empty Dispatcher; handlers are wired in by the
// CLI layer via Register, keeping this package free of a dependency on the
// concrete pipeline packages.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Kind]func(context.Context, Request) (Result, error))}
}

// Register binds a handler function to kind.
func (d *Dispatcher) Register(kind Kind, handler func(context.Context, Request) (Result, error)) {
	d.handlers[kind] = handler
}

// Dispatch runs the handler registered for req.Kind.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	handler, ok := d.handlers[req.Kind]
	if !ok {
		return Result{}, errors.New("action: no handler registered for this kind")
	}
	return handler(ctx, req)
}
