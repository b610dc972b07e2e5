package interfaces

import "context"

// ConfirmationKind identifies which irreversible or optional step is being
// confirmed.
type ConfirmationKind string

const (
	ConfirmCancelDraft     ConfirmationKind = "cancel_draft"
	ConfirmCaptureLocation ConfirmationKind = "capture_location"
)

// ConfirmationRequest describes what must be confirmed and why.
type ConfirmationRequest struct {
	Kind    ConfirmationKind `json:"kind"`
	Message string           `json:"message"`
}

// IConfirmer is satisfied by whoever can ask the salesperson. HTTP callers
// answer up front in the request body.

//go:generate mockgen -source=confirmer_interface.go -destination=mocks/mock_confirmer.go -package=mock_interfaces

type IConfirmer interface {
	Confirm(ctx context.Context, req ConfirmationRequest) (bool, error)
}

// StaticConfirmer answers every request with the same decision.
type StaticConfirmer bool

func (s StaticConfirmer) Confirm(_ context.Context, _ ConfirmationRequest) (bool, error) {
	return bool(s), nil
}
