package pin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SetPinBody is the request body for configuring the store PIN.
type SetPinBody struct {
	Pin string `json:"pin" required:"true" minLength:"4" maxLength:"12" doc:"Numeric PIN protecting the encrypted store"`
}

// SetPinInput is the Huma input for configuring the store PIN.
type SetPinInput struct {
	Body SetPinBody
}

// SetPinOutput is the Huma output for configuring the store PIN.
type SetPinOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// pinSetter is the interface for storing the PIN.
type pinSetter interface {
	SetPin(ctx context.Context, pin string) error
}

// SetPinHandler handles POST /v1/pin.
type SetPinHandler struct {
	Store pinSetter
}

// NewSetPinHandler creates a new SetPinHandler.
func NewSetPinHandler(store pinSetter) *SetPinHandler {
	return &SetPinHandler{Store: store}
}

// Register registers the set pin endpoint with the Huma API.
func (h *SetPinHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-pin",
		Method:      http.MethodPost,
		Path:        "/v1/pin",
		Summary:     "Set store PIN",
		Description: "Configures the PIN used to encrypt persisted batches.",
		Tags:        []string{"Pin"},
	}, h.handle)
}

func (h *SetPinHandler) handle(ctx context.Context, input *SetPinInput) (*SetPinOutput, error) {
	if err := h.Store.SetPin(ctx, input.Body.Pin); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set pin", err)
	}
	return &SetPinOutput{Status: http.StatusCreated}, nil
}
