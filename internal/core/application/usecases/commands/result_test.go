package commands_test

import (
	"errors"
	"net/http"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestResultFromError_NotFound(t *testing.T) {
	res := commands.ResultFromError(errs.NewObjectNotFoundError("order", "abc"))
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestResultFromError_Conflict(t *testing.T) {
	res := commands.ResultFromError(errs.NewConflictError("already paid"))
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestResultFromError_InvalidState(t *testing.T) {
	res := commands.ResultFromError(errs.NewInvalidStateError("cannot ship"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResultFromError_Validation(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		commands.ResultFromError(errs.NewValueIsRequiredError("reason")).StatusCode)
	assert.Equal(t, http.StatusBadRequest,
		commands.ResultFromError(errs.NewValueIsInvalidError("kind")).StatusCode)
	assert.Equal(t, http.StatusBadRequest,
		commands.ResultFromError(errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)).StatusCode)
}

func TestResultFromError_MalformedUUID(t *testing.T) {
	_, err := kernel.UUIDFromString("not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, commands.ResultFromError(err).StatusCode)
}

func TestResultFromError_InternalHidesMessage(t *testing.T) {
	res := commands.ResultFromError(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "internal server error", res.Message)
}

func TestResultFromError_WrappedSentinel(t *testing.T) {
	wrapped := errs.NewConflictErrorWithCause("duplicate key", errors.New("db detail"))
	res := commands.ResultFromError(wrapped)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestOkAndCreatedResults(t *testing.T) {
	ok := commands.OkResult("done")
	assert.True(t, ok.Success)
	assert.Equal(t, http.StatusOK, ok.StatusCode)

	created := commands.CreatedResult("order created")
	assert.True(t, created.Success)
	assert.Equal(t, http.StatusCreated, created.StatusCode)
}
