package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"glowmart/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(apperr.Validation("bad input")))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("missing")))

	// Plain errors default to internal.
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	cause := apperr.Conflict("duplicate email")
	wrapped := fmt.Errorf("registering user: %w", cause)

	assert.True(t, apperr.IsKind(wrapped, apperr.KindConflict))
	assert.Equal(t, fiber.StatusConflict, apperr.HTTPStatus(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Wrap(apperr.KindInternal, cause, "saving order")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "saving order")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[*apperr.Error]int{
		apperr.Validation("v"):    fiber.StatusBadRequest,
		apperr.NotFound("n"):      fiber.StatusNotFound,
		apperr.Conflict("c"):      fiber.StatusConflict,
		apperr.Unauthorized("u"):  fiber.StatusUnauthorized,
		apperr.Forbidden("f"):     fiber.StatusForbidden,
		apperr.Internal(nil, "i"): fiber.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, apperr.HTTPStatus(err))
	}
}
