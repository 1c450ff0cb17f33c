package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
)

func errResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeStringDetail(t *testing.T) {
	apiErr := decodeAPIError(errResponse(400, `{"detail": "Email already registered"}`))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Email already registered", apiErr.Detail)
	assert.Empty(t, apiErr.Fields)
}

func TestDecodeFieldDetail(t *testing.T) {
	body := `{"detail": [{"msg": "field required"}, {"msg": "invalid email"}]}`
	apiErr := decodeAPIError(errResponse(422, body))
	assert.Empty(t, apiErr.Detail)
	assert.Len(t, apiErr.Fields, 2)
	assert.Equal(t, "field required", apiErr.Fields[0].Msg)
}

func TestDecodeUnparseableBody(t *testing.T) {
	apiErr := decodeAPIError(errResponse(500, `<html>Bad Gateway</html>`))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
	assert.Empty(t, apiErr.Fields)
}

// Backend-authored string details are surfaced verbatim, never rewritten.
func TestMessageStringDetailVerbatim(t *testing.T) {
	err := decodeAPIError(errResponse(400, `{"detail": "Email already registered"}`))
	assert.Equal(t, "Email already registered", Message(err))
}

func TestMessageJoinsFieldMessages(t *testing.T) {
	body := `{"detail": [{"msg": "field required"}, {"msg": "invalid email"}]}`
	err := decodeAPIError(errResponse(422, body))
	assert.Equal(t, "field required, invalid email", Message(err))
}

func TestMessageStatusFallbacks(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{409, "This email is already registered. Try logging in instead."},
		{400, "Invalid request data. Please check your information."},
		{500, "Server error. Please try again later."},
		{503, GenericMessage},
	}
	for _, tc := range cases {
		err := decodeAPIError(errResponse(tc.status, ``))
		assert.Equal(t, tc.want, Message(err), "status %d", tc.status)
	}
}

func TestMessageNetworkError(t *testing.T) {
	err := &NetworkError{Err: errors.New("connection refused")}
	assert.Equal(t, NetworkMessage, Message(err))

	// Also when wrapped.
	assert.Equal(t, NetworkMessage, Message(fmt.Errorf("login: %w", err)))
}

func TestMessageAppError(t *testing.T) {
	err := apperrors.New(apperrors.ErrWeakPassword, "Password must be at least 8 characters")
	assert.Equal(t, "Password must be at least 8 characters", Message(err))
}

func TestMessageUnknownError(t *testing.T) {
	assert.Equal(t, GenericMessage, Message(errors.New("boom")))
	assert.Equal(t, "", Message(nil))
}

// Register flow softens duplicate-email details to a sign-in hint but leaves
// everything else alone.
func TestRegisterMessage(t *testing.T) {
	dup := decodeAPIError(errResponse(400, `{"detail": "Email already registered"}`))
	assert.Equal(t, "This email is already registered. Try logging in instead.", RegisterMessage(dup))

	other := decodeAPIError(errResponse(400, `{"detail": "Invalid profile type"}`))
	assert.Equal(t, "Invalid profile type", RegisterMessage(other))

	net := &NetworkError{Err: errors.New("timeout")}
	assert.Equal(t, NetworkMessage, RegisterMessage(net))
}

func TestRegisterMessageBareStatusFallbacks(t *testing.T) {
	conflict := decodeAPIError(errResponse(409, ``))
	assert.Equal(t, "This email is already registered. Try logging in instead.", RegisterMessage(conflict))

	bad := decodeAPIError(errResponse(400, ``))
	assert.Equal(t, "Invalid registration data. Please check your information.", RegisterMessage(bad))
}

func TestLoginMessage(t *testing.T) {
	// Backend detail wins over the status fallback.
	detailed := decodeAPIError(errResponse(401, `{"detail": "Invalid email or password"}`))
	assert.Equal(t, "Invalid email or password", LoginMessage(detailed))

	bare := decodeAPIError(errResponse(401, ``))
	assert.Equal(t, "Invalid email or password. Please try again.", LoginMessage(bare))

	missing := decodeAPIError(errResponse(404, ``))
	assert.Equal(t, "Account not found. Please check your email or sign up.", LoginMessage(missing))

	server := decodeAPIError(errResponse(500, ``))
	assert.Equal(t, "Server error. Please try again later.", LoginMessage(server))
}
