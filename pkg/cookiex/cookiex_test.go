package cookiex

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)

	signed, err := codec.Sign("opaque-session-token", time.Now())
	require.NoError(t, err)

	token, err := codec.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "opaque-session-token", token)
}

func TestVerifyRejectsTampering(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)
	other := NewCodec("different-secret", time.Hour)

	signed, err := codec.Sign("tok", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidCookie)

	_, err = codec.Verify(signed + "x")
	require.ErrorIs(t, err, ErrInvalidCookie)

	_, err = codec.Verify("not-a-signed-value")
	require.ErrorIs(t, err, ErrInvalidCookie)
}

func TestVerifyRejectsExpiredSignature(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)

	signed, err := codec.Sign("tok", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidCookie)
}

func TestSetAndClearCookieAttributes(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	codec.Set(rec, "signed-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	require.Equal(t, CookieName, ck.Name)
	require.True(t, ck.HttpOnly)
	require.True(t, ck.Secure)
	require.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	require.Equal(t, 3600, ck.MaxAge)

	rec = httptest.NewRecorder()
	codec.Clear(rec)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Negative(t, cleared[0].MaxAge)
}

func TestReadCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Read(r)
	require.False(t, ok)

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "v"})
	v, ok := Read(r)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
