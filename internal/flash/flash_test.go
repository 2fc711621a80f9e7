package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	s := New("secret", false)
	in := []Message{{Kind: Success, Text: "Venue The Musical Hop was successfully listed!"}}

	v, err := s.Encode(in)
	require.NoError(t, err)
	out, err := s.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsTampering(t *testing.T) {
	s := New("secret", false)
	v, err := s.Encode([]Message{{Kind: Error, Text: "hi"}})
	require.NoError(t, err)

	_, err = New("other-secret", false).Decode(v)
	assert.Error(t, err, "wrong key")

	parts := strings.Split(v, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "AA"
	_, err = s.Decode(strings.Join(parts, "."))
	assert.Error(t, err, "modified payload")

	_, err = s.Decode("garbage")
	assert.Error(t, err)
}

func TestDecodeRejectsExpired(t *testing.T) {
	s := New("secret", false)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	v, err := s.Encode([]Message{{Kind: Error, Text: "old"}})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Decode(v)
	assert.Error(t, err)
}

func TestAddThenPopAcrossRedirect(t *testing.T) {
	s := New("secret", false)
	e := echo.New()

	// request 1 adds two messages and redirects
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/venues/create", nil), rec)
	require.NoError(t, s.Add(c, Success, "first"))
	require.NoError(t, s.Add(c, Error, "second"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	last := cookies[len(cookies)-1]
	assert.Equal(t, CookieName, last.Name)
	assert.True(t, last.HttpOnly)

	// request 2 reads them and clears the cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(last)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	msgs := s.Pop(c)
	assert.Equal(t, []Message{{Success, "first"}, {Error, "second"}}, msgs)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	s := New("secret", false)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.Empty(t, s.Pop(c))
	assert.Empty(t, rec.Result().Cookies(), "no cookie is touched")
}

func TestPopSameRequest(t *testing.T) {
	s := New("secret", false)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	require.NoError(t, s.Add(c, Error, "fix the form"))
	assert.Equal(t, []Message{{Error, "fix the form"}}, s.Pop(c))
	assert.Empty(t, s.Pop(c))
}

func TestAddAfterPopDoesNotReviveShownMessages(t *testing.T) {
	s := New("secret", false)
	e := echo.New()

	old, err := s.Encode([]Message{{Kind: Success, Text: "already shown"}})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/venues/1/edit", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: old})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Equal(t, []Message{{Success, "already shown"}}, s.Pop(c))
	require.NoError(t, s.Add(c, Error, "fresh"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	got, err := s.Decode(cookies[len(cookies)-1].Value)
	require.NoError(t, err)
	assert.Equal(t, []Message{{Error, "fresh"}}, got)
}
