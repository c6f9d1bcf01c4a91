package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iggarsaudev/career-hub/internal/common"
)

func newService(t *testing.T) (*Service, *Tokens) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := NewTokens("secret", "career-hub", time.Hour)
	return NewService("Admin@Example.com", hash, tokens), tokens
}

func TestService_Login(t *testing.T) {
	svc, tokens := newService(t)
	ctx := context.Background()

	tok, err := svc.Login(ctx, " admin@example.com", "s3cret")
	require.NoError(t, err)
	sub, err := tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sub)

	_, err = svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "other@example.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestService_LoginUnconfigured(t *testing.T) {
	svc := NewService("", nil, NewTokens("secret", "", time.Hour))
	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("pw")))
}

func TestTokens_Parse(t *testing.T) {
	tokens := NewTokens("secret", "career-hub", time.Hour)
	tok, err := tokens.Generate("admin")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokens("other", "career-hub", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewTokens("secret", "someone-else", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokens("secret", "career-hub", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokens("secret", "career-hub", time.Hour)
	tok, err := tokens.Generate("admin")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/admin", Middleware(tokens), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalSubject).(string))
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"invalid", "Bearer nope", http.StatusUnauthorized},
		{"bearer", "Bearer " + tok, http.StatusOK},
		{"bare token", tok, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "admin", string(body))
			}
		})
	}
}
