package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheck_LoginSchema_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	// Оба поля невалидны — обе ошибки должны попасть в карту за один проход.
	details := Check(&LoginRequest{Email: "not-an-email", Password: ""})
	require.Len(t, details, 2)
	require.Contains(t, details, "email")
	require.Contains(t, details, "password")
	require.Equal(t, "invalid email address", details["email"])
}

func TestCheck_LoginSchema_Valid(t *testing.T) {
	t.Parallel()

	require.Nil(t, Check(&LoginRequest{Email: "a@b.com", Password: "x"}))
}

func TestCheck_RegisterSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      RegisterRequest
		invalid []string
	}{
		{
			name: "valid",
			in:   RegisterRequest{Name: "A", Email: "a@b.com", Password: "secret1"},
		},
		{
			name:    "short password",
			in:      RegisterRequest{Name: "A", Email: "a@b.com", Password: "12345"},
			invalid: []string{"password"},
		},
		{
			name:    "missing name",
			in:      RegisterRequest{Email: "a@b.com", Password: "secret1"},
			invalid: []string{"name"},
		},
		{
			name:    "everything wrong",
			in:      RegisterRequest{Name: "", Email: "nope", Password: ""},
			invalid: []string{"name", "email", "password"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			details := Check(&tc.in)
			if len(tc.invalid) == 0 {
				require.Nil(t, details)
				return
			}

			require.Len(t, details, len(tc.invalid))
			for _, f := range tc.invalid {
				require.Contains(t, details, f)
			}
		})
	}
}

func TestCheck_WebsiteVisitSchema(t *testing.T) {
	t.Parallel()

	// Только url обязателен; остальные поля опциональны.
	require.Nil(t, Check(&WebsiteVisitRequest{URL: "https://example.com/page"}))

	details := Check(&WebsiteVisitRequest{URL: "not a url"})
	require.Len(t, details, 1)
	require.Equal(t, "invalid URL format", details["url"])

	details = Check(&WebsiteVisitRequest{})
	require.Contains(t, details, "url")
}

func TestCheck_NewsletterBlogSchema(t *testing.T) {
	t.Parallel()

	now := time.Now()
	require.Nil(t, Check(&NewsletterBlogRequest{Email: "a@b.com"}))
	require.Nil(t, Check(&NewsletterBlogRequest{Email: "a@b.com", Name: "A", SubscribedAt: &now}))

	details := Check(&NewsletterBlogRequest{})
	require.Len(t, details, 1)
	require.Contains(t, details, "email")
}
