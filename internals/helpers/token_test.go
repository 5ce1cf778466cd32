package helper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func tokenEchoApp() *fiber.App {
	app := fiber.New()
	app.Get("/token", func(c *fiber.Ctx) error {
		return c.SendString(GetRawAccessToken(c))
	})
	app.Get("/relay", func(c *fiber.Ctx) error {
		SetRawAccessToken(c, c.Query("raw"))
		return c.SendString(GetRawAccessToken(c))
	})
	return app
}

func TestGetRawAccessToken(t *testing.T) {
	app := tokenEchoApp()

	tests := []struct {
		name   string
		target string
		setup  func(r *http.Request)
		want   string
	}{
		{
			name:   "dari Authorization header",
			target: "/token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer abc123")
			},
			want: "abc123",
		},
		{
			name:   "dari cookie access_token",
			target: "/token",
			setup: func(r *http.Request) {
				r.Header.Set("Cookie", "access_token=cookietok")
			},
			want: "cookietok",
		},
		{
			name:   "cookie menang atas header",
			target: "/token",
			setup: func(r *http.Request) {
				r.Header.Set("Cookie", "access_token=cookietok")
				r.Header.Set("Authorization", "Bearer headertok")
			},
			want: "cookietok",
		},
		{
			name:   "tanpa token",
			target: "/token",
			setup:  func(r *http.Request) {},
			want:   "",
		},
		{
			name:   "dari Locals lewat SetRawAccessToken",
			target: "/relay?raw=localtok",
			setup:  func(r *http.Request) {},
			want:   "localtok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			tt.setup(req)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.want {
				t.Errorf("token = %q, want %q", body, tt.want)
			}
		})
	}
}
