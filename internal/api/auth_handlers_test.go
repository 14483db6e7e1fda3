package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	env := newTestApp(t, "")
	registerTestUser(t, env)

	resp := env.request(t, fiber.MethodPost, "/api/auth/register",
		`{"email":"JANE@example.com","password":"Str0ngPass","firstName":"Jane","lastName":"Doe"}`, "")
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRegisterWeakPasswordReturnsFieldError(t *testing.T) {
	env := newTestApp(t, "")

	resp := env.request(t, fiber.MethodPost, "/api/auth/register",
		`{"email":"jane@example.com","password":"weak","firstName":"Jane","lastName":"Doe"}`, "")
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	payload := decodeJSON(t, resp)
	fieldErrors := payload["fieldErrors"].(map[string]any)
	if fieldErrors["password"] == nil {
		t.Fatalf("fieldErrors = %v", fieldErrors)
	}
}

func TestLoginAndLogout(t *testing.T) {
	env := newTestApp(t, "")
	registerTestUser(t, env)

	resp := env.request(t, fiber.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"Str0ngPass"}`, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	token := authCookieValue(resp)
	if token == "" {
		t.Fatal("login set no auth cookie")
	}
	resp.Body.Close()

	resp = env.request(t, fiber.MethodPost, "/api/auth/logout", "", token)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}
	if authCookieValue(resp) != "" {
		t.Fatal("logout did not clear the auth cookie")
	}
	resp.Body.Close()
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	env := newTestApp(t, "")
	registerTestUser(t, env)

	resp := env.request(t, fiber.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"WrongPass1"}`, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHealthz(t *testing.T) {
	env := newTestApp(t, "")

	resp := env.request(t, fiber.MethodGet, "/healthz", "", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	payload := decodeJSON(t, resp)
	if payload["status"] != "ok" {
		t.Fatalf("payload = %v", payload)
	}
}
