package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/quietpines/sondera/internal/db"
	"github.com/quietpines/sondera/internal/progress"
	"github.com/quietpines/sondera/internal/remote"
	"github.com/quietpines/sondera/internal/services"
)

type testApp struct {
	app   *fiber.App
	store *progress.MemoryStore
	repos *db.Repositories
}

func newTestApp(t *testing.T, registrationURL string) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "sondera-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repositories := db.NewRepositories(database)
	store := progress.NewMemoryStore()

	var registrations services.RegistrationAPI
	if registrationURL != "" {
		registrations = remote.NewRegistrationClient(registrationURL)
	}
	wizard := services.NewWizardService(
		store,
		nil,
		repositories.Users,
		services.NewSubmissionService(registrations, nil),
		services.ValidationRules{},
		nil,
	)

	handler := NewHandler(repositories, wizard, "test-secret", false, nil)
	app := fiber.New()
	app.Use(RequestID)
	RegisterRoutes(app, handler)

	return &testApp{app: app, store: store, repos: repositories}
}

// restart swaps in a fresh wizard and app over the same store and
// database, simulating a new service process with no live sessions.
func (env *testApp) restart() {
	wizard := services.NewWizardService(
		env.store,
		nil,
		env.repos.Users,
		services.NewSubmissionService(nil, nil),
		services.ValidationRules{},
		nil,
	)
	handler := NewHandler(env.repos, wizard, "test-secret", false, nil)
	app := fiber.New()
	app.Use(RequestID)
	RegisterRoutes(app, handler)
	env.app = app
}

func (env *testApp) request(t *testing.T, method, path, body, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: cookie})
	}

	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	payload := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func authCookieValue(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Value
		}
	}
	return ""
}

func registerTestUser(t *testing.T, env *testApp) string {
	t.Helper()

	resp := env.request(t, fiber.MethodPost, "/api/auth/register",
		`{"email":"jane@example.com","password":"Str0ngPass","firstName":"Jane","lastName":"Doe"}`, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	token := authCookieValue(resp)
	if token == "" {
		t.Fatal("register set no auth cookie")
	}
	resp.Body.Close()
	return token
}

// stepBodies holds one valid JSON body per step 2..10; step 1 is recorded
// by registration.
var stepBodies = map[int]string{
	2:  `{"phone":"+1 555 0100","dateOfBirth":"1988-04-12","languages":["English"]}`,
	3:  `{"practiceName":"Quiet Pines Counseling","street":"214 Cedar Ave","city":"Portland","state":"OR","postalCode":"97204"}`,
	4:  `{"shortBio":"Licensed therapist focused on anxiety.","extendedBio":"` + strings.Repeat("I work with adults navigating anxiety and life transitions. ", 3) + `"}`,
	5:  `{"licenseType":"LMFT","licenseNumber":"MFT-88219","licenseState":"OR","expiryDate":"2031-06-30","licenseDocument":{"kind":"stored","filename":"license.pdf"}}`,
	6:  `{"yearsOfExperience":9,"maxCaseloadCapacity":25,"newClientsCapacity":8}`,
	7:  `{"anxiety":true}`,
	8:  `{"modalities":{"cbt":true},"formats":{"video":true}}`,
	9:  `{"timezone":"America/Los_Angeles","days":{"monday":[{"id":"mon-1","startTime":"09:00","endTime":"12:00"}]}}`,
	10: `{"insurancePanels":{"privatePay":true},"malpracticeCarrier":"CPH & Associates",` +
		`"malpracticePolicyNumber":"CPH-204481","hipaaAcknowledged":true,"termsAccepted":true}`,
}
