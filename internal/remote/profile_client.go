// Package remote holds the HTTP clients for the platform services the
// wizard consumes as collaborators: the profile service (hydration and
// best-effort progress writes) and the registration endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the partially-completed therapist profile the platform keeps
// server-side. A recorded step above 1 means a resumable application.
type Profile struct {
	OnboardingCompleted bool                  `json:"onboardingCompleted"`
	OnboardingStep      int                   `json:"onboardingStep"`
	Data                models.OnboardingData `json:"data"`
}

type ProfileClient struct {
	baseURL string
	client  *http.Client
}

func NewProfileClient(baseURL string) *ProfileClient {
	return &ProfileClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (client *ProfileClient) GetProfile(ctx context.Context, userID uint, token string) (Profile, error) {
	endpoint := fmt.Sprintf("%s/profiles/%d", client.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.client.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Profile{}, ErrProfileNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Profile{}, fmt.Errorf("profile service status %d: %s", resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

// SaveProgress mirrors the local snapshot server-side so an application can
// resume from another device. Callers treat failures as advisory.
func (client *ProfileClient) SaveProgress(ctx context.Context, userID uint, token string, step int, data models.OnboardingData) error {
	payload := struct {
		Step int                   `json:"step"`
		Data models.OnboardingData `json:"data"`
	}{Step: step, Data: data}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	endpoint := fmt.Sprintf("%s/profiles/%d/progress", client.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("profile service status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
