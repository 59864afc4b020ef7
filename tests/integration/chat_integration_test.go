// README: Integration test against a running trippy-api instance.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Requires a running server (TRIPPY_API_BASE_URL) with a live GEMINI_API_KEY
// behind it; skipped otherwise. TRIPPY_TEST_DSN additionally enables the quota
// bookkeeping check.
func TestChatEndpoint(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("TRIPPY_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("TRIPPY_API_BASE_URL not set")
	}

	client := &http.Client{Timeout: 60 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	uid := fmt.Sprintf("it-%d", time.Now().UnixNano())

	t.Run("health", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			t.Fatalf("GET /health: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("health status = %d", resp.StatusCode)
		}
	})

	t.Run("chat", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"message": "Suggest three places to visit in Paris.",
		})
		req, _ := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", uid)

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("POST /api/chat: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("chat status = %d", resp.StatusCode)
		}

		var reply struct {
			Text      string            `json:"textContent"`
			Locations []json.RawMessage `json:"locations"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
			t.Fatalf("decode reply: %v", err)
		}
		if reply.Text == "" && len(reply.Locations) == 0 {
			t.Error("reply carried neither text nor locations")
		}
		t.Logf("reply text: %.120s (%d locations)", reply.Text, len(reply.Locations))
	})

	t.Run("quota bookkeeping", func(t *testing.T) {
		dsn := os.Getenv("TRIPPY_TEST_DSN")
		if dsn == "" {
			t.Skip("TRIPPY_TEST_DSN not set")
		}
		db, err := pgxpool.New(ctx, dsn)
		if err != nil {
			t.Fatalf("connect postgres: %v", err)
		}
		defer db.Close()

		var remaining int
		err = db.QueryRow(ctx,
			`SELECT messages_remaining FROM message_quota WHERE uid = $1`, uid,
		).Scan(&remaining)
		if err != nil {
			t.Fatalf("query quota for %s: %v", uid, err)
		}
		if remaining >= 200 {
			t.Errorf("messages_remaining = %d, expected a deduction", remaining)
		}
	})
}
