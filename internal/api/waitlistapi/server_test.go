package waitlistapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainexus/server/internal/waitlist"
)

var errStoreDown = errors.New("store down")

// mockStore implements Store over an in-memory map.
type mockStore struct {
	mu      sync.Mutex
	entries map[string]*waitlist.Entry
	failAll bool
}

func newMockStore() *mockStore {
	return &mockStore{entries: make(map[string]*waitlist.Entry)}
}

func (m *mockStore) Join(ctx context.Context, entry *waitlist.Entry) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return 0, 0, errStoreDown
	}
	if _, exists := m.entries[entry.Email]; exists {
		return 0, 0, waitlist.ErrDuplicateEmail
	}
	entry.CreatedAt = time.Now().UTC()
	entry.Status = waitlist.StatusPending
	m.entries[entry.Email] = entry
	total := int64(len(m.entries))
	entry.Position = total
	return total, total, nil
}

func (m *mockStore) Stats(ctx context.Context) (*waitlist.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStoreDown
	}
	return &waitlist.Stats{
		Total:      10,
		Recent:     4,
		ByStatus:   map[string]int64{"pending": 9, "invited": 1},
		GrowthRate: 66.67,
		TopReferralSources: []waitlist.ReferralCount{
			{Source: "twitter", Count: 6},
		},
	}, nil
}

func (m *mockStore) Position(ctx context.Context, email string) (*waitlist.PositionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[email]
	if !ok {
		return nil, waitlist.ErrEmailNotFound
	}
	return &waitlist.PositionInfo{Position: entry.Position, JoinedAt: entry.CreatedAt}, nil
}

func (m *mockStore) Invite(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[email]
	if !ok {
		return waitlist.ErrEmailNotFound
	}
	entry.Status = waitlist.StatusInvited
	return nil
}

func (m *mockStore) FirstName(ctx context.Context, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[email]
	if !ok {
		return "", waitlist.ErrEmailNotFound
	}
	return entry.FirstName, nil
}

// mockNotifier records email sends.
type mockNotifier struct {
	mu          sync.Mutex
	enabled     bool
	welcomes    []string
	invitations []string
}

func (m *mockNotifier) Enabled() bool { return m.enabled }

func (m *mockNotifier) SendWelcome(email, firstName string, position int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomes = append(m.welcomes, email)
}

func (m *mockNotifier) SendInvitation(email, firstName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations = append(m.invitations, email)
}

func (m *mockNotifier) welcomeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.welcomes)
}

func (m *mockNotifier) invitationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invitations)
}

func newTestServer() (*Server, *mockStore, *mockNotifier) {
	store := newMockStore()
	notifier := &mockNotifier{enabled: true}
	return NewServer(store, notifier, nil), store, notifier
}

func joinBody(email string) string {
	return `{"email": "` + email + `", "first_name": "Alice", "last_name": "Doe", "referral_source": "twitter", "interests": ["nlp"], "newsletter_consent": true}`
}

func doJoin(t *testing.T, server *Server, email string) *JoinResponse {
	t.Helper()
	req := httptest.NewRequest("POST", "/waitlist/join", strings.NewReader(joinBody(email)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result JoinResponse
	require.NoError(t, json.Unmarshal(body, &result))
	return &result
}

func TestJoin(t *testing.T) {
	server, store, notifier := newTestServer()

	result := doJoin(t, server, "alice@example.com")
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.Position)
	assert.Equal(t, int64(1), result.TotalCount)

	entry := store.entries["alice@example.com"]
	require.NotNil(t, entry)
	assert.Equal(t, "Alice", entry.FirstName)
	assert.Equal(t, []string{"nlp"}, entry.GetInterests())

	// Welcome email is fire-and-forget.
	require.Eventually(t, func() bool { return notifier.welcomeCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestJoinPositionGrows(t *testing.T) {
	server, _, _ := newTestServer()

	first := doJoin(t, server, "a@example.com")
	second := doJoin(t, server, "b@example.com")

	assert.Equal(t, int64(1), first.Position)
	assert.Equal(t, int64(2), second.Position)
	assert.Equal(t, int64(2), second.TotalCount)
}

func TestJoinDuplicateEmail(t *testing.T) {
	server, _, notifier := newTestServer()

	doJoin(t, server, "alice@example.com")

	req := httptest.NewRequest("POST", "/waitlist/join", strings.NewReader(joinBody("alice@example.com")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "Email already on waitlist", result.Message)

	// No second welcome email for the rejected join.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, notifier.welcomeCount())
}

func TestJoinMissingFields(t *testing.T) {
	server, _, _ := newTestServer()

	for _, body := range []string{
		`{"first_name": "Alice"}`,
		`{"email": "alice@example.com"}`,
		`{"email": "  ", "first_name": "Alice"}`,
	} {
		req := httptest.NewRequest("POST", "/waitlist/join", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestJoinStoreFailure(t *testing.T) {
	server, store, _ := newTestServer()
	store.failAll = true

	req := httptest.NewRequest("POST", "/waitlist/join", strings.NewReader(joinBody("alice@example.com")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestStats(t *testing.T) {
	server, _, _ := newTestServer()

	req := httptest.NewRequest("GET", "/waitlist/stats", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var stats waitlist.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.Recent)
	assert.Equal(t, 66.67, stats.GrowthRate)
	assert.Equal(t, int64(9), stats.ByStatus["pending"])
}

func TestPosition(t *testing.T) {
	server, _, _ := newTestServer()
	doJoin(t, server, "alice@example.com")

	req := httptest.NewRequest("GET", "/waitlist/position/alice@example.com", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result PositionResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, int64(1), result.Position)
	assert.Equal(t, "found", result.Status)
	assert.NotEmpty(t, result.JoinedAt)
}

func TestPositionNotFound(t *testing.T) {
	server, _, _ := newTestServer()

	req := httptest.NewRequest("GET", "/waitlist/position/ghost@example.com", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvite(t *testing.T) {
	server, store, notifier := newTestServer()
	doJoin(t, server, "alice@example.com")

	req := httptest.NewRequest("POST", "/waitlist/invite/alice@example.com", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result InviteResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "alice@example.com", result.Email)

	assert.Equal(t, waitlist.StatusInvited, store.entries["alice@example.com"].Status)
	require.Eventually(t, func() bool { return notifier.invitationCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestInviteNotFound(t *testing.T) {
	server, _, _ := newTestServer()

	req := httptest.NewRequest("POST", "/waitlist/invite/ghost@example.com", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBanner(t *testing.T) {
	server, _, _ := newTestServer()

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result BannerResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "AI Nexus Waitlist Service", result.Message)
}

func TestHealthEmailStatus(t *testing.T) {
	store := newMockStore()

	for _, tc := range []struct {
		enabled bool
		want    string
	}{
		{true, "configured"},
		{false, "not_configured"},
	} {
		server := NewServer(store, &mockNotifier{enabled: tc.enabled}, nil)

		req := httptest.NewRequest("GET", "/health", nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var result HealthResponse
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "healthy", result.Status)
		assert.Equal(t, tc.want, result.Services["email"])
	}
}
