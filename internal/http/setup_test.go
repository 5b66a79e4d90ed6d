package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smartdna/internal/domain"
	"smartdna/internal/llm"
	"smartdna/internal/metrics"
	"smartdna/internal/repository"
	"smartdna/internal/service"
)

const testSuperAdminKey = "test-superadmin-key"

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) MarkAssessmentCompleted(_ context.Context, userID string, at time.Time, hubs map[domain.Hub]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.AssessmentCompleted = true
	u.AssessmentCompletedAt = &at
	u.HubAlignments = hubs
	m.users[userID] = u
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.DNAProfile
}

func (m *memProfileRepo) Upsert(_ context.Context, p domain.DNAProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
	return nil
}

func (m *memProfileRepo) GetByUserID(_ context.Context, userID string) (domain.DNAProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return domain.DNAProfile{}, repository.ErrNotFound
	}
	return p, nil
}

type testEnv struct {
	router   *gin.Engine
	jwt      *service.JWTService
	users    *memUserRepo
	profiles *memProfileRepo
	llm      *llm.MockClient
	usage    *service.UsageTracker
}

func newTestEnv(t *testing.T, mock *llm.MockClient, keyed ...domain.ProviderID) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	has := map[domain.ProviderID]bool{}
	for _, id := range keyed {
		has[id] = true
	}
	var configs []domain.ProviderConfig
	for _, id := range domain.Providers {
		cfg := domain.ProviderConfig{ID: id, Model: string(id) + "-model", SupportsImages: id == domain.ProviderOpenAI}
		if has[id] {
			cfg.APIKey = "key"
		}
		configs = append(configs, cfg)
	}
	registry := llm.NewRegistry(configs)

	users := &memUserRepo{users: map[string]domain.User{}}
	profiles := &memProfileRepo{profiles: map[string]domain.DNAProfile{}}
	usage := service.NewUsageTracker(registry)
	m := metrics.New(usage)

	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, nil)
	userSvc := service.NewUserService(nil, users, testSuperAdminKey, "")
	access := service.NewAccessControl(40, 365, nil)
	assessments := service.NewAssessmentService(service.NewDNAEngine(service.NoJitter{}, nil), profiles, users, access, nil)
	generation := service.NewGenerationService(registry, mock, mock, usage, time.Second, nil)

	router := NewRouter(RouterDeps{
		Metrics:    m,
		JWT:        jwtSvc,
		Users:      userSvc,
		Auth:       NewAuthHandler(nil, userSvc, jwtSvc, service.NewMemoryLoginRateLimiter(time.Minute, 3)),
		Assessment: NewAssessmentHandler(nil, assessments),
		Generation: NewGenerationHandler(nil, generation, assessments, access, m),
		Catalog:    NewCatalogHandler(nil, registry, usage, access),
	})
	return &testEnv{router: router, jwt: jwtSvc, users: users, profiles: profiles, llm: mock, usage: usage}
}

// addUser guarda un usuario y devuelve su access token.
func (e *testEnv) addUser(t *testing.T, user domain.User) string {
	t.Helper()
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	pair, err := e.jwt.GeneratePair(context.Background(), user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	return pair.AccessToken
}

func (e *testEnv) superAdminToken(t *testing.T) string {
	t.Helper()
	pair, err := e.jwt.IssueSuperAdmin()
	if err != nil {
		t.Fatalf("issue superadmin: %v", err)
	}
	return pair.AccessToken
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func assessedUser(id string, score float64) domain.User {
	at := time.Now().UTC().Add(-24 * time.Hour)
	hubs := map[domain.Hub]float64{}
	for _, h := range domain.Hubs {
		hubs[h] = score
	}
	return domain.User{
		ID:                    id,
		Email:                 id + "@example.com",
		AssessmentCompleted:   true,
		AssessmentCompletedAt: &at,
		HubAlignments:         hubs,
	}
}
