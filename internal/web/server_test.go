package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lateral-intake/internal/config"
	"lateral-intake/internal/store"
)

const testSigningKey = "web-test-signing-key"

type testEnv struct {
	router *gin.Engine
	store  *store.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	cfg := config.Config{
		SessionSigningKey: testSigningKey,
		SignInURL:         "/sign-in",
	}
	srv := NewServer(cfg, st, nil)
	return &testEnv{router: srv.Router(), store: st}
}

func token(t *testing.T, userID string, admin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createApplication(t *testing.T, e *testEnv, tok string, typ string) string {
	t.Helper()
	var body any
	if typ != "" {
		body = map[string]string{"type": typ}
	}
	w := e.do(t, http.MethodPost, "/api/applications", tok, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCreateAndShow(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-1", false)

	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodGet, "/api/applications/"+id, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	app := body["application"].(map[string]any)
	assert.Equal(t, id, app["id"])
	assert.Equal(t, "draft", app["status"])
	assert.Equal(t, float64(0), body["completion"])
}

func TestOwnershipHidesForeignApplications(t *testing.T) {
	e := newTestEnv(t)
	id := createApplication(t, e, token(t, "owner", false), "individual")

	w := e.do(t, http.MethodGet, "/api/applications/"+id, token(t, "intruder", false), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForeignLookupKeepsSessionState(t *testing.T) {
	e := newTestEnv(t)
	ownerTok := token(t, "owner", false)
	callerTok := token(t, "caller", false)
	foreignID := createApplication(t, e, ownerTok, "individual")
	ownID := createApplication(t, e, callerTok, "individual")

	// Unsaved session state: the current step is tracked in the container
	// but not written through to the store.
	w := e.do(t, http.MethodPut, "/api/applications/"+ownID+"/current-step", callerTok,
		map[string]string{"step": "/application"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/applications/"+foreignID, callerTok, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The rejected lookup must not have displaced the caller's own record.
	w = e.do(t, http.MethodGet, "/api/applications/"+ownID+"/navigation", callerTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/application", decode(t, w)["current_step"])
}

func TestRequiresSession(t *testing.T) {
	e := newTestEnv(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	e.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSectionPatchAndNavigation(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-2", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPut, "/api/applications/"+id+"/sections/contact", tok,
		map[string]string{"first_name": "Dana", "last_name": "Whitfield"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Complete the first two steps, then check gating and progress.
	for _, step := range []string{"/application", "/application/contact"} {
		w = e.do(t, http.MethodPost, "/api/applications/"+id+"/steps/complete", tok,
			map[string]string{"step": step})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodGet, "/api/applications/"+id+"/navigation", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(20), body["completion"])
	assert.Equal(t, "/application/education", body["next_incomplete"])
	assert.Equal(t, false, body["can_change_type"])

	navSteps := body["steps"].([]any)
	require.Len(t, navSteps, 10)
	education := navSteps[2].(map[string]any)
	work := navSteps[3].(map[string]any)
	assert.Equal(t, true, education["accessible"])
	assert.Equal(t, false, work["accessible"])
}

func TestCompleteUnknownStep(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-3", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPost, "/api/applications/"+id+"/steps/complete", tok,
		map[string]string{"step": "/application/group-overview"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetCurrentStepGated(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-4", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPut, "/api/applications/"+id+"/current-step", tok,
		map[string]string{"step": "/application/financials"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/current-step", tok,
		map[string]string{"step": "/application"})
	assert.Equal(t, http.StatusOK, w.Code)

	// A path outside the active catalog is unknown, not merely locked.
	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/current-step", tok,
		map[string]string{"step": "/application/partners"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTypeLockIsIrreversible(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-5", false)
	id := createApplication(t, e, tok, "")

	w := e.do(t, http.MethodPut, "/api/applications/"+id+"/type", tok,
		map[string]string{"type": "group"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/applications/"+id+"/type/lock", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/type", tok,
		map[string]string{"type": "individual"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEntityLifecycle(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-6", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPost, "/api/applications/"+id+"/entities/education", tok,
		map[string]any{"institution": "Columbia Law School", "degree": "JD", "end_year": 2009})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entityID := decode(t, w)["id"].(string)
	require.NotEmpty(t, entityID)

	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/entities/education/"+entityID, tok,
		map[string]any{"institution": "NYU School of Law", "degree": "JD", "end_year": 2009})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodDelete, "/api/applications/"+id+"/entities/education/"+entityID, tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodDelete, "/api/applications/"+id+"/entities/education/"+entityID, tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntityPartialUpdate(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-13", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPost, "/api/applications/"+id+"/entities/education", tok,
		map[string]any{"institution": "Columbia Law School", "degree": "JD", "end_year": 2009})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entityID := decode(t, w)["id"].(string)

	// Omitted fields must keep their stored values.
	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/entities/education/"+entityID, tok,
		map[string]any{"degree": "LLM"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodGet, "/api/applications/"+id, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	app := decode(t, w)["application"].(map[string]any)
	entries := app["data"].(map[string]any)["education"].(map[string]any)["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "LLM", entry["degree"])
	assert.Equal(t, "Columbia Law School", entry["institution"])
	assert.Equal(t, float64(2009), entry["end_year"])

	// Updating an unknown entity id is a 404, not an insert.
	w = e.do(t, http.MethodPut, "/api/applications/"+id+"/entities/education/missing", tok,
		map[string]any{"degree": "JSD"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNestedMatters(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-7", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPost, "/api/applications/"+id+"/entities/clients", tok,
		map[string]any{"name": "Harborview Capital"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID := decode(t, w)["id"].(string)

	w = e.do(t, http.MethodPost, "/api/applications/"+id+"/clients/"+clientID+"/matters", tok,
		map[string]any{"description": "Series C financing"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	matterID := decode(t, w)["id"].(string)

	w = e.do(t, http.MethodDelete, "/api/applications/"+id+"/clients/"+clientID+"/matters/"+matterID, tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodPost, "/api/applications/"+id+"/clients/missing/matters", tok,
		map[string]any{"description": "orphan"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFlow(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-8", false)
	id := createApplication(t, e, tok, "individual")

	w := e.do(t, http.MethodPost, "/api/applications/"+id+"/submit", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "submitted", decode(t, w)["status"])

	// A second submit is not a legal transition.
	w = e.do(t, http.MethodPost, "/api/applications/"+id+"/submit", tok, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteDraftOnly(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-9", false)
	id := createApplication(t, e, tok, "individual")

	submitted := createApplication(t, e, tok, "individual")
	w := e.do(t, http.MethodPost, "/api/applications/"+submitted+"/submit", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/api/applications/"+submitted, tok, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodDelete, "/api/applications/"+id, tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/applications/"+id, tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	e := newTestEnv(t)
	userTok := token(t, "user-10", false)
	adminTok := token(t, "reviewer-1", true)
	id := createApplication(t, e, userTok, "individual")

	// Regular users cannot reach admin routes.
	w := e.do(t, http.MethodGet, "/api/admin/applications", userTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodGet, "/api/admin/applications", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["applications"].([]any), 1)

	// draft -> under_review skips submission and must be rejected.
	w = e.do(t, http.MethodPost, "/api/admin/applications/"+id+"/status", adminTok,
		map[string]string{"to": "under_review"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = e.do(t, http.MethodPost, "/api/applications/"+id+"/submit", userTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/admin/applications/"+id+"/status", adminTok,
		map[string]string{"to": "under_review"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "under_review", body["status"])
	history := body["history"].([]any)
	last := history[len(history)-1].(map[string]any)
	assert.Equal(t, "reviewer-1", last["actor_id"])
}

func TestGroupTrackNavigation(t *testing.T) {
	e := newTestEnv(t)
	tok := token(t, "user-11", false)
	id := createApplication(t, e, tok, "group")

	w := e.do(t, http.MethodGet, "/api/applications/"+id+"/navigation", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["steps"].([]any), 14)
	assert.Equal(t, "/application", body["next_incomplete"])
}

func TestCreateRejectsUnknownType(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodPost, "/api/applications", token(t, "user-12", false),
		map[string]string{"type": "partnership"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
