package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/scheduler"
	"github.com/MrSnakeDoc/sharelink/internal/sources/contacts"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

type testEnv struct {
	handler http.Handler
	store   *state.Store
	clip    *actions.MemoryClipboard
	opener  *actions.RecordingOpener
	links   *scheduler.LinkOpener
}

func newTestEnv(t *testing.T, seed string) *testEnv {
	t.Helper()
	return newTestEnvWith(t, seed, nil)
}

func newTestEnvWith(t *testing.T, seed string, tweak func(*deps.Deps)) *testEnv {
	t.Helper()

	log := logger.NewNop()
	env := &testEnv{
		store:  state.NewStore(state.DefaultCustomMessage, domain.PlatformWhatsApp),
		clip:   actions.NewMemoryClipboard(),
		opener: &actions.RecordingOpener{},
	}
	env.links = scheduler.NewLinkOpener(env.opener, log, time.Millisecond)
	t.Cleanup(env.links.Stop)

	d := deps.Deps{
		Logger:     log,
		StartTime:  time.Now(),
		Version:    "test",
		Store:      env.store,
		Clipboard:  env.clip,
		LinkOpener: env.links,
	}
	if seed != "" {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))
		d.Importer = contacts.NewImporter(path, log)
	}
	if tweak != nil {
		tweak(&d)
	}

	cfg := &config.Config{
		ListenPort:     ":0",
		RequestTimeout: 2 * time.Second,
	}
	env.handler = New(cfg, log, d).Handler()
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type stateBody struct {
	Result         string                 `json:"result"`
	CustomMessage  string                 `json:"custom_message"`
	Platform       string                 `json:"platform"`
	Contacts       []domain.Contact       `json:"contacts"`
	Selected       []string               `json:"selected"`
	Links          []domain.GeneratedLink `json:"links"`
	Message        string                 `json:"message"`
	CanGenerate    bool                   `json:"can_generate"`
	DisabledReason string                 `json:"disabled_reason"`
}

func TestFullFlow(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[stateBody](t, rec)
	assert.False(t, st.CanGenerate)
	assert.Equal(t, "empty_result", st.DisabledReason)

	rec = env.do(t, http.MethodPut, "/api/draft", `{"result":"Wordle 1,234 4/6"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st = decode[stateBody](t, rec)
	assert.Equal(t, "Check out my Wordle result!\n\nWordle 1,234 4/6", st.Message)
	assert.Equal(t, "no_selection", st.DisabledReason)

	rec = env.do(t, http.MethodPost, "/api/contacts", `{"name":"Mom","info":"+1 (234) 567-8900"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	mom := decode[domain.Contact](t, rec)

	rec = env.do(t, http.MethodPost, "/api/contacts", `{"name":"Wordle Gang","info":"Wordle Gang"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/selection", "")
	st = decode[stateBody](t, rec)
	assert.Len(t, st.Selected, 2)
	assert.True(t, st.CanGenerate)

	rec = env.do(t, http.MethodPost, "/api/links", "")
	require.Equal(t, http.StatusOK, rec.Code)
	links := decode[struct {
		Links []domain.GeneratedLink `json:"links"`
		Count int                    `json:"count"`
	}](t, rec)
	require.Equal(t, 2, links.Count)
	assert.Equal(t, mom.ID, links.Links[0].Contact.ID)
	assert.Equal(t, "https://wa.me/12345678900?text=Check%20out%20my%20Wordle%20result!%0A%0AWordle%201%2C234%204%2F6", links.Links[0].URL)
	assert.Equal(t, domain.KindIndividual, links.Links[0].Kind)
	assert.Equal(t, "https://web.whatsapp.com/", links.Links[1].URL)
	assert.Equal(t, domain.GroupNote, links.Links[1].Note)

	rec = env.do(t, http.MethodGet, "/api/links/text", "")
	assert.Equal(t, "Mom: "+links.Links[0].URL+"\nWordle Gang: https://web.whatsapp.com/", rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/copy/links", "")
	assert.True(t, decode[struct {
		Copied bool `json:"copied"`
	}](t, rec).Copied)
	assert.Equal(t, "Mom: "+links.Links[0].URL+"\nWordle Gang: https://web.whatsapp.com/", env.clip.Text())

	rec = env.do(t, http.MethodPost, "/api/links/open", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	env.links.Wait()
	assert.Equal(t, []string{links.Links[0].URL, "https://web.whatsapp.com/"}, env.opener.Opened())

	rec = env.do(t, http.MethodDelete, "/api/links", "")
	st = decode[stateBody](t, rec)
	assert.Empty(t, st.Links)
	assert.Empty(t, st.Selected)
	assert.Len(t, st.Contacts, 2)
}

func TestGenerateDisabled(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPost, "/api/links", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty_result")
}

func TestAddContactRejected(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPost, "/api/contacts", `{"name":"  ","info":"+1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, env.store.Count())

	rec = env.do(t, http.MethodPost, "/api/contacts", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteContactIdempotent(t *testing.T) {
	env := newTestEnv(t, "")
	c, _ := env.store.AddContact("Mom", "+1")
	env.store.ToggleSelect(c.ID)

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodDelete, "/api/contacts/"+c.ID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	st := env.store.Snapshot()
	assert.Empty(t, st.Contacts)
	assert.Empty(t, st.Selected)
}

func TestToggleSelection(t *testing.T) {
	env := newTestEnv(t, "")
	a, _ := env.store.AddContact("A", "+1")
	env.store.AddContact("B", "+2")

	st := decode[stateBody](t, env.do(t, http.MethodPost, "/api/selection/"+a.ID+"/toggle", ""))
	assert.Equal(t, []string{a.ID}, st.Selected)

	st = decode[stateBody](t, env.do(t, http.MethodPost, "/api/selection/toggle-all", ""))
	assert.Len(t, st.Selected, 2)

	st = decode[stateBody](t, env.do(t, http.MethodPost, "/api/selection/toggle-all", ""))
	assert.Empty(t, st.Selected)

	env.store.SelectAll()
	st = decode[stateBody](t, env.do(t, http.MethodDelete, "/api/selection", ""))
	assert.Empty(t, st.Selected)
}

func TestUpdateDraftPlatform(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPut, "/api/draft", `{"platform":"telegram","custom_message":"yo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[stateBody](t, rec)
	assert.Equal(t, "telegram", st.Platform)
	assert.Equal(t, "yo", st.CustomMessage)

	rec = env.do(t, http.MethodPut, "/api/draft", `{"platform":"pager","result":"ignored"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "", env.store.Snapshot().Result, "rejected update must not apply other fields")

	rec = env.do(t, http.MethodGet, "/api/message", "")
	assert.Equal(t, "yo\n\n", rec.Body.String())
}

func TestImportContacts(t *testing.T) {
	env := newTestEnv(t, "contacts:\n  - name: Alice\n    info: \"@alice\"\n")

	rec := env.do(t, http.MethodPost, "/api/contacts/import", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contacts.Result{Added: 1}, decode[contacts.Result](t, rec))
	assert.Equal(t, 1, env.store.Count())
}

func TestImportContactsWithoutSeed(t *testing.T) {
	env := newTestEnv(t, "")
	rec := env.do(t, http.MethodPost, "/api/contacts/import", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInfraEndpoints(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = env.do(t, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/infra", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"full"`)

	rec = env.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wordle Bulk Sender")
}

func TestRouteGroupGuards(t *testing.T) {
	// httptest requests come from 192.0.2.1 with Host example.com
	tests := []struct {
		name  string
		tweak func(*deps.Deps)
		want  map[string]int
	}{
		{
			name:  "cidr filter",
			tweak: func(d *deps.Deps) { d.AllowedCIDRS = []string{"127.0.0.1"} },
			want: map[string]int{
				"/healthz":   http.StatusOK,
				"/readyz":    http.StatusForbidden,
				"/infra":     http.StatusForbidden,
				"/":          http.StatusForbidden,
				"/api/state": http.StatusForbidden,
			},
		},
		{
			name:  "host filter",
			tweak: func(d *deps.Deps) { d.AllowedHosts = []string{"sharelink.local"} },
			want: map[string]int{
				"/healthz":   http.StatusOK,
				"/readyz":    http.StatusOK,
				"/":          http.StatusForbidden,
				"/api/state": http.StatusForbidden,
			},
		},
		{
			name:  "allowed client",
			tweak: func(d *deps.Deps) { d.AllowedCIDRS = []string{"192.0.2.0/24"} },
			want: map[string]int{
				"/":          http.StatusOK,
				"/api/state": http.StatusOK,
				"/readyz":    http.StatusOK,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvWith(t, "", tt.tweak)
			for path, code := range tt.want {
				assert.Equal(t, code, env.do(t, http.MethodGet, path, "").Code, path)
			}
		})
	}
}
