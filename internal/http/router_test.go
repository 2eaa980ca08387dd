package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizhub-backend/internal/data/aggregates"
	"github.com/yungbote/quizhub-backend/internal/data/repos"
	"github.com/yungbote/quizhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	apphttp "github.com/yungbote/quizhub-backend/internal/http"
	httpH "github.com/yungbote/quizhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/quizhub-backend/internal/http/middleware"
	"github.com/yungbote/quizhub-backend/internal/http/response"
	"github.com/yungbote/quizhub-backend/internal/services"
)

const cookieName = "quiz_session"

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	theDB := testutil.DB(t)
	log := testutil.Logger(t)

	quizzes := repos.NewQuizRepo(theDB, log)
	questions := repos.NewQuestionRepo(theDB, log)
	answers := repos.NewAnswerRepo(theDB, log)
	results := repos.NewResultRepo(theDB, log)
	writer := aggregates.NewQuizAggregate(aggregates.QuizAggregateDeps{
		Base:      aggregates.BaseDeps{DB: theDB, Log: log},
		Quizzes:   quizzes,
		Questions: questions,
		Answers:   answers,
		Results:   results,
	})
	reader := aggregates.NewQuizReader(aggregates.QuizReaderDeps{
		DB: theDB, Log: log,
		Quizzes: quizzes, Questions: questions, Answers: answers, Results: results,
	})

	hasher, _ := services.NewPasswordHasher(services.HasherSHA3)
	codec, err := services.NewSessionCodec("router-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	auth := services.NewAuthService(theDB, log, repos.NewUserRepo(theDB, log), repos.NewCredentialRepo(theDB, log), hasher, codec, nil, nil)

	engine := apphttp.NewRouter(apphttp.RouterConfig{
		Log:            log,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, auth, cookieName),
		QuizHandler:    httpH.NewQuizHandler(log, services.NewQuizService(log, writer, reader, nil)),
		UserHandler:    httpH.NewUserHandler(log, auth, httpH.CookieConfig{Name: cookieName}),
		HealthHandler:  httpH.NewHealthHandler(theDB),
	})
	return apiClient{t: t, engine: engine}
}

type call struct {
	method  string
	path    string
	body    any
	cookie  *http.Cookie
	claimed *string
}

func (a apiClient) do(c call) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if c.body != nil {
		if err := json.NewEncoder(&buf).Encode(c.body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(c.method, c.path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	if c.claimed != nil {
		req.Header.Set(httpMW.HeaderClaimedUser, *c.claimed)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

// signup registers and logs in, returning the user id and session cookie.
func (a apiClient) signup(email string) (uint, *http.Cookie) {
	a.t.Helper()
	rec := a.do(call{method: http.MethodPost, path: "/api/users", body: map[string]string{
		"name": "Tester", "email": email, "password": "pw",
	}})
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}
	var id uint
	decode(a.t, rec, &id)

	rec = a.do(call{method: http.MethodPost, path: "/api/users/login", body: map[string]string{
		"username": email, "password": "pw",
	}})
	if rec.Code != http.StatusOK {
		a.t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}
	var user types.User
	decode(a.t, rec, &user)
	if user.ID != id {
		a.t.Fatalf("login returned user %d, want %d", user.ID, id)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName && ck.Value != "" {
			return id, ck
		}
	}
	a.t.Fatalf("login did not set %s cookie", cookieName)
	return 0, nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env response.ErrorEnvelope
	decode(t, rec, &env)
	return env.Error.Code
}

func idString(id uint) *string {
	s := fmt.Sprint(id)
	return &s
}

func TestHealthcheck(t *testing.T) {
	api := newAPI(t)
	rec := api.do(call{method: http.MethodGet, path: "/healthcheck"})
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestQuizLifecycleOverHTTP(t *testing.T) {
	api := newAPI(t)
	uid, cookie := api.signup("author@example.com")
	in := testutil.SampleIncoming("Solar system", 2, 3, 2)

	rec := api.do(call{method: http.MethodPost, path: "/api/quizzes", body: in, cookie: cookie})
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "not_found" {
		t.Fatalf("missing claim: %d %s", rec.Code, rec.Body.String())
	}
	rec = api.do(call{method: http.MethodPost, path: "/api/quizzes", body: in, cookie: cookie, claimed: idString(uid + 1)})
	if rec.Code != http.StatusUnauthorized || errorCode(t, rec) != "unauthorized" {
		t.Fatalf("wrong claim: %d %s", rec.Code, rec.Body.String())
	}
	rec = api.do(call{method: http.MethodPost, path: "/api/quizzes", body: in, claimed: idString(uid)})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("claim without session: %d %s", rec.Code, rec.Body.String())
	}

	rec = api.do(call{method: http.MethodPost, path: "/api/quizzes", body: in, cookie: cookie, claimed: idString(uid)})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)

	rec = api.do(call{method: http.MethodGet, path: fmt.Sprintf("/api/quizzes/%d", created.ID)})
	if rec.Code != http.StatusOK {
		t.Fatalf("get: %d %s", rec.Code, rec.Body.String())
	}
	var full types.FullQuiz
	decode(t, rec, &full)
	if full.Quiz.Name != "Solar system" || full.Quiz.OwnerID != uid || len(full.Questions) != 2 || len(full.Answers[1]) != 3 || len(full.Results) != 2 {
		t.Fatalf("unexpected aggregate: %+v", full)
	}

	rec = api.do(call{method: http.MethodGet, path: "/api/quizzes/search?query=solar+system"})
	var hits []types.Quiz
	decode(t, rec, &hits)
	if rec.Code != http.StatusOK || len(hits) != 1 || hits[0].ID != created.ID {
		t.Fatalf("search: %d %s", rec.Code, rec.Body.String())
	}

	rec = api.do(call{method: http.MethodGet, path: "/api/me/quizzes", cookie: cookie, claimed: idString(uid)})
	var mine []types.Quiz
	decode(t, rec, &mine)
	if rec.Code != http.StatusOK || len(mine) != 1 {
		t.Fatalf("mine: %d %s", rec.Code, rec.Body.String())
	}

	rec = api.do(call{method: http.MethodDelete, path: fmt.Sprintf("/api/quizzes/%d", created.ID), cookie: cookie, claimed: idString(uid)})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}
	rec = api.do(call{method: http.MethodGet, path: fmt.Sprintf("/api/quizzes/%d", created.ID)})
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "not_found" {
		t.Fatalf("get after delete: %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateQuizValidation(t *testing.T) {
	api := newAPI(t)
	uid, cookie := api.signup("v@example.com")

	in := testutil.SampleIncoming("Lopsided", 2, 1, 0)
	in.Answers = in.Answers[:1]
	rec := api.do(call{method: http.MethodPost, path: "/api/quizzes", body: in, cookie: cookie, claimed: idString(uid)})
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "validation" {
		t.Fatalf("mismatched answers: %d %s", rec.Code, rec.Body.String())
	}

	rec = api.do(call{method: http.MethodGet, path: "/api/quizzes/abc"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: %d %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteByAnotherUserIsNotFound(t *testing.T) {
	api := newAPI(t)
	owner, ownerCookie := api.signup("owner@example.com")
	other, otherCookie := api.signup("other@example.com")

	rec := api.do(call{method: http.MethodPost, path: "/api/quizzes", body: testutil.SampleIncoming("Mine", 1, 1, 1), cookie: ownerCookie, claimed: idString(owner)})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)

	rec = api.do(call{method: http.MethodDelete, path: fmt.Sprintf("/api/quizzes/%d", created.ID), cookie: otherCookie, claimed: idString(other)})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: %d %s", rec.Code, rec.Body.String())
	}
}

func TestProfileAndLogout(t *testing.T) {
	api := newAPI(t)
	uid, cookie := api.signup("me@example.com")
	other, _ := api.signup("you@example.com")

	rec := api.do(call{method: http.MethodGet, path: fmt.Sprintf("/api/users/%d", uid), cookie: cookie})
	var me types.User
	decode(t, rec, &me)
	if rec.Code != http.StatusOK || me.ID != uid || me.Email != "me@example.com" {
		t.Fatalf("own profile: %d %s", rec.Code, rec.Body.String())
	}
	for _, c := range []call{
		{method: http.MethodGet, path: fmt.Sprintf("/api/users/%d", other), cookie: cookie},
		{method: http.MethodGet, path: fmt.Sprintf("/api/users/%d", uid)},
	} {
		rec = api.do(c)
		if rec.Code != http.StatusOK || rec.Body.String() != "null" {
			t.Fatalf("%s: expected null, got %d %s", c.path, rec.Code, rec.Body.String())
		}
	}

	rec = api.do(call{method: http.MethodPost, path: "/api/users/login", body: map[string]string{"username": "me@example.com", "password": "nope"}})
	if rec.Code != http.StatusOK || rec.Body.String() != "null" {
		t.Fatalf("bad login: %d %s", rec.Code, rec.Body.String())
	}

	rec = api.do(call{method: http.MethodPost, path: "/api/users/logout", cookie: cookie})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: %d", rec.Code)
	}
	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout did not clear the session cookie")
	}

	rec = api.do(call{method: http.MethodPost, path: "/api/users/logout"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("anonymous logout: %d", rec.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := newAPI(t)
	api.signup("dup@example.com")
	rec := api.do(call{method: http.MethodPost, path: "/api/users", body: map[string]string{
		"name": "Again", "email": "dup@example.com", "password": "pw",
	}})
	if rec.Code != http.StatusConflict || errorCode(t, rec) != "conflict" {
		t.Fatalf("duplicate: %d %s", rec.Code, rec.Body.String())
	}
}
