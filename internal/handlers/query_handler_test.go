package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mroyme/NL2SQL/internal/handlers"
	"github.com/mroyme/NL2SQL/internal/middlewares"
	"github.com/mroyme/NL2SQL/internal/repositories"
	"github.com/mroyme/NL2SQL/internal/routes"
	"github.com/mroyme/NL2SQL/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schemaRepo := repositories.NewSchemaRepository()
	sessionRepo := repositories.NewSessionRepository(time.Hour)
	queryService := services.NewQueryService(
		services.NewGeneratorService(0),
		services.NewExecutorService(0),
		schemaRepo,
		sessionRepo,
		5,
	)
	schemaService := services.NewSchemaService(schemaRepo)

	router := gin.New()
	routes.RegisterRoutes(
		router,
		handlers.NewSchemaHandler(schemaService),
		handlers.NewQueryHandler(queryService),
		middlewares.Session(sessionRepo, 3600),
	)
	return router
}

// client keeps the session cookie across requests, like a browser would.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (cl *client) do(method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	cl.t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookie {
			cl.cookie = c
		}
	}

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(cl.t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestGenerateExecuteClearFlow(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, resp := cl.do(http.MethodPost, "/api/v1/query/generate",
		`{"question":"What is the total count of users we have?","database":"ecommerce_db","tables":["users"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", resp["status"])
	data := resp["data"].(map[string]interface{})
	require.Equal(t, "SELECT COUNT(*) as total_users FROM users WHERE is_active = TRUE;", data["sql"])

	w, resp = cl.do(http.MethodPost, "/api/v1/query/execute", "")
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	require.Equal(t, float64(1), data["row_count"])
	require.Equal(t, float64(1), data["column_count"])
	results := data["results"].(map[string]interface{})
	rows := results["rows"].([]interface{})
	require.Equal(t, float64(1247), rows[0].(map[string]interface{})["total_users"])

	w, resp = cl.do(http.MethodGet, "/api/v1/query/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	require.Equal(t, float64(1), data["count"])

	w, _ = cl.do(http.MethodPost, "/api/v1/query/clear", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = cl.do(http.MethodGet, "/api/v1/query", "")
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	require.Equal(t, "empty", data["state"])
	require.Equal(t, float64(1), data["history_count"])
}

func TestGenerate_MissingFields(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, resp := cl.do(http.MethodPost, "/api/v1/query/generate", `{"question":"count users"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error", resp["status"])
}

func TestGenerate_UnknownDatabase(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, _ := cl.do(http.MethodPost, "/api/v1/query/generate",
		`{"question":"count users","database":"warehouse_db","tables":["users"]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecute_BeforeGenerate(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, _ := cl.do(http.MethodPost, "/api/v1/query/execute", "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSimulatedActions(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	// Nothing generated yet: every action is rejected.
	w, _ := cl.do(http.MethodPost, "/api/v1/query/copy-sql", "")
	require.Equal(t, http.StatusConflict, w.Code)
	w, _ = cl.do(http.MethodPost, "/api/v1/query/download-csv", "")
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = cl.do(http.MethodPost, "/api/v1/query/generate",
		`{"question":"count users","database":"ecommerce_db","tables":["users"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := cl.do(http.MethodPost, "/api/v1/query/copy-sql", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "SQL copied to clipboard!", resp["message"])

	// Copying data still needs results.
	w, _ = cl.do(http.MethodPost, "/api/v1/query/copy-data", "")
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = cl.do(http.MethodPost, "/api/v1/query/execute", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = cl.do(http.MethodPost, "/api/v1/query/copy-data", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Data copied to clipboard!", resp["message"])

	w, resp = cl.do(http.MethodPost, "/api/v1/query/download-csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "CSV download started!", resp["message"])
}

func TestExplainEndpoint(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, _ := cl.do(http.MethodPost, "/api/v1/query/explain", "")
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = cl.do(http.MethodPost, "/api/v1/query/generate",
		`{"question":"count users","database":"ecommerce_db","tables":["users","orders"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := cl.do(http.MethodPost, "/api/v1/query/explain", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	require.Equal(t, "Data retrieval/aggregation", data["operation"])
	tables := data["tables"].([]interface{})
	require.Len(t, tables, 2)
}

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	cl := &client{t: t, router: newTestRouter(t)}

	w, _ := cl.do(http.MethodGet, "/api/v1/query", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cl.cookie)
	first := cl.cookie.Value

	w, _ = cl.do(http.MethodGet, "/api/v1/query", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, first, cl.cookie.Value)
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)
	alice := &client{t: t, router: router}
	bob := &client{t: t, router: router}

	w, _ := alice.do(http.MethodPost, "/api/v1/query/generate",
		`{"question":"count users","database":"ecommerce_db","tables":["users"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := bob.do(http.MethodGet, "/api/v1/query", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	require.Equal(t, "empty", data["state"])
	require.Equal(t, float64(0), data["history_count"])
}
