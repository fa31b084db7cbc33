package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmlr/goflowchart/internal/adapters/redis"
)

func postRender(t *testing.T, handler http.Handler, body RenderRequest) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/render", bytes.NewReader(data))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRender_DSL(t *testing.T) {
	handler := NewHandler()

	rr := postRender(t, handler, RenderRequest{Code: "a()\nb()"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.DSL, "sub0=>subroutine: a()")
	assert.Contains(t, resp.DSL, "sub0->sub1")
	assert.False(t, resp.Cached)
}

func TestRender_OptionsChangeOutput(t *testing.T) {
	handler := NewHandler()
	code := "if a == 1 {\n\tprint(a)\n}"

	rr := postRender(t, handler, RenderRequest{Code: code})
	var simplified RenderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &simplified))
	assert.Contains(t, simplified.DSL, "print(a) if a == 1")

	off := false
	rr = postRender(t, handler, RenderRequest{Code: code, Simplify: &off})
	var full RenderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &full))
	assert.Contains(t, full.DSL, "cond0=>condition: if a == 1")
}

func TestRender_HTMLFormat(t *testing.T) {
	handler := NewHandler()

	rr := postRender(t, handler, RenderRequest{Code: "x = 1", Format: "html"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "flowchart.parse(")
}

func TestRender_BadRequests(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest("POST", "/render", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postRender(t, handler, RenderRequest{Code: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRender_UnparsableSource(t *testing.T) {
	handler := NewHandler()

	rr := postRender(t, handler, RenderRequest{Code: "for if func )"})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRender_CacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	handler := NewHandler(WithCache(cache))

	body := RenderRequest{Code: "work()"}

	var first, second RenderResponse
	require.NoError(t, json.Unmarshal(postRender(t, handler, body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(postRender(t, handler, body).Body.Bytes(), &second))

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.DSL, second.DSL)
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "goflowchart-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
}

func TestMetricsExposed(t *testing.T) {
	handler := NewHandler()
	postRender(t, handler, RenderRequest{Code: "x = 1"})

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "goflowchart_http_renders_total")
}
