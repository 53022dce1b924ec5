package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/pkg/errorx"
)

type greetRequest struct {
	Name   string `json:"name"`
	Cursor int    `json:"cursor"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
	Cursor   int    `json:"cursor"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()

	var resp struct {
		Code  int64           `json:"code"`
		Error string          `json:"error,omitempty"`
		Data  json.RawMessage `json:"data,omitempty"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return response{Code: resp.Code, Error: resp.Error, Data: resp.Data}
}

func TestRouter_GET(t *testing.T) {
	r := New()
	GET(r, "/greet", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{Greeting: "hello " + req.Name, Cursor: req.Cursor}, nil
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet?name=alice&cursor=20", nil))

	resp := decodeBody(t, rec)
	require.Equal(t, int64(0), resp.Code)

	var data greetResponse
	require.NoError(t, json.Unmarshal(resp.Data.(json.RawMessage), &data))
	require.Equal(t, "hello alice", data.Greeting)
	require.Equal(t, 20, data.Cursor)
}

func TestRouter_GET_invalidQuery(t *testing.T) {
	r := New()
	GET(r, "/greet", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{}, nil
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet?cursor=abc", nil))

	resp := decodeBody(t, rec)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
}

func TestRouter_POST(t *testing.T) {
	r := New()
	POST(r, "/greet", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{Greeting: "hello " + req.Name}, nil
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/greet", strings.NewReader(`{"name":"bob"}`)))

	resp := decodeBody(t, rec)
	require.Equal(t, int64(0), resp.Code)

	var data greetResponse
	require.NoError(t, json.Unmarshal(resp.Data.(json.RawMessage), &data))
	require.Equal(t, "hello bob", data.Greeting)
}

func TestRouter_POST_wrongMethod(t *testing.T) {
	r := New()
	POST(r, "/greet", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{}, nil
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/greet", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_errorEnvelope(t *testing.T) {
	r := New()
	GET(r, "/missing", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found user")
	})
	GET(r, "/broken", func(_ context.Context, req *greetRequest) (*greetResponse, error) {
		return nil, context.DeadlineExceeded
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	resp := decodeBody(t, rec)
	require.Equal(t, int64(errorx.NotFound), resp.Code)
	require.Equal(t, "Not found user", resp.Error)

	// Non-errorx errors never leak their message.
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	resp = decodeBody(t, rec)
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)
}

func TestRouter_middleware(t *testing.T) {
	type ctxKey struct{}

	r := New()
	r.Use(func(ctx context.Context, req *http.Request) (context.Context, error) {
		return context.WithValue(ctx, ctxKey{}, req.Header.Get("X-Test")), nil
	})
	GET(r, "/greet", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		value, _ := ctx.Value(ctxKey{}).(string)
		return &greetResponse{Greeting: value}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/greet", nil)
	req.Header.Set("X-Test", "through")
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	resp := decodeBody(t, rec)
	var data greetResponse
	require.NoError(t, json.Unmarshal(resp.Data.(json.RawMessage), &data))
	require.Equal(t, "through", data.Greeting)
}
