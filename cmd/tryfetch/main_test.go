package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const lukeJSON = `{"message":"ok","result":{"properties":{"name":"Luke Skywalker","height":"172"},"uid":"1"}}`

func serve(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("SWAPI_BASE_URL", srv.URL+"/api")
	t.Setenv("SWAPI_PERSON_ID", "1")
	t.Setenv("LOG_LEVEL", "error")
}

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_PrintsName(t *testing.T) {
	serve(t, http.StatusOK, lukeJSON)

	code, out, _ := runArgs()
	assert.Equal(t, 0, code)
	assert.Equal(t, "Luke Skywalker\n", out)
}

func TestRun_Field(t *testing.T) {
	serve(t, http.StatusOK, lukeJSON)

	code, out, _ := runArgs("-style", "wrapped", "-field", "result.properties.height")
	assert.Equal(t, 0, code)
	assert.Equal(t, "172\n", out)
}

func TestRun_Raw(t *testing.T) {
	serve(t, http.StatusOK, lukeJSON)

	code, out, _ := runArgs("-raw")
	assert.Equal(t, 0, code)
	assert.JSONEq(t, lukeJSON, out)
}

func TestRun_Fallbacks(t *testing.T) {
	serve(t, http.StatusNotFound, `{"message":"not found"}`)
	code, out, _ := runArgs("-style", "pipeline")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Fetch error\n", out)

	serve(t, http.StatusOK, `garbage`)
	code, out, _ = runArgs("-style", "sequential")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Json error\n", out)
}

func TestRun_UncheckedFailureExitsNonZero(t *testing.T) {
	serve(t, http.StatusOK, `garbage`)

	code, out, stderr := runArgs("-style", "unchecked")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "request failed")
}

func TestRun_UnknownStyle(t *testing.T) {
	serve(t, http.StatusOK, lukeJSON)

	code, _, stderr := runArgs("-style", "nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown style")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("SWAPI_PERSON_ID", "zero")

	code, _, _ := runArgs()
	assert.Equal(t, 2, code)
}
