package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/icecross/server"
)

// newEngine builds a test engine with a captured logger.
func newEngine(t *testing.T, maxSteps, maxCells int) (*gin.Engine, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r := server.NewRouter(server.Config{
		BaseURL:     "/api",
		GinMode:     gin.TestMode,
		Controllers: []server.Controller{server.NewCrossingController(maxSteps, maxCells, log)},
		Logger:      log,
	})
	return r.Engine(), hook
}

// post sends body to /api/v1/crossings.
func post(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/crossings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// rowsJSON renders n identical rows of s as a JSON array.
func rowsJSON(n int, s string) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = `"` + s + `"`
	}
	return "[" + strings.Join(rows, ",") + "]"
}

// TestHealth answers with status ok and a request ID header.
func TestHealth(t *testing.T) {
	engine, hook := newEngine(t, 20, 1000)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	_, err := uuid.Parse(w.Header().Get(server.HeaderRequestID))
	assert.NoError(t, err, "X-Request-ID must be a UUID")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

// TestCrossings_Algorithms covers each algorithm on a 3×3 board with a centre iceberg.
func TestCrossings_Algorithms(t *testing.T) {
	engine, _ := newEngine(t, 20, 1000)
	for _, algorithm := range []string{"", "dynprog", "exhaustive", "BOTH"} {
		t.Run("algo="+algorithm, func(t *testing.T) {
			w := post(t, engine, `{"rows":["...",".X.","..."],"algorithm":"`+algorithm+`"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp server.CrossingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, uint64(2), resp.Count)
			assert.Equal(t, 3, resp.Rows)
			assert.Equal(t, 3, resp.Columns)
			assert.Equal(t, 4, resp.Steps)
			assert.Equal(t, 1, resp.Icebergs)
			assert.Equal(t, w.Header().Get(server.HeaderRequestID), resp.ID.String())

			if strings.EqualFold(algorithm, "both") {
				require.NotNil(t, resp.Exhaustive)
				require.NotNil(t, resp.DynProg)
				assert.Equal(t, uint64(2), *resp.Exhaustive)
				assert.Equal(t, uint64(2), *resp.DynProg)
				assert.Equal(t, server.AlgorithmBoth, resp.Algorithm)
			} else {
				assert.Nil(t, resp.Exhaustive)
			}
		})
	}
}

// TestCrossings_Errors maps failures to status codes.
func TestCrossings_Errors(t *testing.T) {
	engine, _ := newEngine(t, 6, 100)
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"MalformedJSON", `{"rows":`, http.StatusBadRequest},
		{"MissingRows", `{"algorithm":"dynprog"}`, http.StatusBadRequest},
		{"EmptyRows", `{"rows":[]}`, http.StatusBadRequest},
		{"Ragged", `{"rows":["..","."]}`, http.StatusBadRequest},
		{"BadCell", `{"rows":["..","o."]}`, http.StatusBadRequest},
		{"UnknownAlgorithm", `{"rows":[".."],"algorithm":"quantum"}`, http.StatusBadRequest},
		{"TooManyCells", `{"rows":` + rowsJSON(11, "..........") + `}`, http.StatusRequestEntityTooLarge},
		{"TooManyCellsRagged", `{"rows":[".","` + strings.Repeat(".", 200) + `"]}`, http.StatusRequestEntityTooLarge},
		{"TooManyCellsLateRow", `{"rows":[".",".","` + strings.Repeat(".", 150) + `"]}`, http.StatusRequestEntityTooLarge},
		{"ExhaustiveStepLimit", `{"rows":` + rowsJSON(5, ".....") + `,"algorithm":"exhaustive"}`, http.StatusUnprocessableEntity},
		{"BothStepLimit", `{"rows":` + rowsJSON(5, ".....") + `,"algorithm":"both"}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, engine, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotEqual(t, uuid.Nil, resp.ID)
		})
	}
}

// TestCrossings_Overflow returns 422 with the exact decimal count.
func TestCrossings_Overflow(t *testing.T) {
	engine, hook := newEngine(t, 20, 10_000)
	w := post(t, engine, `{"rows":`+rowsJSON(35, strings.Repeat(".", 35))+`}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "28453041475240576740", resp.BigCount)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
}

// TestNewCrossingController_ClampsSteps never allows more than 63 steps.
func TestNewCrossingController_ClampsSteps(t *testing.T) {
	engine, _ := newEngine(t, 1000, 1_000_000)
	w := post(t, engine, `{"rows":`+rowsJSON(33, strings.Repeat(".", 33))+`,"algorithm":"exhaustive"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
