package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"herald/internal/core/event"
	"herald/internal/core/report"
	"herald/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	c := New()
	c.Use(mark("outer"))
	c.Use(mark("inner"))

	h := c.Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecover_PublishesUnhandledError(t *testing.T) {
	log := logger.Discard()
	bus := event.New(log)
	r := report.NewReporter(bus, log, 5, time.Hour)
	defer r.Close()

	h := Recover(bus, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler down")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	reports := r.Recent()
	require.Len(t, reports, 1)
	assert.Equal(t, "GET /boom", reports[0].Source)
	assert.Contains(t, rec.Body.String(), reports[0].ID.String())
}

func TestRecover_RepanicsAbortHandler(t *testing.T) {
	bus := event.New(nil)

	h := Recover(bus, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
