package apictx_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/namefilter/internal/apictx"
	"github.com/zhulik/namefilter/internal/core"
)

var _ = Describe("Middleware", func() {
	var (
		e      *echo.Echo
		seen   *apictx.APICtx
		record = func(req *http.Request) *httptest.ResponseRecorder {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			return rec
		}
	)

	BeforeEach(func() {
		seen = nil
		e = echo.New()
		e.Use(apictx.Middleware())
		e.GET("/probe", func(c *echo.Context) error {
			seen = apictx.MustFromContext(c.Request().Context())

			return c.NoContent(http.StatusNoContent)
		})
	})

	It("keeps the caller's request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(core.RequestIDHeader, "req-1")

		rec := record(req)

		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(seen.RequestID).To(Equal("req-1"))
		Expect(seen.Method).To(Equal(http.MethodGet))
		Expect(seen.Path).To(Equal("/probe"))
		Expect(rec.Header().Get(core.RequestIDHeader)).To(Equal("req-1"))
	})

	It("generates a request id when none is given", func() {
		rec := record(httptest.NewRequest(http.MethodGet, "/probe", nil))

		Expect(uuid.Validate(seen.RequestID)).To(Succeed())
		Expect(rec.Header().Get(core.RequestIDHeader)).To(Equal(seen.RequestID))
	})

	It("is absent outside of requests", func() {
		Expect(apictx.FromContext(context.Background())).To(BeNil())
		Expect(func() { apictx.MustFromContext(context.Background()) }).To(Panic())
	})
})
