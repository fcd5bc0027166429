package home_test

import (
	"testing"

	"github.com/mnogodumalon/kurs70/internal/app/features/home"
	"github.com/mnogodumalon/kurs70/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRoot_RedirectsToDashboard(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()

	handler.ServeRoot(rec, req)

	rec.AssertRedirect(t, "/dashboard")
}

func TestRoutes(t *testing.T) {
	r := home.Routes(home.NewHandler(zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/"))

	rec.AssertRedirect(t, "/dashboard")
}
