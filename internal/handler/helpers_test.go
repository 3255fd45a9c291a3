package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"betdiary/internal/apperr"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestIntQuery(t *testing.T) {
	c, _ := testContext(t, "/x?limit=25&bad=abc")
	if got := intQuery(c, "limit", 100); got != 25 {
		t.Fatalf("intQuery(limit) = %d, want 25", got)
	}
	if got := intQuery(c, "bad", 100); got != 100 {
		t.Fatalf("intQuery(bad) = %d, want default 100", got)
	}
	if got := intQuery(c, "missing", 7); got != 7 {
		t.Fatalf("intQuery(missing) = %d, want default 7", got)
	}
}

func TestStrQueryPtr(t *testing.T) {
	c, _ := testContext(t, "/x?status=PENDING&blank=%20%20")
	if got := strQueryPtr(c, "status"); got == nil || *got != "PENDING" {
		t.Fatalf("strQueryPtr(status) = %v", got)
	}
	if got := strQueryPtr(c, "blank"); got != nil {
		t.Fatalf("whitespace-only value must be nil, got %q", *got)
	}
	if got := strQueryPtr(c, "missing"); got != nil {
		t.Fatalf("missing value must be nil")
	}
}

func TestUint64Param(t *testing.T) {
	c, _ := testContext(t, "/x")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	if got := uint64Param(c, "id"); got != 42 {
		t.Fatalf("uint64Param = %d, want 42", got)
	}
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if got := uint64Param(c, "id"); got != 0 {
		t.Fatalf("invalid id must map to 0, got %d", got)
	}
}

func TestPaginationMeta(t *testing.T) {
	meta := paginationMeta(10, 20, 35)
	if meta["has_next"] != true {
		t.Fatalf("20+10 < 35 must have next page: %+v", meta)
	}
	meta = paginationMeta(10, 30, 35)
	if meta["has_next"] != false {
		t.Fatalf("30+10 >= 35 must not have next page: %+v", meta)
	}
}

func TestFailStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest},
		{apperr.NotFound("missing"), http.StatusNotFound},
		{apperr.Conflict("duplicate"), http.StatusConflict},
		{apperr.ReferenceInUse("referenced"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		c, rec := testContext(t, "/x")
		Fail(c, tt.err)
		if rec.Code != tt.want {
			t.Fatalf("Fail(%v) wrote %d, want %d", tt.err, rec.Code, tt.want)
		}
		var body apiResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid envelope: %v", err)
		}
		if body.Message == "" || body.Code != tt.want {
			t.Fatalf("envelope mismatch: %+v", body)
		}
	}
}

func TestOkEnvelope(t *testing.T) {
	c, rec := testContext(t, "/x")
	Ok(c, gin.H{"hello": "world"}, map[string]any{"total": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body.Code != 0 || body.Message != "ok" || body.Data == nil {
		t.Fatalf("envelope mismatch: %+v", body)
	}
}
