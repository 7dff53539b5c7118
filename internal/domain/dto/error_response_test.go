package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "symbol is required"}
	if e.Error() != "symbol is required" {
		t.Fatalf("want 'symbol is required' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "upstream data source error", ErrorDetails: "nse: /api/allIndices returned status 503"}
	if e2.Error() != "upstream data source error: nse: /api/allIndices returned status 503" {
		t.Fatalf("unexpected %q", e2.Error())
	}
}

func TestErrorResponse_JSONOmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("no data found", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"error"`) {
		t.Fatalf("empty details should be omitted: %s", b)
	}
	if !strings.Contains(string(b), `"no data found"`) {
		t.Fatalf("missing message: %s", b)
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("boom")
	e2 := NewErrorResponse("msg", err)
	if e2.ErrorDetails != "boom" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}
