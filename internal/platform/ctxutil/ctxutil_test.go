package ctxutil

import (
	"context"
	"testing"
)

func TestTraceRoundTrip(t *testing.T) {
	if _, ok := TraceFrom(context.Background()); ok {
		t.Fatalf("bare context should carry no trace")
	}
	ctx := WithTrace(context.Background(), Trace{RequestID: "req-1", TraceID: "abc"})
	tr, ok := TraceFrom(ctx)
	if !ok || tr.RequestID != "req-1" || tr.TraceID != "abc" {
		t.Fatalf("unexpected trace: %+v ok=%v", tr, ok)
	}
	fields := tr.LogFields()
	if len(fields) != 4 || fields[0] != "trace_id" || fields[3] != "req-1" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
	if got := (Trace{RequestID: "only"}).LogFields(); len(got) != 2 || got[0] != "request_id" {
		t.Fatalf("empty ids should be skipped: %v", got)
	}
}

func TestSessionUserID(t *testing.T) {
	if _, ok := SessionUserID(context.Background()); ok {
		t.Fatalf("anonymous context reported a user")
	}
	ctx := WithRequestData(context.Background(), &RequestData{UserID: 7, SessionID: "s"})
	if uid, ok := SessionUserID(ctx); !ok || uid != 7 {
		t.Fatalf("expected user 7, got %d ok=%v", uid, ok)
	}
	if _, ok := SessionUserID(WithRequestData(context.Background(), &RequestData{})); ok {
		t.Fatalf("zero user id must read as anonymous")
	}
}
