package ch

import (
	"context"
	"testing"
)

// TestOpen_BadDSN fails before dialing on an unparseable DSN
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected dsn parse error, got nil")
	}
}

// TestInsert_EmptyBatchIsNoOp sends nothing for an empty row set
func TestInsert_EmptyBatchIsNoOp(t *testing.T) {
	t.Parallel()

	// nil conn is never touched when there is nothing to insert
	cl := &CH{}
	if err := cl.Insert(context.Background(), "telemetry_events", nil); err != nil {
		t.Fatalf("Insert on empty rows returned error: %v", err)
	}
}

func TestBuildClientInfo_Products(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("api", "v1.2.3")
	if len(ci.Products) == 0 {
		t.Fatalf("expected products on client info")
	}
	var sawName, sawRole bool
	for _, p := range ci.Products {
		if p.Name == "devskill" && p.Version == "v1.2.3" {
			sawName = true
		}
		if p.Name == "role" && p.Version == "api" {
			sawRole = true
		}
	}
	if !sawName || !sawRole {
		t.Fatalf("client info missing product tags: %+v", ci.Products)
	}
}
