package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcampos/quill/internal/workspace"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Token: "secret-token"})
}

func TestClientSendsAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got == "" {
			t.Error("missing version header")
		}
		fmt.Fprint(w, `{"id":"u1","name":"Freya"}`)
	})

	u, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if u.Name != "Freya" {
		t.Errorf("Name = %q", u.Name)
	}
}

func TestClientDatabaseSchema(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db-1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"id": "db-1",
			"title": [{"plain_text": "Tasks"}],
			"properties": {
				"Name": {"type": "title"},
				"Status": {"type": "status", "status": {"options": [{"id":"o1","name":"Done"}], "groups": []}}
			}
		}`)
	})

	schema, err := client.Schema(context.Background(), "db-1")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if schema.Len() != 2 {
		t.Fatalf("expected 2 properties, got %d", schema.Len())
	}
	status, ok := schema.Get("Status")
	if !ok || status.Type != workspace.TypeStatus {
		t.Errorf("Status = %+v, %v", status, ok)
	}
}

func TestClientQuerySerializesFilter(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		fmt.Fprint(w, `{"results": [], "has_more": false}`)
	})

	filter := workspace.Leaf("Status", workspace.TypeStatus, "equals", "Done")
	_, err := client.QueryDatabase(context.Background(), "db-1", QueryRequest{Filter: filter, PageSize: 25})
	if err != nil {
		t.Fatalf("QueryDatabase: %v", err)
	}

	if got, want := string(gotBody["filter"]), `{"property":"Status","status":{"equals":"Done"}}`; got != want {
		t.Errorf("filter body = %s, want %s", got, want)
	}
	if got := string(gotBody["page_size"]); got != "25" {
		t.Errorf("page_size = %s", got)
	}
}

func TestClientQueryAllFollowsCursors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req QueryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch calls {
		case 1:
			if req.StartCursor != "" {
				t.Errorf("first call cursor = %q", req.StartCursor)
			}
			fmt.Fprint(w, `{"results": [{"id": "p1"}], "has_more": true, "next_cursor": "c2"}`)
		default:
			if req.StartCursor != "c2" {
				t.Errorf("second call cursor = %q", req.StartCursor)
			}
			fmt.Fprint(w, `{"results": [{"id": "p2"}], "has_more": false}`)
		}
	})

	pages, err := client.QueryAll(context.Background(), "db-1", QueryRequest{})
	if err != nil {
		t.Fatalf("QueryAll: %v", err)
	}
	if len(pages) != 2 || pages[0].ID != "p1" || pages[1].ID != "p2" {
		t.Errorf("pages = %+v", pages)
	}
	if calls != 2 {
		t.Errorf("calls = %d", calls)
	}
}

func TestClientCreatePageBody(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"id": "p-new"}`)
	})

	payload := workspace.WritePayload{"Status": workspace.SelectValue("Done")}
	page, err := client.CreatePage(context.Background(), "db-1", payload)
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	if page.ID != "p-new" {
		t.Errorf("ID = %q", page.ID)
	}
	if got, want := string(gotBody["parent"]), `{"database_id":"db-1"}`; got != want {
		t.Errorf("parent = %s, want %s", got, want)
	}
	if got, want := string(gotBody["properties"]), `{"Status":{"select":{"name":"Done"}}}`; got != want {
		t.Errorf("properties = %s, want %s", got, want)
	}
}

func TestClientDecodesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code": "validation_error", "message": "body failed validation"}`)
	})

	_, err := client.Page(context.Background(), "p1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "validation_error" || apiErr.Status != http.StatusBadRequest {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestClientNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code": "object_not_found", "message": "no such page"}`)
	})

	_, err := client.Page(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPageSizeOrDefault(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 100}, {-1, 100}, {50, 50}, {100, 100}, {500, 100},
	}
	for _, tt := range tests {
		if got := PageSizeOrDefault(tt.in); got != tt.want {
			t.Errorf("PageSizeOrDefault(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
