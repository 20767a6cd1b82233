package shared

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewPageTotals(t *testing.T) {
	cases := []struct {
		name        string
		count       int
		offset      int
		limit       int
		wantPages   int
		wantCurrent int
	}{
		{"exact fit", 2, 0, 2, 1, 1},
		{"remainder adds page", 3, 0, 2, 2, 1},
		{"second window", 3, 2, 2, 2, 2},
		{"empty result", 0, 0, 10, 0, 1},
		{"single item", 1, 0, 1000, 1, 1},
		{"offset mid page", 5, 3, 2, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage([]string{}, tc.count, tc.offset, tc.limit)
			if page.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tc.wantPages)
			}
			if page.CurrentPage != tc.wantCurrent {
				t.Errorf("CurrentPage = %d, want %d", page.CurrentPage, tc.wantCurrent)
			}
			if page.Count != tc.count {
				t.Errorf("Count = %d, want %d", page.Count, tc.count)
			}
		})
	}
}

func TestNewPageEmptyWindowMarshalsAsArray(t *testing.T) {
	// Repositories return nil slices for empty windows; the envelope still
	// has to serialize values as [] so clients can iterate it.
	data, err := json.Marshal(NewPage[string](nil, 0, 0, 10))
	if err != nil {
		t.Fatalf("marshal page: %v", err)
	}
	if strings.Contains(string(data), `"values":null`) {
		t.Fatalf("empty page marshaled with null values: %s", data)
	}
	if !strings.Contains(string(data), `"values":[]`) {
		t.Fatalf("empty page missing values array: %s", data)
	}
}

func TestParseListParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/artists", nil)
	p := ParseListParams(r, 0)
	if p.Offset != 0 || p.Limit != DefaultLimit || p.Name != "" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestParseListParamsClampsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/songs?name=love&offset=40&limit=999999", nil)
	p := ParseListParams(r, 1000)
	if p.Name != "love" {
		t.Errorf("Name = %q, want %q", p.Name, "love")
	}
	if p.Offset != 40 {
		t.Errorf("Offset = %d, want 40", p.Offset)
	}
	if p.Limit != 1000 {
		t.Errorf("Limit = %d, want capped 1000", p.Limit)
	}
}

func TestParseListParamsIgnoresGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/songs?offset=-3&limit=abc", nil)
	p := ParseListParams(r, 0)
	if p.Offset != 0 {
		t.Errorf("Offset = %d, want 0", p.Offset)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want default", p.Limit)
	}
}

func TestIdentityVariants(t *testing.T) {
	anon := Anonymous()
	if anon.IsAuthenticated() {
		t.Fatal("anonymous identity reports authenticated")
	}
	if _, ok := anon.Principal(); ok {
		t.Fatal("anonymous identity yielded a principal")
	}

	id := Authenticated(Principal{ID: 7, Email: "user@example.com"})
	p, ok := id.Principal()
	if !ok || p.ID != 7 || p.Email != "user@example.com" {
		t.Fatalf("unexpected principal: %+v ok=%v", p, ok)
	}
}
