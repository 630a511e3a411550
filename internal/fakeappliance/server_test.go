package fakeappliance

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func newFake(t *testing.T) (*Server, string) {
	t.Helper()
	s := New()
	s.AddCollection("/api/networks", "network", "networks", "name")
	s.AddCollection("/api/networks/groups", "networkGroup", "networkGroups", "name")
	url := s.Start()
	t.Cleanup(s.Close)
	return s, url
}

func doJSON(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestCRUD(t *testing.T) {
	s, url := newFake(t)

	status, created := doJSON(t, "POST", url+"/api/networks", map[string]any{"network": map[string]any{"name": "app"}})
	if status != http.StatusOK {
		t.Fatalf("create status = %d: %v", status, created)
	}
	id := int64(created["network"].(map[string]any)["id"].(float64))

	status, _ = doJSON(t, "PUT", url+"/api/networks/1", map[string]any{"network": map[string]any{"cidr": "10.0.0.0/24"}})
	if status != http.StatusOK {
		t.Errorf("update status = %d", status)
	}
	if got := s.Item("/api/networks", id)["cidr"]; got != "10.0.0.0/24" {
		t.Errorf("stored cidr = %v", got)
	}

	status, _ = doJSON(t, "DELETE", url+"/api/networks/1", nil)
	if status != http.StatusOK || s.Item("/api/networks", id) != nil {
		t.Errorf("delete status = %d, item = %v", status, s.Item("/api/networks", id))
	}

	status, _ = doJSON(t, "GET", url+"/api/networks/1", nil)
	if status != http.StatusNotFound {
		t.Errorf("get deleted status = %d", status)
	}

	if writes := s.Writes(); len(writes) != 3 {
		t.Errorf("recorded %d writes, want 3", len(writes))
	}
}

func TestCreateRequiresName(t *testing.T) {
	_, url := newFake(t)
	status, body := doJSON(t, "POST", url+"/api/networks", map[string]any{"network": map[string]any{}})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if body["errors"].(map[string]any)["name"] != "required" {
		t.Errorf("errors = %v", body["errors"])
	}
}

func TestListFiltersAndPaging(t *testing.T) {
	s, url := newFake(t)
	s.Seed("/api/networks",
		map[string]any{"name": "app-1", "visibility": "private"},
		map[string]any{"name": "app-2", "visibility": "public"},
		map[string]any{"name": "db", "visibility": "private"},
	)
	s.Seed("/api/networks/groups", map[string]any{"name": "all"})

	tests := []struct {
		query string
		want  int
		total float64
	}{
		{"", 3, 3},
		{"?name=db", 1, 1},
		{"?phrase=APP", 2, 2},
		{"?visibility=private&max=1", 1, 2},
		{"?offset=5", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, body := doJSON(t, "GET", url+"/api/networks"+tt.query, nil)
			items := body["networks"].([]any)
			if len(items) != tt.want {
				t.Errorf("got %d items, want %d", len(items), tt.want)
			}
			if total := body["meta"].(map[string]any)["total"]; total != tt.total {
				t.Errorf("meta.total = %v, want %v", total, tt.total)
			}
		})
	}

	_, body := doJSON(t, "GET", url+"/api/networks/groups", nil)
	if len(body["networkGroups"].([]any)) != 1 {
		t.Errorf("nested collection routed wrong: %v", body)
	}
}

func TestAuthAndFailures(t *testing.T) {
	s, url := newFake(t)
	s.Token = "secret"

	status, _ := doJSON(t, "GET", url+"/api/whoami", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("status without token = %d", status)
	}

	s.Token = ""
	s.FailNext(http.StatusInternalServerError, map[string]any{"msg": "boom"})
	status, body := doJSON(t, "GET", url+"/api/whoami", nil)
	if status != http.StatusInternalServerError || body["msg"] != "boom" {
		t.Errorf("injected failure = %d %v", status, body)
	}

	status, body = doJSON(t, "GET", url+"/api/whoami", nil)
	if status != http.StatusOK || body["user"] == nil {
		t.Errorf("whoami = %d %v", status, body)
	}
}

func TestCollectionAction(t *testing.T) {
	s := New()
	s.AddCollection("/api/invoices", "invoice", "invoices", "refName")
	url := s.Start()
	defer s.Close()

	status, _ := doJSON(t, "POST", url+"/api/invoices/refresh", map[string]any{"clouds": []int{1}})
	if status != http.StatusOK {
		t.Errorf("refresh status = %d", status)
	}
	writes := s.Writes()
	if len(writes) != 1 || writes[0].Path != "/api/invoices/refresh" || writes[0].Body["clouds"] == nil {
		t.Errorf("recorded writes = %+v", writes)
	}
}
