package web

import (
	"encoding/json"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sup3rbob.dev/folio/content"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler, err := NewRouter(log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return resp, string(body)
}

func TestPageRendersCardsInOrder(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}

	last := -1
	for _, p := range content.Projects() {
		anchor := `<a class="card" href="` + p.Link + `" target="_blank" rel="noreferrer"`
		idx := strings.Index(body, anchor)
		if idx < 0 {
			t.Fatalf("missing card anchor for %s", p.Title)
		}
		if idx <= last {
			t.Fatalf("card %s rendered out of order", p.Title)
		}
		last = idx
	}
	if got := strings.Count(body, `<a class="card"`); got != len(content.Projects()) {
		t.Fatalf("expected %d cards, got %d", len(content.Projects()), got)
	}
}

// escapeText escapes s the way html/template does in a text node, which
// includes '+' as &#43;.
func escapeText(t *testing.T, s string) string {
	t.Helper()

	var b strings.Builder
	if err := template.Must(template.New("text").Parse("{{.}}")).Execute(&b, s); err != nil {
		t.Fatalf("escape %q: %v", s, err)
	}
	return b.String()
}

func TestPageSections(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv, "/")
	for _, s := range content.Sections() {
		if !strings.Contains(body, `id="`+s.Anchor+`"`) {
			t.Fatalf("missing section %s", s.Anchor)
		}
		if !strings.Contains(body, `href="#`+s.Anchor+`"`) {
			t.Fatalf("missing nav link to %s", s.Anchor)
		}
	}
	for _, skill := range content.Skills() {
		if !strings.Contains(body, "<li>"+escapeText(t, skill)+"</li>") {
			t.Fatalf("missing skill %s", skill)
		}
	}
	if !strings.Contains(body, `href="mailto:harris@example.com"`) {
		t.Fatal("missing mail-to link")
	}
}

func TestPageMotionAndSelfTestConfig(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv, "/")
	for _, want := range []string{
		"--mount-ms: 800ms",
		"--mount-offset: 20px",
		"--float-ms: 8000ms",
		"--float-peak: -10px",
		`"glowMin":0.2`,
		`"glowMax":0.6`,
		`"sentinel":"#test"`,
		`"projectCount":5`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

// The #test fragment never reaches the server, so the HTML is the same in
// both modes as long as rendering is deterministic and the browser-side
// self-test only talks to the console.
func TestPageIsServerDeterministic(t *testing.T) {
	srv := newTestServer(t)

	_, first := get(t, srv, "/")
	_, second := get(t, srv, "/?ref=debug")
	if first != second {
		t.Fatal("page output should not depend on the request")
	}
}

func TestSelfTestScriptOnlyLogs(t *testing.T) {
	srv := newTestServer(t)

	_, js := get(t, srv, "/static/site.js")
	_, branch, ok := strings.Cut(js, "if (window.location.hash === cfg.sentinel) {")
	if !ok {
		t.Fatal("site.js missing the sentinel branch")
	}
	branch, _, _ = strings.Cut(branch, "\n  }\n")
	for _, dom := range []string{"document.", "classList", "style.", "innerHTML", "appendChild"} {
		if strings.Contains(branch, dom) {
			t.Fatalf("self-test branch touches the page via %q", dom)
		}
	}
	if !strings.Contains(branch, "console.assert") {
		t.Fatal("self-test branch should assert on the console")
	}
}

func TestListProjects(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/projects")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var projects []content.Project
	if err := json.Unmarshal([]byte(body), &projects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := content.Projects()
	if len(projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(projects))
	}
	for i := range want {
		if projects[i].Title != want[i].Title || projects[i].Link != want[i].Link {
			t.Fatalf("project %d: got %+v", i, projects[i])
		}
	}
}

func TestGetProject(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/projects/Roguetris", http.StatusOK},
		{"/api/projects/The%20Lab", http.StatusOK},
		{"/api/projects/Tetris", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, body := get(t, srv, tt.path)
		if resp.StatusCode != tt.status {
			t.Fatalf("%s: expected %d, got %d (%s)", tt.path, tt.status, resp.StatusCode, body)
		}
	}
}

func TestHealthAndStatic(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Fatalf("unexpected health response %d %s", resp.StatusCode, body)
	}

	resp, body = get(t, srv, "/static/site.js")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for site.js, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "SelfTest: PortfolioMock") {
		t.Fatal("site.js missing self-test group")
	}

	resp, _ = get(t, srv, "/static/site.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for site.css, got %d", resp.StatusCode)
	}
}
