package cookies

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# Netscape HTTP Cookie File
# comment line

.youtube.com	TRUE	/	TRUE	1893456000	PREF	hl=en
#HttpOnly_.youtube.com	TRUE	/	TRUE	0	VISITOR_INFO1_LIVE	abc
broken line
`

func TestParseNetscape(t *testing.T) {
	cookies, err := ParseNetscape(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ParseNetscape() error = %v", err)
	}
	if len(cookies) != 2 {
		t.Fatalf("len(cookies) = %d, want 2", len(cookies))
	}
	pref := cookies[0]
	if pref.Name != "PREF" || pref.Value != "hl=en" || !pref.Secure || pref.HttpOnly {
		t.Fatalf("unexpected PREF cookie: %+v", pref)
	}
	if pref.Expires.Unix() != 1893456000 {
		t.Fatalf("PREF expires = %v", pref.Expires)
	}
	visitor := cookies[1]
	if visitor.Name != "VISITOR_INFO1_LIVE" || !visitor.HttpOnly {
		t.Fatalf("unexpected visitor cookie: %+v", visitor)
	}
	if !visitor.Expires.IsZero() {
		t.Fatalf("session cookie should have no expiry, got %v", visitor.Expires)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	jar, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	got := jar.Cookies(&url.URL{Scheme: "https", Host: "www.youtube.com", Path: "/results"})
	names := map[string]bool{}
	for _, c := range got {
		names[c.Name] = true
	}
	if !names["PREF"] || !names["VISITOR_INFO1_LIVE"] {
		t.Fatalf("jar cookies = %v, want PREF and VISITOR_INFO1_LIVE", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWithConsent(t *testing.T) {
	jar, err := WithConsent(nil, "https://www.youtube.com")
	if err != nil {
		t.Fatalf("WithConsent() error = %v", err)
	}
	got := jar.Cookies(&url.URL{Scheme: "https", Host: "m.youtube.com", Path: "/"})
	if len(got) != 1 || got[0].Name != "SOCS" {
		t.Fatalf("consent cookie not visible on sibling host: %v", got)
	}

	if _, err := WithConsent(nil, "::bad"); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}
