// Package cookies loads cookie jars for page requests: Netscape cookies.txt
// exports and the consent cookie that skips the EU consent interstitial.
package cookies

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const httpOnlyPrefix = "#HttpOnly_"

// ParseNetscape parses a Netscape cookies.txt format.
// Format: domain includeSubdomains path secure expiration name value
func ParseNetscape(r io.Reader) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
			httpOnly = true
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 7 {
			continue
		}

		cookie := &http.Cookie{
			Domain:   parts[0],
			Path:     parts[2],
			Secure:   strings.EqualFold(parts[3], "TRUE"),
			Name:     parts[5],
			Value:    parts[6],
			HttpOnly: httpOnly,
		}
		// 0 marks a session cookie.
		if expiresUnix, err := strconv.ParseInt(parts[4], 10, 64); err == nil && expiresUnix > 0 {
			cookie.Expires = time.Unix(expiresUnix, 0)
		}
		cookies = append(cookies, cookie)
	}

	return cookies, scanner.Err()
}

// NewJar returns a jar holding cookies, each set for its own domain.
func NewJar(cookies []*http.Cookie) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	byHost := make(map[string][]*http.Cookie)
	for _, c := range cookies {
		host := strings.TrimPrefix(c.Domain, ".")
		if host == "" {
			continue
		}
		byHost[host] = append(byHost[host], c)
	}
	for host, cs := range byHost {
		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, cs)
	}
	return jar, nil
}

// LoadFile reads a cookies.txt file into a jar.
func LoadFile(path string) (*cookiejar.Jar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cookies, err := ParseNetscape(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewJar(cookies)
}

// ConsentCookie is the cookie that marks the consent dialog as answered
// for baseURL's site.
func ConsentCookie(baseURL string) (*http.Cookie, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	domain := u.Hostname()
	if strings.HasPrefix(domain, "www.") || strings.HasPrefix(domain, "m.") {
		domain = domain[strings.Index(domain, ".")+1:]
	}
	return &http.Cookie{
		Name:   "SOCS",
		Value:  "CAI",
		Domain: "." + domain,
		Path:   "/",
		Secure: true,
	}, nil
}

// WithConsent adds the consent cookie to jar, creating a jar when nil.
func WithConsent(jar http.CookieJar, baseURL string) (http.CookieJar, error) {
	c, err := ConsentCookie(baseURL)
	if err != nil {
		return nil, err
	}
	if jar == nil {
		j, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		jar = j
	}
	u, _ := url.Parse(baseURL)
	jar.SetCookies(u, []*http.Cookie{c})
	return jar, nil
}
