package client

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	youtubeIDPattern  = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	watchURLPattern   = regexp.MustCompile(`(?:v=|/shorts/|/embed/|/live/|/v/|youtu\.be/)([0-9A-Za-z_-]{11})`)
	playlistIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{2,}$`)
	channelIDPattern  = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)
	channelURLPattern = regexp.MustCompile(`/channel/(UC[0-9A-Za-z_-]{22})`)
)

var supportedHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

func invalidInput(input, reason string) error {
	return &InvalidInputDetailError{Input: input, Reason: reason}
}

// parseURLInput parses s as a url on a supported host. ok is false when s
// does not look like a url at all.
func parseURLInput(s string) (u *url.URL, ok bool, err error) {
	if !strings.Contains(s, "/") && !strings.Contains(s, ".") {
		return nil, false, nil
	}
	raw := s
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, perr := url.Parse(raw)
	if perr != nil || u.Host == "" {
		return nil, true, invalidInput(s, "malformed_url")
	}
	if !supportedHosts[strings.ToLower(u.Hostname())] {
		return nil, true, invalidInput(s, "unsupported_host")
	}
	return u, true, nil
}

// ExtractVideoID accepts either a raw id or common YouTube URL shapes.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", invalidInput(input, "empty")
	}
	if youtubeIDPattern.MatchString(s) {
		return s, nil
	}
	if _, isURL, err := parseURLInput(s); err != nil {
		return "", err
	} else if !isURL {
		return "", invalidInput(input, "malformed_id")
	}
	m := watchURLPattern.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1], nil
	}
	return "", invalidInput(input, "missing_video_id")
}

// ExtractPlaylistID accepts either a raw playlist id or a url carrying a
// list parameter.
func ExtractPlaylistID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", invalidInput(input, "empty")
	}
	if playlistIDPattern.MatchString(s) {
		return s, nil
	}
	u, isURL, err := parseURLInput(s)
	if err != nil {
		return "", err
	}
	if !isURL {
		return "", invalidInput(input, "malformed_id")
	}
	if list := u.Query().Get("list"); playlistIDPattern.MatchString(list) {
		return list, nil
	}
	return "", invalidInput(input, "missing_playlist_id")
}

// ExtractChannelID accepts either a raw UC... channel id or a /channel/ url.
func ExtractChannelID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", invalidInput(input, "empty")
	}
	if channelIDPattern.MatchString(s) {
		return s, nil
	}
	u, isURL, err := parseURLInput(s)
	if err != nil {
		return "", err
	}
	if !isURL {
		return "", invalidInput(input, "malformed_id")
	}
	if m := channelURLPattern.FindStringSubmatch(u.Path); len(m) == 2 {
		return m[1], nil
	}
	return "", invalidInput(input, "missing_channel_id")
}
