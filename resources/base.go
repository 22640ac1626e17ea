// Package resources holds the request builders for each WordPress REST collection.
//
// Every builder embeds http.BaseRequest and is copied on each fluent call, so
// a builder can be shared and extended without the branches affecting each other.
package resources

import (
	"fmt"
	"net/url"
	"strings"
)

// pathState is the id / action / action id triple most collections use.
type pathState struct {
	id       string
	action   string
	actionID string
}

// setID targets the sub-resource item once an action is set, the resource otherwise.
func (s *pathState) setID(id interface{}) {
	if s.action != "" {
		s.actionID = formatID(id)
	} else {
		s.id = formatID(id)
	}
}

func (s *pathState) segments() []string {
	return []string{s.id, s.action, s.actionID}
}

func formatID(id interface{}) string {
	if id == nil {
		return ""
	}

	return fmt.Sprint(id)
}

// joinURI appends the non-empty segments to endpoint. A trailing slash on
// endpoint is dropped, slashes inside a segment are kept.
func joinURI(endpoint string, segments ...string) string {
	parts := []string{strings.TrimRight(endpoint, "/")}

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		parts = append(parts, escapeSegment(segment))
	}

	return strings.Join(parts, "/")
}

func escapeSegment(segment string) string {
	pieces := strings.Split(strings.Trim(segment, "/"), "/")

	for i, piece := range pieces {
		pieces[i] = url.PathEscape(piece)
	}

	return strings.Join(pieces, "/")
}
