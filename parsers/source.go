package parsers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nydauron/trackside/athletics"
)

// Open returns the start list at location, which is either an http(s) URL
// or a path to an existing file.
func Open(location string) (io.ReadCloser, error) {
	if u, err := url.ParseRequestURI(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("fetching start list: %w", err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("invalid HTTP status code received: %v", resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("provided start list was neither a valid URL or a path to existing file: %v", location)
	}
	return f, nil
}

// ParseStartList opens location and parses it as CSV when isCSV is set or
// the location ends in .csv, and as HTML otherwise.
func ParseStartList(location string, isCSV bool) ([]athletics.Athlete, error) {
	r, err := Open(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if isCSV || strings.EqualFold(filepath.Ext(location), ".csv") {
		return ParseCSV(r)
	}
	return ParseHTML(r)
}
