// Package serverlist fetches and parses the official server list, the
// XML-over-HTTP collaborator named in spec.md §6 "Process-wide state &
// filesystem" (resolving a short server name to a connectable host).
package serverlist

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const serverListURL = "https://realmofthemadgodhrd.appspot.com/char/list"

// xmlServer mirrors one <Server> element of the upstream document;
// grounded on original_source/rotmg_proxy/src/servers.rs's Server struct.
type xmlServer struct {
	Name string `xml:"Name"`
	DNS  string `xml:"DNS"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"Chars"`
	Servers struct {
		Server []xmlServer `xml:"Server"`
	} `xml:"Servers"`
}

// ServerList resolves a server's full name or abbreviation to its host.
type ServerList struct {
	byName map[string]string
	dflt   string
}

// abbreviate mirrors the original client's abbreviation rule exactly, so
// both the full name and the shorthand (e.g. "USEast" -> "use") resolve.
func abbreviate(name string) string {
	abbr := strings.ToLower(name)
	for _, rule := range []struct{ long, short string }{
		{"east", "e"}, {"west", "w"}, {"south", "s"}, {"north", "n"},
		{"asia", "as"}, {"mid", "m"}, {"australia", "aus"},
	} {
		abbr = strings.ReplaceAll(abbr, rule.long, rule.short)
	}
	return abbr
}

// Load fetches and parses the server list, then resolves defaultServer
// (a full name or an abbreviation) to its host.
func Load(ctx context.Context, defaultServer string) (*ServerList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverListURL, nil)
	if err != nil {
		return nil, fmt.Errorf("serverlist: building request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serverlist: fetching server list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("serverlist: reading server list: %w", err)
	}

	return Parse(body, defaultServer)
}

// Parse is Load's testable half: parse an already-fetched document body.
func Parse(body []byte, defaultServer string) (*ServerList, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("serverlist: parsing server list: %w", err)
	}

	byName := make(map[string]string, len(doc.Servers.Server)*2)
	for _, s := range doc.Servers.Server {
		byName[s.Name] = s.DNS
		byName[abbreviate(s.Name)] = s.DNS
	}

	dflt, ok := byName[defaultServer]
	if !ok {
		return nil, fmt.Errorf("serverlist: default server %q not found in server list", defaultServer)
	}

	return &ServerList{byName: byName, dflt: dflt}, nil
}

// Get resolves a server name or abbreviation to its host, if known.
func (l *ServerList) Get(name string) (string, bool) {
	host, ok := l.byName[name]
	return host, ok
}

// Default returns the host of the configured default server.
func (l *ServerList) Default() string {
	return l.dflt
}
