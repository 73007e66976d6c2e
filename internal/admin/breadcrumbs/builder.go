// Package breadcrumbs derives the header breadcrumb trail from a request path.
package breadcrumbs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultRootLabel is the label of the entry that links back to the dashboard.
const DefaultRootLabel = "Dashboard"

// Entry represents one level of the breadcrumb trail.
type Entry struct {
	// Label is the visible text.
	Label string `json:"label"`
	// Href is the navigation target. Empty for the current page.
	Href string `json:"href,omitempty"`
	// Current marks the terminal entry.
	Current bool `json:"isCurrent"`
}

// Config controls labels and root handling for a Builder.
type Config struct {
	// RootLabel is the label of the leading dashboard entry.
	RootLabel string
	// StandaloneSections lists first segments whose trails omit the root entry.
	StandaloneSections []string
	// Titles maps path segments to display titles. Keys match segments
	// case-insensitively.
	Titles map[string]string
}

// DefaultConfig returns the labels used by the claims dashboard.
func DefaultConfig() Config {
	return Config{
		RootLabel:          DefaultRootLabel,
		StandaloneSections: []string{"agents"},
		Titles: map[string]string{
			"agents":              "Agent Demos",
			"assessment":          "Assessment Agent",
			"communication":       "Communication Agent",
			"orchestrator":        "Orchestrator Agent",
			"tasks":               "Tasks",
			"feedback":            "Feedback System",
			"demo":                "Workflow Demo",
			"claim-assessor":      "Claim Assessor",
			"policy-checker":      "Policy Checker",
			"risk-analyst":        "Risk Analyst",
			"communication-agent": "Communication Agent",
			"documents":           "Policy Documents",
			"manage":              "Document Management",
			"index-management":    "Index Management",
		},
	}
}

// Builder turns paths into breadcrumb trails. It is immutable and safe for
// concurrent use.
type Builder struct {
	rootLabel  string
	standalone map[string]struct{}
	titles     map[string]string
}

// NewBuilder constructs a Builder. The config maps are copied.
func NewBuilder(cfg Config) *Builder {
	rootLabel := strings.TrimSpace(cfg.RootLabel)
	if rootLabel == "" {
		rootLabel = DefaultRootLabel
	}

	standalone := make(map[string]struct{}, len(cfg.StandaloneSections))
	for _, section := range cfg.StandaloneSections {
		section = strings.Trim(strings.TrimSpace(section), "/")
		if section == "" {
			continue
		}
		standalone[section] = struct{}{}
	}

	titles := make(map[string]string, len(cfg.Titles))
	for key, title := range cfg.Titles {
		key = strings.ToLower(key)
		if key == "" || strings.TrimSpace(title) == "" {
			continue
		}
		titles[key] = title
	}

	return &Builder{
		rootLabel:  rootLabel,
		standalone: standalone,
		titles:     titles,
	}
}

var defaultBuilder = NewBuilder(DefaultConfig())

// Build derives a trail using DefaultConfig.
func Build(path string) []Entry {
	return defaultBuilder.Build(path)
}

// Build derives the trail for path. The root path yields a single current
// root entry; any other path yields one entry per non-empty segment, preceded
// by a root entry unless the first segment is a standalone section.
func (b *Builder) Build(path string) []Entry {
	return b.build(Segments(path), "/")
}

// BuildUnder derives the trail for a path served below base (e.g. "/admin").
// The base prefix is not part of the trail; every href is re-rooted at base
// and the root entry links to base itself.
func (b *Builder) BuildUnder(base, path string) []Entry {
	baseSegments := Segments(base)
	segments := Segments(path)
	if hasPrefix(segments, baseSegments) {
		segments = segments[len(baseSegments):]
	}
	return b.build(segments, joinSegments(baseSegments))
}

func (b *Builder) build(segments []string, root string) []Entry {
	if len(segments) == 0 {
		return []Entry{{Label: b.rootLabel, Current: true}}
	}

	entries := make([]Entry, 0, len(segments)+1)
	if _, ok := b.standalone[segments[0]]; !ok {
		entries = append(entries, Entry{Label: b.rootLabel, Href: root})
	}

	href := strings.TrimRight(root, "/")
	last := len(segments) - 1
	for i, segment := range segments {
		href += "/" + segment
		entry := Entry{Label: b.Label(segment)}
		if i == last {
			entry.Current = true
		} else {
			entry.Href = href
		}
		entries = append(entries, entry)
	}
	return entries
}

// Label resolves the display title for a single segment. Unknown segments
// fall back to Title.
func (b *Builder) Label(segment string) string {
	if title, ok := b.titles[strings.ToLower(segment)]; ok {
		return title
	}
	return Title(segment)
}

// IsStandalone reports whether trails under section omit the root entry.
func (b *Builder) IsStandalone(section string) bool {
	_, ok := b.standalone[section]
	return ok
}

// Segments splits path on "/" and drops empty fragments.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Title upper-cases the first character of segment and keeps the rest as is.
func Title(segment string) string {
	r, size := utf8.DecodeRuneInString(segment)
	if r == utf8.RuneError {
		return segment
	}
	return string(unicode.ToUpper(r)) + segment[size:]
}

func hasPrefix(segments, prefix []string) bool {
	if len(prefix) > len(segments) {
		return false
	}
	for i := range prefix {
		if segments[i] != prefix[i] {
			return false
		}
	}
	return true
}

func joinSegments(segments []string) string {
	return "/" + strings.Join(segments, "/")
}
