package gtfsrdf

import (
	"net/url"
	"strings"
)

// EntityKind identifies the entity tables whose ids the registry tracks.
type EntityKind int

const (
	KindAgency EntityKind = iota
	KindService
	KindRoute
	KindTrip
	KindStop
)

func (k EntityKind) String() string {
	switch k {
	case KindAgency:
		return "agency"
	case KindService:
		return "service"
	case KindRoute:
		return "route"
	case KindTrip:
		return "trip"
	case KindStop:
		return "stop"
	}
	return "unknown"
}

// Registry maps natural ids from the source tables to their minted URIs.
// Entries are written once during the pass over their owning table and are
// read-only afterwards. Not safe for concurrent use; the conversion run is
// single-threaded.
type Registry struct {
	uris   map[EntityKind]map[string]string
	labels map[EntityKind]map[string]string
}

func NewRegistry() *Registry {
	uris := make(map[EntityKind]map[string]string)
	labels := make(map[EntityKind]map[string]string)
	for _, k := range []EntityKind{KindAgency, KindService, KindRoute, KindTrip, KindStop} {
		uris[k] = make(map[string]string)
		labels[k] = make(map[string]string)
	}
	return &Registry{uris: uris, labels: labels}
}

// Register binds a natural id to its URI. Re-registering the identical URI is
// a no-op; a differing URI is a DuplicateEntityError.
func (r *Registry) Register(kind EntityKind, naturalID, uri string) error {
	if existing, ok := r.uris[kind][naturalID]; ok {
		if existing == uri {
			return nil
		}
		return &DuplicateEntityError{Kind: kind, ID: naturalID}
	}
	r.uris[kind][naturalID] = uri
	return nil
}

// Resolve returns the URI minted for a natural id.
func (r *Registry) Resolve(kind EntityKind, naturalID string) (string, error) {
	uri, ok := r.uris[kind][naturalID]
	if !ok {
		return "", &UnresolvedReferenceError{Kind: kind, ID: naturalID}
	}
	return uri, nil
}

// SetLabel stores the display label used when building human-readable text.
func (r *Registry) SetLabel(kind EntityKind, naturalID, label string) {
	r.labels[kind][naturalID] = label
}

// Label returns the stored display label, or the natural id when none exists.
func (r *Registry) Label(kind EntityKind, naturalID string) string {
	if l, ok := r.labels[kind][naturalID]; ok {
		return l
	}
	return naturalID
}

// MintURI joins percent-escaped path segments onto the base URI.
func MintURI(baseURI string, segments ...string) string {
	var b strings.Builder
	b.WriteString(baseURI)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// NameID derives a URI path segment from a display name: lower-cased, runs of
// whitespace collapsed to a single underscore. Names differing only in case or
// whitespace intentionally collapse to the same id.
func NameID(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}
