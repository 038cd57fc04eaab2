package class

// Track is one of the two curricular pathways, each with its own class sequence.
type Track string

const (
	TrackHifz        Track = "Hifz"
	TrackDarsENizami Track = "Dars-e-Nizami"
)

var Tracks = []Track{TrackDarsENizami, TrackHifz}

func (t Track) IsValid() bool {
	return t == TrackHifz || t == TrackDarsENizami
}

type Class struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Track Track  `json:"track"`
}

// reference is the fixed class list; classes are configuration, not user data.
var reference = []Class{
	{ID: "dn1", Name: "Mutawassitah", Track: TrackDarsENizami},
	{ID: "dn2", Name: "Aammah Awwal", Track: TrackDarsENizami},
	{ID: "dn3", Name: "Aammah Doum", Track: TrackDarsENizami},
	{ID: "dn4", Name: "Khaasah Awwal", Track: TrackDarsENizami},
	{ID: "dn5", Name: "Khaasah Doum", Track: TrackDarsENizami},
	{ID: "dn6", Name: "Aaliyah Awwal", Track: TrackDarsENizami},
	{ID: "dn7", Name: "Aaliyah Doum", Track: TrackDarsENizami},
	{ID: "dn8", Name: "Aalamiyah Awwal", Track: TrackDarsENizami},
	{ID: "dn9", Name: "Aalamiyah Doum", Track: TrackDarsENizami},
	{ID: "h1", Name: "Nazira", Track: TrackHifz},
	{ID: "h2", Name: "Hifz Ibtidai", Track: TrackHifz},
	{ID: "h3", Name: "Hifz Mukammal", Track: TrackHifz},
}

// Reference returns a copy of the fixed class list, in curriculum order.
func Reference() []Class {
	classes := make([]Class, len(reference))
	copy(classes, reference)
	return classes
}

// ByTrack filters `classes` down to those of track `t`, keeping their order.
func ByTrack(classes []Class, t Track) []Class {
	res := make([]Class, 0, len(classes))
	for _, c := range classes {
		if c.Track == t {
			res = append(res, c)
		}
	}
	return res
}

// Lookup finds a class by id in `classes`.
func Lookup(classes []Class, id string) (Class, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}

// IsKnown reports whether id belongs to the reference list.
func IsKnown(id string) bool {
	_, ok := Lookup(reference, id)
	return ok
}

// Group filters understood by student listings.
const (
	GroupAll         = "all"
	GroupDarsENizami = "dars-e-nizami-all"
	GroupHifz        = "hifz-all"
)

// ResolveGroup returns the set of class ids admitted by `group`: a whole track or a single class id.
// It returns nil for `all` (or an empty group), which admits any class id.
func ResolveGroup(classes []Class, group string) map[string]struct{} {
	var selected []Class
	switch group {
	case "", GroupAll:
		return nil
	case GroupDarsENizami:
		selected = ByTrack(classes, TrackDarsENizami)
	case GroupHifz:
		selected = ByTrack(classes, TrackHifz)
	default:
		return map[string]struct{}{group: {}}
	}
	ids := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		ids[c.ID] = struct{}{}
	}
	return ids
}

// Admits reports whether a set returned by ResolveGroup admits `classID`.
func Admits(set map[string]struct{}, classID string) bool {
	if set == nil {
		return true
	}
	_, ok := set[classID]
	return ok
}
