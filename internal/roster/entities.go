// Package roster holds the player domain types shared by the service, storage and HTTP layers.
package roster

import (
    "bytes"
    "encoding/json"
)

// Player is the only persisted entity. Name, Country and Rank are optional and
// stored verbatim as the client sent them (string, number, bool, ...); a nil
// value means the field is absent and is omitted from JSON.
type Player struct {
    ID      string          `json:"id"`
    Name    json.RawMessage `json:"name,omitempty"`
    Country json.RawMessage `json:"country,omitempty"`
    Rank    json.RawMessage `json:"rank,omitempty"`
}

// Update carries the optional fields of a create/replace/patch request.
// A field counts as provided when it is set and not JSON null.
type Update struct {
    Name    json.RawMessage
    Country json.RawMessage
    Rank    json.RawMessage
}

// New builds a player with the given id from the provided fields of u.
func New(id string, u Update) Player {
    p := Player{ID: id}
    p.Replace(u)
    return p
}

// Replace overwrites name, country and rank with exactly what u carries.
// Fields missing from u become absent.
func (p *Player) Replace(u Update) {
    p.Name = value(u.Name)
    p.Country = value(u.Country)
    p.Rank = value(u.Rank)
}

// Apply merges only the provided fields of u into p.
func (p *Player) Apply(u Update) {
    if v := value(u.Name); v != nil { p.Name = v }
    if v := value(u.Country); v != nil { p.Country = v }
    if v := value(u.Rank); v != nil { p.Rank = v }
}

// Clone returns a deep copy so callers cannot mutate stored state through shared slices.
func (p Player) Clone() Player {
    return Player{ID: p.ID, Name: cloneRaw(p.Name), Country: cloneRaw(p.Country), Rank: cloneRaw(p.Rank)}
}

// Empty reports whether u provides no field at all.
func (u Update) Empty() bool {
    return value(u.Name) == nil && value(u.Country) == nil && value(u.Rank) == nil
}

// value returns a compacted copy of raw, or nil when absent or null.
func value(raw json.RawMessage) json.RawMessage {
    raw = bytes.TrimSpace(raw)
    if len(raw) == 0 || bytes.Equal(raw, []byte("null")) { return nil }
    var buf bytes.Buffer
    if err := json.Compact(&buf, raw); err != nil {
        return cloneRaw(raw)
    }
    return json.RawMessage(buf.Bytes())
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
    if raw == nil { return nil }
    return append(json.RawMessage(nil), raw...)
}

// String encodes s as a JSON string value, for building players in code and tests.
func String(s string) json.RawMessage {
    b, _ := json.Marshal(s)
    return b
}
