package httpapi

import (
    "encoding/json"

    "github.com/tinoosan/players/internal/roster"
)

// playerRequest is the body of POST /, PUT /{id} and PATCH /{id}.
// Values are kept verbatim; no field is type-checked.
type playerRequest struct {
    Name    json.RawMessage `json:"name"`
    Country json.RawMessage `json:"country"`
    Rank    json.RawMessage `json:"rank"`
}

func (req playerRequest) toUpdate() roster.Update {
    return roster.Update{Name: req.Name, Country: req.Country, Rank: req.Rank}
}

type statusResponse struct {
    Status string `json:"status"`
}
