package game

import (
	"fmt"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrNotFound            = crerr.New("game not found")
	ErrConstraintViolation = crerr.New("game constraint violation")
)

// Game is a board game catalog entry.
type Game struct {
	ID             int64
	Name           string
	Description    string
	MinNumPlayers  int
	MaxNumPlayers  int
	MinPlayMinutes int
	MaxPlayMinutes int
	OfficialURL    string
}

// Validate checks the invariants the games table enforces with CHECK constraints.
// User-facing rules live in the package level Validate.
func (g Game) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("game name is required")
	}
	if g.Description == "" {
		return fmt.Errorf("game description is required")
	}
	if g.MinNumPlayers < 1 || g.MaxNumPlayers < g.MinNumPlayers {
		return fmt.Errorf("invalid player range %d-%d", g.MinNumPlayers, g.MaxNumPlayers)
	}
	if g.MinPlayMinutes < 1 || g.MaxPlayMinutes < g.MinPlayMinutes {
		return fmt.Errorf("invalid play time range %d-%d", g.MinPlayMinutes, g.MaxPlayMinutes)
	}

	return nil
}

// Candidate is a sanitized, not yet validated game submission. Unset fields were
// not part of the submission.
type Candidate struct {
	ID             Field[string]
	Name           Field[string]
	Description    Field[string]
	MinNumPlayers  Field[string]
	MaxNumPlayers  Field[string]
	MinPlayMinutes Field[string]
	MaxPlayMinutes Field[string]
	OfficialURL    Field[string]
}

// IsNew reports whether the candidate describes a record that is not stored yet.
func (c Candidate) IsNew() bool {
	return !c.ID.IsSet()
}

// HasData reports whether any field other than the id was supplied.
func (c Candidate) HasData() bool {
	return c.Name.IsSet() ||
		c.Description.IsSet() ||
		c.MinNumPlayers.IsSet() ||
		c.MaxNumPlayers.IsSet() ||
		c.MinPlayMinutes.IsSet() ||
		c.MaxPlayMinutes.IsSet() ||
		c.OfficialURL.IsSet()
}

// Merge returns c with every field that is set in overlay replaced.
func (c Candidate) Merge(overlay Candidate) Candidate {
	out := c
	mergeField(&out.ID, overlay.ID)
	mergeField(&out.Name, overlay.Name)
	mergeField(&out.Description, overlay.Description)
	mergeField(&out.MinNumPlayers, overlay.MinNumPlayers)
	mergeField(&out.MaxNumPlayers, overlay.MaxNumPlayers)
	mergeField(&out.MinPlayMinutes, overlay.MinPlayMinutes)
	mergeField(&out.MaxPlayMinutes, overlay.MaxPlayMinutes)
	mergeField(&out.OfficialURL, overlay.OfficialURL)
	return out
}

func mergeField(dst *Field[string], src Field[string]) {
	if src.IsSet() {
		*dst = src
	}
}

// CandidateFromGame renders a stored game back into form values, id included.
func CandidateFromGame(g Game) Candidate {
	return Candidate{
		ID:             Some(strconv.FormatInt(g.ID, 10)),
		Name:           Some(g.Name),
		Description:    Some(g.Description),
		MinNumPlayers:  Some(strconv.Itoa(g.MinNumPlayers)),
		MaxNumPlayers:  Some(strconv.Itoa(g.MaxNumPlayers)),
		MinPlayMinutes: Some(strconv.Itoa(g.MinPlayMinutes)),
		MaxPlayMinutes: Some(strconv.Itoa(g.MaxPlayMinutes)),
		OfficialURL:    Some(g.OfficialURL),
	}
}

// Blank is the candidate shown on an empty new-game form.
func Blank() Candidate {
	return Candidate{
		Name:           Some(""),
		Description:    Some(""),
		MinNumPlayers:  Some(""),
		MaxNumPlayers:  Some(""),
		MinPlayMinutes: Some(""),
		MaxPlayMinutes: Some(""),
		OfficialURL:    Some(""),
	}
}

// ParseID parses the submitted hidden id field.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("game id must be > 0, got %d", id)
	}
	return id, nil
}
