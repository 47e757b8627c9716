package game

import "testing"

func TestSanitize_FillsMissingDataFields(t *testing.T) {
	c := Sanitize(map[string]string{})

	fields := map[string]Field[string]{
		"name":             c.Name,
		"description":      c.Description,
		"min_num_players":  c.MinNumPlayers,
		"max_num_players":  c.MaxNumPlayers,
		"min_play_minutes": c.MinPlayMinutes,
		"max_play_minutes": c.MaxPlayMinutes,
		"official_url":     c.OfficialURL,
	}
	for key, f := range fields {
		v, ok := f.Get()
		if !ok {
			t.Fatalf("expected %s to be set", key)
		}
		if v != "" {
			t.Fatalf("expected %s to be empty, got %q", key, v)
		}
	}
	if c.ID.IsSet() {
		t.Fatalf("did not expect id without id input")
	}
	if !c.IsNew() {
		t.Fatalf("expected candidate without id to be new")
	}
}

func TestSanitize_IDOnlyWhenSubmitted(t *testing.T) {
	c := Sanitize(map[string]string{"id": " 4x2"})
	id, ok := c.ID.Get()
	if !ok {
		t.Fatalf("expected id to be set")
	}
	if id != "42" {
		t.Fatalf("unexpected id: %q", id)
	}

	empty := Sanitize(map[string]string{"id": ""})
	if !empty.ID.IsSet() || empty.IsNew() {
		t.Fatalf("expected an empty id key to still mark an existing record")
	}
}

func TestSanitize_Filters(t *testing.T) {
	c := Sanitize(map[string]string{
		"name":            `Tom & "Jerry's" <b>`,
		"min_num_players": "about 2-ish",
		"max_num_players": "+4 players",
		"official_url":    "https://example.com/a b?q=1&r=é",
	})

	if got, want := c.Name.Value(), "Tom &amp; &quot;Jerry&#039;s&quot; &lt;b&gt;"; got != want {
		t.Fatalf("unexpected name:\nwant: %s\ngot:  %s", want, got)
	}
	if got := c.MinNumPlayers.Value(); got != "2-" {
		t.Fatalf("unexpected min players: %q", got)
	}
	if got := c.MaxNumPlayers.Value(); got != "+4" {
		t.Fatalf("unexpected max players: %q", got)
	}
	if got, want := c.OfficialURL.Value(), "https://example.com/ab?q=1&r="; got != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestSanitizePartial_OnlySubmittedKeys(t *testing.T) {
	c := SanitizePartial(map[string]string{"max_play_minutes": "180 min"})

	if got, ok := c.MaxPlayMinutes.Get(); !ok || got != "180" {
		t.Fatalf("unexpected max play minutes: %q set=%t", got, ok)
	}
	if c.Name.IsSet() || c.Description.IsSet() || c.OfficialURL.IsSet() || c.ID.IsSet() {
		t.Fatalf("did not expect unsubmitted fields to be set: %+v", c)
	}
	if !c.HasData() {
		t.Fatalf("expected candidate to report data")
	}
}

func TestCandidateMerge(t *testing.T) {
	base := CandidateFromGame(Game{ID: 2, Name: "Go", Description: "Stones", MinNumPlayers: 2, MaxNumPlayers: 2, MinPlayMinutes: 20, MaxPlayMinutes: 200})
	merged := base.Merge(SanitizePartial(map[string]string{"max_play_minutes": "180"}))

	if got := merged.MaxPlayMinutes.Value(); got != "180" {
		t.Fatalf("expected overlay value, got %q", got)
	}
	if got := merged.Name.Value(); got != "Go" {
		t.Fatalf("expected base name, got %q", got)
	}
	if got := merged.ID.Value(); got != "2" {
		t.Fatalf("expected base id, got %q", got)
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("17"); err != nil || id != 17 {
		t.Fatalf("unexpected parse result: id=%d err=%v", id, err)
	}
	for _, raw := range []string{"", "0", "-3", "1-2"} {
		if _, err := ParseID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
