package game

import "testing"

func TestPatchValues_OnlySetFields(t *testing.T) {
	p := Patch{ID: 2, MaxPlayMinutes: Some(180)}

	values := p.Values()
	if len(values) != 1 {
		t.Fatalf("expected one value, got %+v", values)
	}
	if values[ColumnMaxPlayMinutes] != 180 {
		t.Fatalf("unexpected max_play_minutes: %v", values[ColumnMaxPlayMinutes])
	}
	if _, ok := values[ColumnID]; ok {
		t.Fatalf("id must never be a written column")
	}
}

func TestPatchValues_ZeroValueStillWritten(t *testing.T) {
	p := Patch{ID: 2, OfficialURL: Some("")}
	if _, ok := p.Values()[ColumnOfficialURL]; !ok {
		t.Fatalf("expected a set empty url to be written")
	}
	if !(Patch{ID: 2}).IsEmpty() {
		t.Fatalf("expected patch without fields to be empty")
	}
}

func TestNewPatch_FollowsSubmittedFields(t *testing.T) {
	validated := Game{Name: "Go", Description: "Stones", MinNumPlayers: 2, MaxNumPlayers: 2, MinPlayMinutes: 20, MaxPlayMinutes: 180}
	p := NewPatch(2, SanitizePartial(map[string]string{"max_play_minutes": "180"}), validated)

	if p.ID != 2 {
		t.Fatalf("unexpected id: %d", p.ID)
	}
	if v, ok := p.MaxPlayMinutes.Get(); !ok || v != 180 {
		t.Fatalf("unexpected max play minutes: %d set=%t", v, ok)
	}
	if p.Name.IsSet() || p.MinPlayMinutes.IsSet() {
		t.Fatalf("did not expect unsubmitted fields in patch: %+v", p)
	}
}

func TestPatchApply(t *testing.T) {
	stored := Game{ID: 2, Name: "Go", Description: "Stones", MinNumPlayers: 2, MaxNumPlayers: 2, MinPlayMinutes: 20, MaxPlayMinutes: 200}
	got := Patch{ID: 2, MaxPlayMinutes: Some(180)}.Apply(stored)

	want := stored
	want.MaxPlayMinutes = 180
	if got != want {
		t.Fatalf("unexpected game:\nwant: %+v\ngot:  %+v", want, got)
	}

	full := FullPatch(2, Game{Name: "Chess", Description: "Kings", MinNumPlayers: 2, MaxNumPlayers: 2, MinPlayMinutes: 10, MaxPlayMinutes: 90})
	if len(full.Values()) != len(DataColumns) {
		t.Fatalf("expected full patch to touch every data column")
	}
}
