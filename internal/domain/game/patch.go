package game

// Column names of the games table.
const (
	ColumnID             = "id"
	ColumnName           = "name"
	ColumnDescription    = "description"
	ColumnMinNumPlayers  = "min_num_players"
	ColumnMaxNumPlayers  = "max_num_players"
	ColumnMinPlayMinutes = "min_play_minutes"
	ColumnMaxPlayMinutes = "max_play_minutes"
	ColumnOfficialURL    = "official_url"
)

// DataColumns lists the writable columns in schema order. The id is storage owned.
var DataColumns = []string{
	ColumnName,
	ColumnDescription,
	ColumnMinNumPlayers,
	ColumnMaxNumPlayers,
	ColumnMinPlayMinutes,
	ColumnMaxPlayMinutes,
	ColumnOfficialURL,
}

// Patch is a partial update of one stored game. A set field is written, an unset
// field is left untouched, whatever its value.
type Patch struct {
	ID             int64
	Name           Field[string]
	Description    Field[string]
	MinNumPlayers  Field[int]
	MaxNumPlayers  Field[int]
	MinPlayMinutes Field[int]
	MaxPlayMinutes Field[int]
	OfficialURL    Field[string]
}

// FullPatch writes every data field of g to the row with the given id.
func FullPatch(id int64, g Game) Patch {
	return Patch{
		ID:             id,
		Name:           Some(g.Name),
		Description:    Some(g.Description),
		MinNumPlayers:  Some(g.MinNumPlayers),
		MaxNumPlayers:  Some(g.MaxNumPlayers),
		MinPlayMinutes: Some(g.MinPlayMinutes),
		MaxPlayMinutes: Some(g.MaxPlayMinutes),
		OfficialURL:    Some(g.OfficialURL),
	}
}

// NewPatch takes the typed values from validated for the fields supplied in c.
func NewPatch(id int64, c Candidate, validated Game) Patch {
	p := Patch{ID: id}
	if c.Name.IsSet() {
		p.Name = Some(validated.Name)
	}
	if c.Description.IsSet() {
		p.Description = Some(validated.Description)
	}
	if c.MinNumPlayers.IsSet() {
		p.MinNumPlayers = Some(validated.MinNumPlayers)
	}
	if c.MaxNumPlayers.IsSet() {
		p.MaxNumPlayers = Some(validated.MaxNumPlayers)
	}
	if c.MinPlayMinutes.IsSet() {
		p.MinPlayMinutes = Some(validated.MinPlayMinutes)
	}
	if c.MaxPlayMinutes.IsSet() {
		p.MaxPlayMinutes = Some(validated.MaxPlayMinutes)
	}
	if c.OfficialURL.IsSet() {
		p.OfficialURL = Some(validated.OfficialURL)
	}
	return p
}

// Values maps column name to value for the set fields only.
func (p Patch) Values() map[string]any {
	out := make(map[string]any, len(DataColumns))
	if v, ok := p.Name.Get(); ok {
		out[ColumnName] = v
	}
	if v, ok := p.Description.Get(); ok {
		out[ColumnDescription] = v
	}
	if v, ok := p.MinNumPlayers.Get(); ok {
		out[ColumnMinNumPlayers] = v
	}
	if v, ok := p.MaxNumPlayers.Get(); ok {
		out[ColumnMaxNumPlayers] = v
	}
	if v, ok := p.MinPlayMinutes.Get(); ok {
		out[ColumnMinPlayMinutes] = v
	}
	if v, ok := p.MaxPlayMinutes.Get(); ok {
		out[ColumnMaxPlayMinutes] = v
	}
	if v, ok := p.OfficialURL.Get(); ok {
		out[ColumnOfficialURL] = v
	}
	return out
}

func (p Patch) IsEmpty() bool {
	return len(p.Values()) == 0
}

// Apply returns g with the patch fields written over it.
func (p Patch) Apply(g Game) Game {
	g.Name = p.Name.Or(g.Name)
	g.Description = p.Description.Or(g.Description)
	g.MinNumPlayers = p.MinNumPlayers.Or(g.MinNumPlayers)
	g.MaxNumPlayers = p.MaxNumPlayers.Or(g.MaxNumPlayers)
	g.MinPlayMinutes = p.MinPlayMinutes.Or(g.MinPlayMinutes)
	g.MaxPlayMinutes = p.MaxPlayMinutes.Or(g.MaxPlayMinutes)
	g.OfficialURL = p.OfficialURL.Or(g.OfficialURL)
	return g
}
