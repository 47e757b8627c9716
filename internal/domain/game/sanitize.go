package game

import "strings"

// Raw field names accepted from a submission.
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldMinNumPlayers  = "min_num_players"
	FieldMaxNumPlayers  = "max_num_players"
	FieldMinPlayMinutes = "min_play_minutes"
	FieldMaxPlayMinutes = "max_play_minutes"
	FieldOfficialURL    = "official_url"
)

var specialCharsEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// urlChars is every character allowed to survive URL sanitizing besides letters and digits.
const urlChars = "$-_.+!*'(),{}|\\^~[]`<>#%\";/?:@&="

// Sanitize builds a candidate from a full form submission. Every data field is
// set, to "" when missing from raw. The id is set only when raw has an id key.
func Sanitize(raw map[string]string) Candidate {
	c := Candidate{
		Name:           Some(escapeSpecialChars(raw[FieldName])),
		Description:    Some(escapeSpecialChars(raw[FieldDescription])),
		MinNumPlayers:  Some(keepInteger(raw[FieldMinNumPlayers])),
		MaxNumPlayers:  Some(keepInteger(raw[FieldMaxNumPlayers])),
		MinPlayMinutes: Some(keepInteger(raw[FieldMinPlayMinutes])),
		MaxPlayMinutes: Some(keepInteger(raw[FieldMaxPlayMinutes])),
		OfficialURL:    Some(keepURL(raw[FieldOfficialURL])),
	}
	if id, ok := raw[FieldID]; ok {
		c.ID = Some(keepInteger(id))
	}
	return c
}

// SanitizePartial applies the same filters as Sanitize but sets only the keys present in raw.
func SanitizePartial(raw map[string]string) Candidate {
	var c Candidate
	sanitizeInto(&c.ID, raw, FieldID, keepInteger)
	sanitizeInto(&c.Name, raw, FieldName, escapeSpecialChars)
	sanitizeInto(&c.Description, raw, FieldDescription, escapeSpecialChars)
	sanitizeInto(&c.MinNumPlayers, raw, FieldMinNumPlayers, keepInteger)
	sanitizeInto(&c.MaxNumPlayers, raw, FieldMaxNumPlayers, keepInteger)
	sanitizeInto(&c.MinPlayMinutes, raw, FieldMinPlayMinutes, keepInteger)
	sanitizeInto(&c.MaxPlayMinutes, raw, FieldMaxPlayMinutes, keepInteger)
	sanitizeInto(&c.OfficialURL, raw, FieldOfficialURL, keepURL)
	return c
}

func sanitizeInto(dst *Field[string], raw map[string]string, key string, filter func(string) string) {
	if v, ok := raw[key]; ok {
		*dst = Some(filter(v))
	}
}

func escapeSpecialChars(v string) string {
	return specialCharsEscaper.Replace(v)
}

// keepInteger drops everything except digits and sign characters.
func keepInteger(v string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' {
			return r
		}
		return -1
	}, v)
}

func keepURL(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r < 0x80 && strings.ContainsRune(urlChars, r):
			return r
		default:
			return -1
		}
	}, v)
}
