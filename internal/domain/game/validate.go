package game

import "strconv"

// ValidationError carries one message meant to be shown to the submitter as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) (Game, error) {
	return Game{}, &ValidationError{Message: msg}
}

// Validate applies the catalog rules in order and stops at the first failure.
// On success it returns the typed record; the id is not part of the result.
func Validate(c Candidate) (Game, error) {
	name := c.Name.Value()
	if len(name) == 0 {
		return invalid("A name must be provided.")
	}
	description := c.Description.Value()
	if len(description) == 0 {
		return invalid("A description must be provided.")
	}

	minPlayers, ok := positiveInt(c.MinNumPlayers)
	if !ok {
		return invalid("The minimum number of players must be greater than 0.")
	}
	maxPlayers, ok := positiveInt(c.MaxNumPlayers)
	if !ok {
		return invalid("The maximum number of players must be greater than 0.")
	}
	if maxPlayers < minPlayers {
		return invalid("The maximum number of players must be greater than or equal to the minimum number of players.")
	}

	minMinutes, ok := positiveInt(c.MinPlayMinutes)
	if !ok {
		return invalid("The minimum play time must be greater than 0 minutes.")
	}
	maxMinutes, ok := positiveInt(c.MaxPlayMinutes)
	if !ok {
		return invalid("The maximum play time must be greater than 0 minutes.")
	}
	if maxMinutes < minMinutes {
		return invalid("The maximum play time must be greater than or equal to the minimum play time.")
	}

	return Game{
		Name:           name,
		Description:    description,
		MinNumPlayers:  minPlayers,
		MaxNumPlayers:  maxPlayers,
		MinPlayMinutes: minMinutes,
		MaxPlayMinutes: maxMinutes,
		OfficialURL:    c.OfficialURL.Value(),
	}, nil
}

// positiveInt parses a base 10 integer (optional sign, leading zeros allowed) and
// requires it to be at least 1. Unset and empty fields are not numeric. Values
// must fit the INTEGER columns they are stored in.
func positiveInt(f Field[string]) (int, bool) {
	n, err := strconv.ParseInt(f.Value(), 10, 32)
	if err != nil || n < 1 {
		return 0, false
	}
	return int(n), true
}
