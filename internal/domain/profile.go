package domain

import "encoding/json"

// Profile selects which kind of people a page lists.
type Profile string

const (
	ProfileParticipants Profile = "participants"
	ProfileJury         Profile = "jury"
)

func (p Profile) String() string {
	return string(p)
}

// Person is a competitor or jury member extracted from a scraped page.
// Country and Bio are always empty; only Name carries scraped data.
type Person struct {
	Name    string
	Country string
	Bio     string
	Role    *string

	// HasRole marks a jury record, which serialises "role" (null when unknown).
	HasRole bool
}

type participantJSON struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Bio     string `json:"bio"`
}

type juryJSON struct {
	Name    string  `json:"name"`
	Role    *string `json:"role"`
	Country string  `json:"country"`
	Bio     string  `json:"bio"`
}

func (p Person) MarshalJSON() ([]byte, error) {
	if p.HasRole {
		return json.Marshal(juryJSON{Name: p.Name, Role: p.Role, Country: p.Country, Bio: p.Bio})
	}
	return json.Marshal(participantJSON{Name: p.Name, Country: p.Country, Bio: p.Bio})
}

func (p *Person) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var decoded juryJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	_, hasRole := raw["role"]
	*p = Person{
		Name:    decoded.Name,
		Country: decoded.Country,
		Bio:     decoded.Bio,
		Role:    decoded.Role,
		HasRole: hasRole,
	}
	return nil
}

// NewPersons builds one record per name, in order. Jury records carry a
// null role.
func NewPersons(names []string, profile Profile) []Person {
	persons := make([]Person, 0, len(names))
	for _, name := range names {
		persons = append(persons, Person{
			Name:    name,
			HasRole: profile == ProfileJury,
		})
	}
	return persons
}

// Names returns the non-empty names of persons in order.
func Names(persons []Person) []string {
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}
