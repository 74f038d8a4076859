package domain

// Artist represents a roster member of the agency.
// Discipline is the performance role shown in the UI ("Singer", "DJ", "Acrobat").
// Password is the login credential, encoded according to the configured
// credential mode; it is empty for artists without login access.
type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Discipline string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Group      string `json:"group,omitempty"`
	Password   string `json:"password,omitempty"`
}

// NewArtist returns a new Artist. ID is generated by the store on add when empty.
func NewArtist(name, email, discipline string) *Artist {
	return &Artist{
		Name:       name,
		Email:      email,
		Discipline: discipline,
	}
}

// Clone returns a copy of the artist.
func (a *Artist) Clone() *Artist {
	c := *a
	return &c
}
