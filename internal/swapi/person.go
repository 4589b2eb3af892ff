package swapi

import (
	"github.com/tidwall/gjson"
)

// Person is the envelope returned by /people/{id}.
type Person struct {
	Message string `json:"message"`
	Result  struct {
		UID         string     `json:"uid"`
		Description string     `json:"description"`
		Properties  Properties `json:"properties"`
	} `json:"result"`

	raw []byte
}

type Properties struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`
	Homeworld string `json:"homeworld"`
	URL       string `json:"url"`
}

func (p *Person) Name() string {
	return p.Result.Properties.Name
}

// Raw returns the body the Person was decoded from.
func (p *Person) Raw() []byte {
	return p.raw
}

// Lookup reads any field of the original body by gjson path,
// e.g. "result.properties.height".
func (p *Person) Lookup(path string) gjson.Result {
	return gjson.GetBytes(p.raw, path)
}
