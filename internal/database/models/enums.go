package models

// AnimalSex is the recorded sex of an animal
type AnimalSex string

const (
	AnimalSexMale    AnimalSex = "Male"
	AnimalSexFemale  AnimalSex = "Female"
	AnimalSexUnknown AnimalSex = "Unknown"
)

// IsValid checks if the AnimalSex is valid
func (s AnimalSex) IsValid() bool {
	switch s {
	case AnimalSexMale, AnimalSexFemale, AnimalSexUnknown:
		return true
	}
	return false
}
