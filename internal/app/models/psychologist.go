package models

type Psychologist struct {
	ID           string `bson:"_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Specialty    string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	CRP          string `bson:"crp,omitempty" json:"crp,omitempty"`
}

// Session is the authenticated psychologist on whose behalf a request runs.
// It is passed explicitly into every usecase.
type Session struct {
	PsychologistID string `json:"psychologistId"`
	Email          string `json:"email"`
	Name           string `json:"name"`
}
