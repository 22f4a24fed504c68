package responses

type Login struct {
	Token          string `json:"token"`
	PsychologistID string `json:"psychologistId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}
