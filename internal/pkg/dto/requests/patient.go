package requests

type ListPatients struct {
	Search string
	Status string
}
