package jobs

type Job struct {
	Queue    string
	Priority *int
	Labels   []string `builder:"each=label"`
}
