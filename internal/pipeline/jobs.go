package pipeline

import "github.com/sixtyxsix/brandgen/internal/brand"

// Job is one (design, theme) pair to render.
type Job struct {
	// Key identifies the icon in the manifest: "<design>-<theme>".
	Key    string
	Design brand.Design
	Theme  brand.Theme
}

// PlanJobs returns one job per design and theme, themes varying fastest.
func PlanJobs(designs []brand.Design, themes []brand.Theme) []Job {
	jobs := make([]Job, 0, len(designs)*len(themes))
	for _, d := range designs {
		for _, th := range themes {
			jobs = append(jobs, Job{
				Key:    d.Name + "-" + th.Name,
				Design: d,
				Theme:  th,
			})
		}
	}
	return jobs
}
