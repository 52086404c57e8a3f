package repository

import "github.com/techmaster-vietnam/portfolio/core"

var (
	_ core.ProjectRepositoryInterface     = (*ProjectRepository)(nil)
	_ core.BlogPostRepositoryInterface    = (*BlogPostRepository)(nil)
	_ core.CertificateRepositoryInterface = (*CertificateRepository)(nil)
	_ core.ExperienceRepositoryInterface  = (*ExperienceRepository)(nil)
)
