package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// MockProjectRepository là mock repository cho testing
type MockProjectRepository struct {
	projects  map[string]models.Project
	nextID    uint
	listCalls int
	listErr   error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		projects: make(map[string]models.Project),
		nextID:   1,
	}
}

func (m *MockProjectRepository) Create(project *models.Project) error {
	project.ID = m.nextID
	m.nextID++
	m.projects[project.Slug] = *project
	return nil
}

func (m *MockProjectRepository) GetBySlug(slug string) (*models.Project, error) {
	project, ok := m.projects[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &project, nil
}

func (m *MockProjectRepository) Update(project *models.Project) error {
	for slug, existing := range m.projects {
		if existing.ID == project.ID {
			delete(m.projects, slug)
		}
	}
	m.projects[project.Slug] = *project
	return nil
}

func (m *MockProjectRepository) Delete(id uint) error {
	for slug, existing := range m.projects {
		if existing.ID == id {
			delete(m.projects, slug)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *MockProjectRepository) List(projectType models.ProjectType, offset, limit int) ([]models.Project, int64, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var matched []models.Project
	for _, project := range m.sorted() {
		if projectType == "" || project.Type == projectType {
			matched = append(matched, project)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Project{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockProjectRepository) Initial(limit int) ([]models.Project, error) {
	projects := m.sorted()
	if len(projects) > limit {
		projects = projects[:limit]
	}
	return projects, nil
}

func (m *MockProjectRepository) DistinctTypes() ([]models.ProjectType, error) {
	seen := make(map[models.ProjectType]bool)
	var types []models.ProjectType
	for _, project := range m.sorted() {
		if project.Type != "" && !seen[project.Type] {
			seen[project.Type] = true
			types = append(types, project.Type)
		}
	}
	return types, nil
}

func (m *MockProjectRepository) sorted() []models.Project {
	projects := make([]models.Project, 0, len(m.projects))
	for _, project := range m.projects {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects
}

// MockBlogPostRepository là mock repository cho testing
type MockBlogPostRepository struct {
	posts  map[string]models.BlogPost
	nextID uint
}

func NewMockBlogPostRepository() *MockBlogPostRepository {
	return &MockBlogPostRepository{
		posts:  make(map[string]models.BlogPost),
		nextID: 1,
	}
}

func (m *MockBlogPostRepository) Create(post *models.BlogPost) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.Slug] = *post
	return nil
}

func (m *MockBlogPostRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	post, ok := m.posts[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &post, nil
}

func (m *MockBlogPostRepository) Update(post *models.BlogPost) error {
	for slug, existing := range m.posts {
		if existing.ID == post.ID {
			delete(m.posts, slug)
		}
	}
	m.posts[post.Slug] = *post
	return nil
}

func (m *MockBlogPostRepository) Delete(id uint) error {
	for slug, existing := range m.posts {
		if existing.ID == id {
			delete(m.posts, slug)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *MockBlogPostRepository) List(filter core.BlogPostFilter, offset, limit int) ([]models.BlogPost, int64, error) {
	var matched []models.BlogPost
	for _, post := range m.sorted() {
		if filter.PublishedOnly && !post.Published {
			continue
		}
		if filter.ProjectID != nil && (post.ProjectID == nil || *post.ProjectID != *filter.ProjectID) {
			continue
		}
		matched = append(matched, post)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.BlogPost{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockBlogPostRepository) Recent(limit int) ([]models.BlogPost, error) {
	posts, _, err := m.List(core.BlogPostFilter{PublishedOnly: true}, 0, limit)
	return posts, err
}

func (m *MockBlogPostRepository) sorted() []models.BlogPost {
	posts := make([]models.BlogPost, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts
}

// MockCertificateRepository là mock repository cho testing
type MockCertificateRepository struct {
	certificates map[uint]models.Certificate
	nextID       uint
	listCalls    int
}

func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{
		certificates: make(map[uint]models.Certificate),
		nextID:       1,
	}
}

func (m *MockCertificateRepository) Create(certificate *models.Certificate) error {
	certificate.ID = m.nextID
	m.nextID++
	m.certificates[certificate.ID] = *certificate
	return nil
}

func (m *MockCertificateRepository) GetByID(id uint) (*models.Certificate, error) {
	certificate, ok := m.certificates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &certificate, nil
}

func (m *MockCertificateRepository) Update(certificate *models.Certificate) error {
	m.certificates[certificate.ID] = *certificate
	return nil
}

func (m *MockCertificateRepository) Delete(id uint) error {
	delete(m.certificates, id)
	return nil
}

func (m *MockCertificateRepository) List(category models.CertificateCategory, offset, limit int) ([]models.Certificate, int64, error) {
	m.listCalls++
	var matched []models.Certificate
	for id := uint(1); id < m.nextID; id++ {
		certificate, ok := m.certificates[id]
		if ok && (category == "" || certificate.Category == category) {
			matched = append(matched, certificate)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Certificate{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockCertificateRepository) Initial(limit int) ([]models.Certificate, error) {
	certificates, _, err := m.List("", 0, limit)
	return certificates, err
}

// MockExperienceRepository là mock repository cho testing
type MockExperienceRepository struct {
	experiences map[string]models.Experience
	nextID      uint
	listCalls   int
}

func NewMockExperienceRepository() *MockExperienceRepository {
	return &MockExperienceRepository{
		experiences: make(map[string]models.Experience),
		nextID:      1,
	}
}

func (m *MockExperienceRepository) Create(experience *models.Experience) error {
	experience.ID = m.nextID
	m.nextID++
	m.experiences[experience.Slug] = *experience
	return nil
}

func (m *MockExperienceRepository) GetBySlug(slug string) (*models.Experience, error) {
	experience, ok := m.experiences[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &experience, nil
}

func (m *MockExperienceRepository) Update(experience *models.Experience) error {
	for slug, existing := range m.experiences {
		if existing.ID == experience.ID {
			delete(m.experiences, slug)
		}
	}
	m.experiences[experience.Slug] = *experience
	return nil
}

func (m *MockExperienceRepository) Delete(id uint) error {
	for slug, existing := range m.experiences {
		if existing.ID == id {
			delete(m.experiences, slug)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *MockExperienceRepository) ListAll() ([]models.Experience, error) {
	m.listCalls++
	experiences := make([]models.Experience, 0, len(m.experiences))
	for _, experience := range m.experiences {
		experiences = append(experiences, experience)
	}
	sort.Slice(experiences, func(i, j int) bool { return experiences[i].ID < experiences[j].ID })
	return experiences, nil
}

// recordingInvalidator ghi lại các lần gọi On*Changed
type recordingInvalidator struct {
	calls []string
}

func (r *recordingInvalidator) OnProjectChanged(_ context.Context, project *models.Project) {
	r.calls = append(r.calls, "project:"+project.Slug)
}

func (r *recordingInvalidator) OnBlogPostChanged(_ context.Context, post *models.BlogPost) {
	r.calls = append(r.calls, "blog:"+post.Slug)
}

func (r *recordingInvalidator) OnCertificateChanged(_ context.Context, certificate *models.Certificate) {
	r.calls = append(r.calls, "certificate:"+certificate.Title)
}

func (r *recordingInvalidator) OnExperienceChanged(_ context.Context, experience *models.Experience) {
	r.calls = append(r.calls, "experience:"+experience.Slug)
}

// newRecordingCache trả về ContentCache không lưu gì và ghi lại invalidation
func newRecordingCache() (*ContentCache, *recordingInvalidator) {
	recorder := &recordingInvalidator{}
	return &ContentCache{
		Store:       cache.NoopStore{},
		Keys:        cache.NewKeys("portfolio:"),
		TTL:         time.Minute,
		Invalidator: recorder,
	}, recorder
}

// newMemoryCache trả về ContentCache thật trên ristretto
func newMemoryCache(t *testing.T) *ContentCache {
	t.Helper()
	store, err := cache.NewRistrettoStore(1 << 20)
	if err != nil {
		t.Fatalf("Expected no error creating store, got %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewContentCache(store, cache.NewKeys("portfolio:"), time.Minute)
}

func expectAppError(t *testing.T, err error) *goerrorkit.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error, got nil")
	}
	var appErr *goerrorkit.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T: %v", err, err)
	}
	return appErr
}

func expectBusinessError(t *testing.T, err error) {
	t.Helper()
	if appErr := expectAppError(t, err); appErr.Type != goerrorkit.BusinessError {
		t.Errorf("Expected business error, got %v", appErr.Type)
	}
}

func expectValidationError(t *testing.T, err error) {
	t.Helper()
	if appErr := expectAppError(t, err); appErr.Type != goerrorkit.ValidationError {
		t.Errorf("Expected validation error, got %v", appErr.Type)
	}
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func stringPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
