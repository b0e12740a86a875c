package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genassess/genesis-assessment-hub/internal/models"
)

var (
	ErrFAQNotFound = errors.New("faq entry not found")
)

// ContentRepository defines the interface for site content access
type ContentRepository interface {
	Services(ctx context.Context) ([]models.ServiceOffering, error)
	Team(ctx context.Context) ([]models.TeamMember, error)
	FAQ(ctx context.Context) ([]models.FAQEntry, error)
	FAQByID(ctx context.Context, id string) (*models.FAQEntry, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	PartnerSchools(ctx context.Context) ([]models.PartnerSchool, error)
	PartnerCategories(ctx context.Context) ([]models.PartnerCategory, error)
}

// InMemoryContentRepository implements ContentRepository with in-memory storage
type InMemoryContentRepository struct {
	services     []models.ServiceOffering
	team         []models.TeamMember
	faq          []models.FAQEntry
	testimonials []models.Testimonial
	schools      []models.PartnerSchool
	categories   []models.PartnerCategory
}

// NewInMemoryContentRepository creates a new in-memory content repository with the site copy
func NewInMemoryContentRepository() *InMemoryContentRepository {
	services := []models.ServiceOffering{
		{ID: "exam", TitleKey: "services.exam.title", TextKey: "services.exam.text"},
		{ID: "admin", TitleKey: "services.admin.title", TextKey: "services.admin.text"},
		{ID: "security", TitleKey: "services.security.title", TextKey: "services.security.text"},
		{ID: "support", TitleKey: "services.support.title", TextKey: "services.support.text"},
	}

	team := make([]models.TeamMember, 0, 4)
	for i := 1; i <= 4; i++ {
		prefix := fmt.Sprintf("about.team.member%d.", i)
		team = append(team, models.TeamMember{
			ID:      fmt.Sprintf("member%d", i),
			NameKey: prefix + "name",
			RoleKey: prefix + "role",
			BioKey:  prefix + "bio",
		})
	}

	faq := make([]models.FAQEntry, 0, 10)
	for i := 1; i <= 10; i++ {
		faq = append(faq, models.FAQEntry{
			ID:          fmt.Sprintf("q%d", i),
			QuestionKey: fmt.Sprintf("faq.q%d", i),
			AnswerKey:   fmt.Sprintf("faq.a%d", i),
		})
	}

	testimonials := []models.Testimonial{
		{ID: "1", Quote: "Genesis Examinations has transformed how we approach assessments. Their professionalism and attention to security gives us complete confidence.", Author: "Dr. Sarah Johnson", Position: "Principal, Juba International School", Location: "Juba"},
		{ID: "2", Quote: "The quality of exams and the support provided throughout the process has been exceptional. Our partnership with Genesis has elevated our standards.", Author: "Michael Okello", Position: "Director of Academics, Hope Secondary School", Location: "Yei"},
		{ID: "3", Quote: "Working with Genesis Examinations means we can focus on teaching while they handle the complexities of secure, fair assessment.", Author: "Grace Ater", Position: "Headteacher, Unity Primary School", Location: "Wau"},
		{ID: "4", Quote: "The team's understanding of our local context combined with international best practices makes them the ideal examination partner.", Author: "Rev. Peter Majak", Position: "School Administrator, St. Mary's College", Location: "Malakal"},
		{ID: "5", Quote: "Genesis Examinations doesn't just provide tests—they provide a complete assessment solution with support every step of the way.", Author: "Angelina Taban", Position: "Deputy Principal, Torit Girls School", Location: "Torit"},
		{ID: "6", Quote: "The integrity and security measures they employ give parents and teachers confidence in the examination results.", Author: "James Kon", Position: "Chair, School Board, Rumbek Academy", Location: "Rumbek"},
	}

	schools := []models.PartnerSchool{
		{ID: "1", Name: "South Sudan Secondary School", Location: "Juba", Students: "1,200+"},
		{ID: "2", Name: "Unity Primary Academy", Location: "Malakal", Students: "800+"},
		{ID: "3", Name: "Central Education Campus", Location: "Wau", Students: "1,500+"},
		{ID: "4", Name: "National Learning Center", Location: "Bor", Students: "600+"},
		{ID: "5", Name: "Excellence Academy", Location: "Rumbek", Students: "950+"},
		{ID: "6", Name: "Pioneer Technical Institute", Location: "Yambio", Students: "450+"},
	}

	categories := []models.PartnerCategory{
		{Title: "Educational Institutions", Members: []string{
			"Ministry of General Education and Instruction",
			"South Sudan Teacher Training Institute",
			"National Curriculum Development Center",
		}},
		{Title: "Accreditations & Standards", Members: []string{
			"International Association for Educational Assessment (IAEA)",
			"East African Examinations Council",
			"Quality Assurance and Standards Agency",
		}},
		{Title: "Partner Organizations", Members: []string{
			"UNESCO South Sudan",
			"UNICEF Education Programme",
			"South Sudan Educational Network",
		}},
		{Title: "Security & Compliance", Members: []string{
			"National Security Certification",
			"Data Protection Compliance",
			"ISO 27001 Standards Adherence",
		}},
	}

	return &InMemoryContentRepository{
		services:     services,
		team:         team,
		faq:          faq,
		testimonials: testimonials,
		schools:      schools,
		categories:   categories,
	}
}

func (r *InMemoryContentRepository) Services(ctx context.Context) ([]models.ServiceOffering, error) {
	return append([]models.ServiceOffering(nil), r.services...), nil
}

func (r *InMemoryContentRepository) Team(ctx context.Context) ([]models.TeamMember, error) {
	return append([]models.TeamMember(nil), r.team...), nil
}

func (r *InMemoryContentRepository) FAQ(ctx context.Context) ([]models.FAQEntry, error) {
	return append([]models.FAQEntry(nil), r.faq...), nil
}

// FAQByID returns a single FAQ entry by its ID
func (r *InMemoryContentRepository) FAQByID(ctx context.Context, id string) (*models.FAQEntry, error) {
	for _, entry := range r.faq {
		if entry.ID == id {
			e := entry
			return &e, nil
		}
	}
	return nil, ErrFAQNotFound
}

func (r *InMemoryContentRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return append([]models.Testimonial(nil), r.testimonials...), nil
}

func (r *InMemoryContentRepository) PartnerSchools(ctx context.Context) ([]models.PartnerSchool, error) {
	return append([]models.PartnerSchool(nil), r.schools...), nil
}

func (r *InMemoryContentRepository) PartnerCategories(ctx context.Context) ([]models.PartnerCategory, error) {
	out := make([]models.PartnerCategory, len(r.categories))
	for i, c := range r.categories {
		out[i] = models.PartnerCategory{Title: c.Title, Members: append([]string(nil), c.Members...)}
	}
	return out, nil
}
