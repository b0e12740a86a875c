package service

import (
	"context"
	"fmt"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/repository"
)

// ContentService assembles the static content shown on the site pages
type ContentService struct {
	repo repository.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(repo repository.ContentRepository) *ContentService {
	return &ContentService{
		repo: repo,
	}
}

// AboutContent is everything the about page lists.
type AboutContent struct {
	Team []models.TeamMember
}

// PartnersContent is everything the partners page lists.
type PartnersContent struct {
	Schools    []models.PartnerSchool
	Categories []models.PartnerCategory
}

func (s *ContentService) Services(ctx context.Context) ([]models.ServiceOffering, error) {
	return s.repo.Services(ctx)
}

func (s *ContentService) About(ctx context.Context) (*AboutContent, error) {
	team, err := s.repo.Team(ctx)
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	return &AboutContent{Team: team}, nil
}

func (s *ContentService) FAQ(ctx context.Context) ([]models.FAQEntry, error) {
	return s.repo.FAQ(ctx)
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.Testimonials(ctx)
}

func (s *ContentService) Partners(ctx context.Context) (*PartnersContent, error) {
	schools, err := s.repo.PartnerSchools(ctx)
	if err != nil {
		return nil, fmt.Errorf("load partner schools: %w", err)
	}
	categories, err := s.repo.PartnerCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load partner categories: %w", err)
	}
	return &PartnersContent{Schools: schools, Categories: categories}, nil
}
