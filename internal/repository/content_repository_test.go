package repository

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryContentRepository_Counts(t *testing.T) {
	repo := NewInMemoryContentRepository()
	ctx := context.Background()

	services, _ := repo.Services(ctx)
	team, _ := repo.Team(ctx)
	faq, _ := repo.FAQ(ctx)
	testimonials, _ := repo.Testimonials(ctx)
	schools, _ := repo.PartnerSchools(ctx)
	categories, _ := repo.PartnerCategories(ctx)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"services", len(services), 4},
		{"team", len(team), 4},
		{"faq", len(faq), 10},
		{"testimonials", len(testimonials), 6},
		{"schools", len(schools), 6},
		{"categories", len(categories), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %d %s, got %d", tt.want, tt.name, tt.got)
			}
		})
	}
}

func TestInMemoryContentRepository_FAQByID(t *testing.T) {
	repo := NewInMemoryContentRepository()

	entry, err := repo.FAQByID(context.Background(), "q6")
	if err != nil {
		t.Fatalf("FAQByID() error = %v", err)
	}
	if entry.QuestionKey != "faq.q6" || entry.AnswerKey != "faq.a6" {
		t.Errorf("unexpected entry %+v", entry)
	}

	if _, err := repo.FAQByID(context.Background(), "q99"); !errors.Is(err, ErrFAQNotFound) {
		t.Errorf("FAQByID(q99) error = %v, want ErrFAQNotFound", err)
	}
}

func TestInMemoryContentRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryContentRepository()
	ctx := context.Background()

	categories, _ := repo.PartnerCategories(ctx)
	categories[0].Members[0] = "changed"

	again, _ := repo.PartnerCategories(ctx)
	if again[0].Members[0] == "changed" {
		t.Error("repository content was mutated through a returned slice")
	}
}
