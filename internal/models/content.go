package models

// Content items are stored as dictionary keys so every page renders in the
// visitor's language.

// ServiceOffering is one entry on the services page.
type ServiceOffering struct {
	ID       string `json:"id"`
	TitleKey string `json:"titleKey"`
	TextKey  string `json:"textKey"`
}

// TeamMember is one card of the about page team section.
type TeamMember struct {
	ID      string `json:"id"`
	NameKey string `json:"nameKey"`
	RoleKey string `json:"roleKey"`
	BioKey  string `json:"bioKey"`
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	ID          string `json:"id"`
	QuestionKey string `json:"questionKey"`
	AnswerKey   string `json:"answerKey"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
	Location string `json:"location"`
}

// PartnerSchool is a school already ordering examinations.
type PartnerSchool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Students string `json:"students"`
}

// PartnerCategory groups accrediting bodies and partner organisations.
type PartnerCategory struct {
	Title   string   `json:"title"`
	Members []string `json:"members"`
}
