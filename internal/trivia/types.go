package trivia

import "errors"

// ErrNotFound signals an empty lookup. Handlers map it to the 404 envelope.
var ErrNotFound = errors.New("not found")

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Question is a trivia question as stored and as served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a question category. The set of categories is fixed at
// migration time; the API never mutates it.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CreateQuestionInput carries the fields of a create-question request.
type CreateQuestionInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is one page of a question listing plus the unpaginated total.
type QuestionPage struct {
	Questions []Question
	Total     int
}

// CategoryQuestions is the by-category listing result.
type CategoryQuestions struct {
	QuestionPage
	CategoryType string
}

// CreateResult reports a successful insert together with the listing page
// the client lands on afterwards.
type CreateResult struct {
	Created int
	QuestionPage
}
