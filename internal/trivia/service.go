package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrInvalidInput signals a create or quiz payload that fails validation.
// Handlers map it to the 422 envelope.
var ErrInvalidInput = errors.New("invalid input")

// QuestionStore is the question access the service needs, implemented by
// repository.QuestionRepository.
type QuestionStore interface {
	ListOrdered(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id int) (Question, error)
	Insert(ctx context.Context, in CreateQuestionInput) (int, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	ListCandidates(ctx context.Context, categoryID int, excluded []int) ([]Question, error)
}

// CategoryStore is the category access the service needs, implemented by
// repository.CategoryRepository.
type CategoryStore interface {
	ListOrdered(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (Category, error)
}

// Service implements the trivia operations over the store and cache.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
}

func NewService(questions QuestionStore, categories CategoryStore, cache CategoryCache) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
	}
}

// Listing is one page of questions plus the data the listing endpoint
// returns alongside it.
type Listing struct {
	Questions  []Question
	Total      int
	Categories map[int]string
}

// Categories returns the id-to-type map of all categories, ErrNotFound when
// the store holds none.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return categories, nil
}

// categoryMap resolves the category map through the cache. Cache failures
// fall through to the store; an unwritable cache never fails a request.
func (s *Service) categoryMap(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	categories, err := s.categories.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	if s.cache != nil && len(m) > 0 {
		_ = s.cache.Set(ctx, m)
	}
	return m, nil
}

// Questions returns one page of all questions ordered by id, the unpaginated
// total, and the category map. A page past the data is ErrNotFound.
func (s *Service) Questions(ctx context.Context, page int) (Listing, error) {
	all, err := s.questions.ListOrdered(ctx)
	if err != nil {
		return Listing{}, err
	}
	current := paginate(all, page)
	if len(current) == 0 {
		return Listing{}, ErrNotFound
	}
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Questions:  current,
		Total:      len(all),
		Categories: categories,
	}, nil
}

// Delete removes a question by id and returns the remaining total.
func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		return 0, err
	}
	return s.questions.Count(ctx)
}

// Create validates and inserts a question, then returns the new id together
// with the requested listing page and total.
func (s *Service) Create(ctx context.Context, in CreateQuestionInput, page int) (CreateResult, error) {
	if err := validateCreate(in); err != nil {
		return CreateResult{}, err
	}

	id, err := s.questions.Insert(ctx, in)
	if err != nil {
		return CreateResult{}, err
	}

	all, err := s.questions.ListOrdered(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{
		Created: id,
		QuestionPage: QuestionPage{
			Questions: paginate(all, page),
			Total:     len(all),
		},
	}, nil
}

func validateCreate(in CreateQuestionInput) error {
	if strings.TrimSpace(in.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}
	if in.Category <= 0 {
		return fmt.Errorf("%w: category must be a positive id", ErrInvalidInput)
	}
	if in.Difficulty <= 0 {
		return fmt.Errorf("%w: difficulty must be a positive integer", ErrInvalidInput)
	}
	return nil
}

// Search returns one page of questions whose text contains term,
// case-insensitively, and the total match count. Zero matches is ErrNotFound.
func (s *Service) Search(ctx context.Context, term string, page int) (QuestionPage, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, err
	}
	if len(matches) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{
		Questions: paginate(matches, page),
		Total:     len(matches),
	}, nil
}

// ByCategory returns one page of a category's questions plus the category's
// display string. An unknown category id is ErrNotFound.
func (s *Service) ByCategory(ctx context.Context, categoryID, page int) (CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, err
	}
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, err
	}
	return CategoryQuestions{
		QuestionPage: QuestionPage{
			Questions: paginate(questions, page),
			Total:     len(questions),
		},
		CategoryType: category.Type,
	}, nil
}

// NextQuizQuestion picks one not-yet-seen question uniformly at random,
// restricted to a category unless categoryID is zero. A nil question with a
// nil error means the candidate set is exhausted and the quiz is over.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error) {
	if categoryID < 0 {
		return nil, fmt.Errorf("%w: category id must not be negative", ErrInvalidInput)
	}
	candidates, err := s.questions.ListCandidates(ctx, categoryID, previous)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	next := candidates[rand.IntN(len(candidates))]
	return &next, nil
}
