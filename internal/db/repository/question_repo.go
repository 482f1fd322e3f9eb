package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// QuestionRepository owns all question statements.
type QuestionRepository struct {
	db DBTX
}

func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, question, answer, category, difficulty`

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// ListOrdered returns every question ordered by id.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

// GetByID returns one question or trivia.ErrNotFound.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := r.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// Insert stores a new question and returns its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, in trivia.CreateQuestionInput) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		in.Question, in.Answer, in.Category, in.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question by id, or returns trivia.ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// Count returns the total number of questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE '%' || $1 || '%'
		 ORDER BY id`,
		term,
	)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListByCategory returns all questions in a category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions by category %d: %w", categoryID, err)
	}
	return scanQuestions(rows)
}

// ListCandidates returns quiz candidates: questions outside the excluded id
// set, restricted to a category unless categoryID is zero.
func (r *QuestionRepository) ListCandidates(ctx context.Context, categoryID int, excluded []int) ([]trivia.Question, error) {
	if excluded == nil {
		excluded = []int{}
	}
	var (
		rows pgx.Rows
		err  error
	)
	if categoryID == 0 {
		rows, err = r.db.Query(ctx,
			`SELECT `+questionColumns+` FROM questions
			 WHERE NOT (id = ANY($1))
			 ORDER BY id`,
			excluded,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+questionColumns+` FROM questions
			 WHERE NOT (id = ANY($1)) AND category = $2
			 ORDER BY id`,
			excluded, categoryID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	return scanQuestions(rows)
}
