package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindows(t *testing.T) {
	questions := seedQuestions(25)

	assert.Len(t, paginate(questions, 1), QuestionsPerPage)
	assert.Equal(t, 11, paginate(questions, 2)[0].ID)
	assert.Len(t, paginate(questions, 3), 5)
	assert.Empty(t, paginate(questions, 4))
}

func TestPaginateClampsNonPositivePages(t *testing.T) {
	questions := seedQuestions(12)

	assert.Equal(t, paginate(questions, 1), paginate(questions, 0))
	assert.Equal(t, paginate(questions, 1), paginate(questions, -5))
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, paginate(nil, 1))
}
