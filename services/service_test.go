package services

import (
	"testing"

	"github.com/BozorgmehrZia/quiz-peach-backend/config"
	"github.com/BozorgmehrZia/quiz-peach-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database and migrates the
// schema. Each suite uses its own name so databases do not bleed into
// one another within the test binary.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return db
}

// cleanTables wipes all rows between tests, children first.
func cleanTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{
		"answered_questions",
		"related_questions",
		"questions",
		"tags",
		"users",
	} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name string, score int) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Score:    score,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func createTestQuestion(t *testing.T, db *gorm.DB, creatorID, tagID uint, name string, correctOption int) *models.Question {
	t.Helper()

	question := &models.Question{
		CreatorID:     creatorID,
		Name:          name,
		Question:      "What is the answer?",
		Option1:       "a",
		Option2:       "b",
		Option3:       "c",
		Option4:       "d",
		CorrectOption: correctOption,
		Level:         models.LevelEasy,
		TagID:         tagID,
	}
	require.NoError(t, db.Create(question).Error)

	// Keep the tag counter consistent with the direct insert.
	require.NoError(t, db.Model(&models.Tag{}).Where("id = ?", tagID).
		UpdateColumn("question_number", gorm.Expr("question_number + 1")).Error)

	return question
}
