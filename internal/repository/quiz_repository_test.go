package repository

import (
	"errors"
	"testing"
	"time"

	"quizhub_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Admin{}, &model.Quiz{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func seedQuiz(t *testing.T, r *QuizRepository, title string, owner uint, createdAt time.Time) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{
		Title:     title,
		CreatedBy: owner,
		Questions: model.QuestionList{
			{ID: "q1", Type: model.TrueFalse, QuestionText: "placeholder", CorrectAnswer: "true", Points: 1},
		},
	}
	quiz.CreatedAt = createdAt
	if err := r.Create(quiz); err != nil {
		t.Fatalf("failed to seed quiz %q: %v", title, err)
	}
	return quiz
}

func TestListPublicNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewQuizRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedQuiz(t, r, "oldest", 1, base)
	seedQuiz(t, r, "middle", 2, base.Add(time.Hour))
	seedQuiz(t, r, "newest", 1, base.Add(2*time.Hour))

	quizzes, err := r.ListPublic()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quizzes) != 3 {
		t.Fatalf("expected 3 quizzes, got %d", len(quizzes))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if quizzes[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, quizzes[i].Title)
		}
	}
}

func TestListByOwnerFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewQuizRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedQuiz(t, r, "mine-old", 1, base)
	seedQuiz(t, r, "theirs", 2, base.Add(time.Hour))
	seedQuiz(t, r, "mine-new", 1, base.Add(2*time.Hour))

	quizzes, err := r.ListByOwner(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	if quizzes[0].Title != "mine-new" || quizzes[1].Title != "mine-old" {
		t.Fatalf("unexpected order: %q, %q", quizzes[0].Title, quizzes[1].Title)
	}
}

func TestFindByIDAndOwner(t *testing.T) {
	db := newTestDB(t)
	r := NewQuizRepository(db)

	quiz := seedQuiz(t, r, "mine", 1, time.Now())

	if _, err := r.FindByIDAndOwner(quiz.ID, 1); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	// 他人与不存在同样返回 ErrRecordNotFound
	if _, err := r.FindByIDAndOwner(quiz.ID, 2); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign owner, got %v", err)
	}
	if _, err := r.FindByIDAndOwner("missing-id", 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing id, got %v", err)
	}
}

func TestDeleteByIDAndOwner(t *testing.T) {
	db := newTestDB(t)
	r := NewQuizRepository(db)

	quiz := seedQuiz(t, r, "mine", 1, time.Now())

	rows, err := r.DeleteByIDAndOwner(quiz.ID, 2)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("foreign delete should affect 0 rows, got %d", rows)
	}

	rows, err = r.DeleteByIDAndOwner(quiz.ID, 1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("owner delete should affect 1 row, got %d", rows)
	}

	if _, err := r.FindByID(quiz.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("quiz should be gone, got %v", err)
	}
}

func TestQuestionsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	r := NewQuizRepository(db)

	quiz := &model.Quiz{
		Title:     "Geo",
		CreatedBy: 1,
		Questions: model.QuestionList{
			{ID: "q1", Type: model.TrueFalse, QuestionText: "Paris is in France", CorrectAnswer: "true", Points: 2},
			{ID: "q2", Type: model.MultipleChoice, QuestionText: "2+2=?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4", Points: 1},
		},
	}
	if err := r.Create(quiz); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := r.FindByID(quiz.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(stored.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(stored.Questions))
	}
	q2 := stored.Questions[1]
	if q2.Type != model.MultipleChoice || len(q2.Options) != 3 || q2.CorrectAnswer != "4" {
		t.Fatalf("question column did not round-trip: %+v", q2)
	}
}
