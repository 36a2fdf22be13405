package handlers

import (
	"context"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/models"
	"TENNIS-TRACKER_BACK-END/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64

	lastCreateEmail string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (*models.User, error) {
	f.lastCreateEmail = email
	if _, ok := f.users[email]; ok {
		return nil, apperr.ErrDuplicateEmail
	}
	f.nextID++
	f.users[email] = &models.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	return &models.User{ID: f.nextID, Email: email}, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return &models.User{ID: user.ID, Email: user.Email}, nil
		}
	}
	return nil, apperr.ErrNotFound
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeMatchRepo returns canned results and records the arguments it saw.
type fakeMatchRepo struct {
	match     *models.Match
	matches   []models.Match
	summaries []models.OpponentSummary
	deletedID int64
	err       error

	calls      int
	lastUserID int64
	lastID     int64
	lastInput  repository.MatchInput
	lastFilter repository.ListFilter
}

func (f *fakeMatchRepo) Create(_ context.Context, userID int64, in repository.MatchInput) (*models.Match, error) {
	f.calls++
	f.lastUserID = userID
	f.lastInput = in
	return f.match, f.err
}

func (f *fakeMatchRepo) List(_ context.Context, userID int64, filter repository.ListFilter) ([]models.Match, error) {
	f.calls++
	f.lastUserID = userID
	f.lastFilter = filter
	return f.matches, f.err
}

func (f *fakeMatchRepo) GetByID(_ context.Context, userID, id int64) (*models.Match, error) {
	f.calls++
	f.lastUserID = userID
	f.lastID = id
	return f.match, f.err
}

func (f *fakeMatchRepo) Update(_ context.Context, userID, id int64, in repository.MatchInput) (*models.Match, error) {
	f.calls++
	f.lastUserID = userID
	f.lastID = id
	f.lastInput = in
	return f.match, f.err
}

func (f *fakeMatchRepo) Delete(_ context.Context, userID, id int64) (int64, error) {
	f.calls++
	f.lastUserID = userID
	f.lastID = id
	return f.deletedID, f.err
}

func (f *fakeMatchRepo) SummarizeByOpponent(_ context.Context, userID int64) ([]models.OpponentSummary, error) {
	f.calls++
	f.lastUserID = userID
	return f.summaries, f.err
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)
