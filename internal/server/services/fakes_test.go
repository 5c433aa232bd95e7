package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createErr error
	getErr    error
	getOut    *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeSessionsRepo struct {
	createErr error
	findOut   *models.Session
	findErr   error
	delErr    error
	sweepN    int64
	sweepErr  error

	deleted []string
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) error { return f.createErr }

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return f.sweepN, f.sweepErr
}

type fakeNotesRepo struct {
	err error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	return nil, f.err
}
func (f *fakeNotesRepo) Get(ctx context.Context, id, userID int64) (*models.Note, error) {
	return nil, f.err
}
func (f *fakeNotesRepo) Update(ctx context.Context, id, userID int64, p models.NotePatch) (*models.Note, error) {
	return nil, f.err
}
func (f *fakeNotesRepo) Delete(ctx context.Context, id, userID int64) error { return f.err }
func (f *fakeNotesRepo) List(ctx context.Context, userID int64) ([]models.Note, error) {
	return nil, f.err
}

type fakeWaitlistRepo struct {
	getErr    error
	createErr error
	created   int
}

func (f *fakeWaitlistRepo) Create(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	f.created++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.WaitlistEntry{ID: 1, Email: email}, nil
}

func (f *fakeWaitlistRepo) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.WaitlistEntry{ID: 1, Email: email}, nil
}

func (f *fakeWaitlistRepo) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	return nil, nil
}
