package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"padelcoach/internal/domain"
)

// Shared in-memory fakes for the domain ports, used across the service tests.

type fakeInvitationRepo struct {
	byEmail   map[string]*domain.Invitation
	created   int
	deleted   int
	createErr error
	getErr    error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{byEmail: make(map[string]*domain.Invitation)}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[inv.Email]; ok {
		return domain.ErrInvitationStillValid
	}
	cp := *inv
	f.byEmail[inv.Email] = &cp
	f.created++
	return nil
}

func (f *fakeInvitationRepo) GetByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if inv, ok := f.byEmail[email]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, domain.ErrInvitationNotFound
}

func (f *fakeInvitationRepo) GetByEmailAndToken(ctx context.Context, email, token string) (*domain.Invitation, error) {
	if inv, ok := f.byEmail[email]; ok && inv.Token == token {
		cp := *inv
		return &cp, nil
	}
	return nil, domain.ErrInvitationNotFound
}

func (f *fakeInvitationRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Invitation, int, error) {
	var out []*domain.Invitation
	for _, inv := range f.byEmail {
		cp := *inv
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeInvitationRepo) Delete(ctx context.Context, id string) error {
	for email, inv := range f.byEmail {
		if inv.ID == id {
			delete(f.byEmail, email)
			f.deleted++
			return nil
		}
	}
	return domain.ErrInvitationNotFound
}

type fakeUserRepo struct {
	byID     map[string]*domain.User
	byEmail  map[string]*domain.User
	seq      int
	hasAdmin bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	cp := *u
	f.add(&cp)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.User, int, error) {
	var out []*domain.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	f.add(&cp)
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (f *fakeUserRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	return f.hasAdmin, nil
}

type fakeStudentRepo struct {
	created []*domain.Student
	err     error
}

func (f *fakeStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	if f.err != nil {
		return f.err
	}
	s.ID = fmt.Sprintf("student-%d", len(f.created)+1)
	f.created = append(f.created, s)
	return nil
}
func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return nil, domain.ErrStudentNotFound
}
func (f *fakeStudentRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Student, int, error) {
	return nil, 0, nil
}
func (f *fakeStudentRepo) Update(ctx context.Context, s *domain.Student) error { return nil }
func (f *fakeStudentRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

type fakeTrainerRepo struct {
	created []*domain.Trainer
	err     error
}

func (f *fakeTrainerRepo) Create(ctx context.Context, t *domain.Trainer) error {
	if f.err != nil {
		return f.err
	}
	t.ID = fmt.Sprintf("trainer-%d", len(f.created)+1)
	f.created = append(f.created, t)
	return nil
}
func (f *fakeTrainerRepo) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	return nil, domain.ErrTrainerNotFound
}
func (f *fakeTrainerRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Trainer, int, error) {
	return nil, 0, nil
}
func (f *fakeTrainerRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

type fakeResetRepo struct {
	byToken    map[string]*domain.PasswordResetToken
	consumeErr error
	consumed   []string
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: make(map[string]*domain.PasswordResetToken)}
}

func (f *fakeResetRepo) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	cp := *t
	f.byToken[t.Token] = &cp
	return nil
}

func (f *fakeResetRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	if t, ok := f.byToken[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrResetTokenInvalid
}

func (f *fakeResetRepo) Consume(ctx context.Context, tokenID, userID, passwordHash string) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	for _, t := range f.byToken {
		if t.ID == tokenID {
			if t.Used {
				return domain.ErrResetTokenUsed
			}
			t.Used = true
			f.consumed = append(f.consumed, tokenID)
			return nil
		}
	}
	return domain.ErrResetTokenUsed
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash-" + password, nil }
func (fakeHasher) Compare(digest, password string) error {
	if digest != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	seq int
}

func (f *fakeSigner) Issue(payload string) (string, error) {
	f.seq++
	return fmt.Sprintf("tok-%s-%d", payload, f.seq), nil
}

func (f *fakeSigner) Verify(token string, maxAge time.Duration) (string, error) {
	return "", domain.ErrInvalidToken
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, role domain.Role, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "jwt-" + userID, nil
}

// fakeEmailService records sends and can fail per recipient.
type fakeEmailService struct {
	invitesSent []string
	resetsSent  []string
	failFor     map[string]error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{failFor: make(map[string]error)}
}

func (f *fakeEmailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	if err, ok := f.failFor[data.Email]; ok {
		return err
	}
	f.invitesSent = append(f.invitesSent, data.Email)
	return nil
}

func (f *fakeEmailService) SendPasswordReset(ctx context.Context, data *domain.PasswordResetEmailData) error {
	if err, ok := f.failFor[data.Email]; ok {
		return err
	}
	f.resetsSent = append(f.resetsSent, data.Email)
	return nil
}
