package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oleksir/inkpad/internal/common"
	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/models"
	"github.com/oleksir/inkpad/internal/server/password"
)

// fakeUsersRepo is an in-memory users.Repository.
type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
	nextID    int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.Username]; ok {
		return nil, common.ErrUsernameTaken
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	u.CreatedAt = time.Now()
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func newAuthService(repo *fakeUsersRepo) (*AuthService, *auth.TokenCodec) {
	codec := auth.NewTokenCodec([]byte("test-secret"), time.Hour)
	return NewAuthService(repo, password.NewHasher(bcrypt.MinCost), codec), codec
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	svc, codec := newAuthService(repo)

	res, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if res.Token == "" {
		t.Fatalf("expected a session token")
	}

	stored, err := repo.GetByUsername(context.Background(), "ann")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "Abcdef1!" || !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("password not stored as a bcrypt hash: %q", stored.PasswordHash)
	}

	claims, err := codec.Decode(res.Token)
	if err != nil {
		t.Fatalf("issued token does not decode: %v", err)
	}
	if claims.UserID != stored.ID || claims.Username != "ann" {
		t.Fatalf("token claims mismatch: %+v", claims)
	}
}

func TestRegister_TrimsUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	_, errs, err := svc.Register(context.Background(), "  ann  ", "Abcdef1!")
	if err != nil || len(errs) != 0 {
		t.Fatalf("Register failed: errs=%v err=%v", errs, err)
	}
	if _, err := repo.GetByUsername(context.Background(), "ann"); err != nil {
		t.Fatalf("expected trimmed username to be stored: %v", err)
	}
}

func TestRegister_ValidationErrorsAccumulate(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(newFakeUsersRepo())

	res, errs, err := svc.Register(context.Background(), "a!", "short")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if res != nil {
		t.Fatalf("no result expected on validation failure")
	}
	// Username rules first, then password rules.
	if len(errs) < 3 || !strings.Contains(errs[0], "Username") {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	if _, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!"); err != nil || len(errs) != 0 {
		t.Fatalf("first Register failed: errs=%v err=%v", errs, err)
	}

	res, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!")
	if err != nil {
		t.Fatalf("second Register error: %v", err)
	}
	if res != nil {
		t.Fatalf("second registration must not succeed")
	}
	if len(errs) != 1 || errs[0] != MsgUsernameTaken {
		t.Fatalf("expected %q, got %v", MsgUsernameTaken, errs)
	}
	if len(repo.byName) != 1 {
		t.Fatalf("store must still contain exactly one user")
	}
}

func TestRegister_LostInsertRace(t *testing.T) {
	t.Parallel()

	// The pre-check passes (user not in the store), the insert fails on the
	// unique index. Same user-visible message as the pre-check.
	repo := newFakeUsersRepo()
	repo.createErr = common.ErrUsernameTaken
	svc, _ := newAuthService(repo)

	res, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if res != nil {
		t.Fatalf("no result expected")
	}
	if len(errs) != 1 || errs[0] != MsgUsernameTaken {
		t.Fatalf("expected %q, got %v", MsgUsernameTaken, errs)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	svc, codec := newAuthService(repo)

	if _, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!"); err != nil || len(errs) != 0 {
		t.Fatalf("Register failed: errs=%v err=%v", errs, err)
	}

	res, errs, err := svc.Login(context.Background(), "ann", "Abcdef1!")
	if err != nil || len(errs) != 0 {
		t.Fatalf("Login failed: errs=%v err=%v", errs, err)
	}
	claims, err := codec.Decode(res.Token)
	if err != nil || claims.Username != "ann" {
		t.Fatalf("bad login token: claims=%+v err=%v", claims, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	if _, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!"); err != nil || len(errs) != 0 {
		t.Fatalf("Register failed: errs=%v err=%v", errs, err)
	}

	res, errs, err := svc.Login(context.Background(), "ann", "Wrongpw1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res != nil {
		t.Fatalf("no token may be issued for a wrong password")
	}
	if len(errs) != 1 || errs[0] != MsgInvalidPassword {
		t.Fatalf("expected %q, got %v", MsgInvalidPassword, errs)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(newFakeUsersRepo())

	res, errs, err := svc.Login(context.Background(), "ghost", "Abcdef1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res != nil {
		t.Fatalf("no token may be issued")
	}
	if len(errs) != 1 || errs[0] != MsgUserNotFound {
		t.Fatalf("expected %q, got %v", MsgUserNotFound, errs)
	}
}

func TestLogin_ValidationSkipsStore(t *testing.T) {
	t.Parallel()

	// Invalid input is rejected before any store lookup; the repo would
	// report the user as missing, but the errors must be validation ones.
	svc, _ := newAuthService(newFakeUsersRepo())

	_, errs, err := svc.Login(context.Background(), "x", "short")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	for _, e := range errs {
		if e == MsgUserNotFound {
			t.Fatalf("store was consulted despite validation errors: %v", errs)
		}
	}
	if len(errs) == 0 {
		t.Fatalf("expected validation errors")
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUsersRepo()
	repo.createErr = errors.New("db down")
	svc, _ := newAuthService(repo)

	_, errs, err := svc.Register(context.Background(), "ann", "Abcdef1!")
	if err == nil {
		t.Fatalf("expected an infrastructure error")
	}
	if len(errs) != 0 {
		t.Fatalf("infrastructure failures must not surface as user messages: %v", errs)
	}
}
