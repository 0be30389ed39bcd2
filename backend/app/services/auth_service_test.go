package services_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/crypto/bcrypt"

	"stocklist/backend/app/apperr"
	"stocklist/backend/app/dto"
	"stocklist/backend/app/repo"
	"stocklist/backend/app/services"
)

func registerReq(userName, email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		UserName:  userName,
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		BirthDate: "1990-05-20",
		Password:  "s3cret-pass",
	}
}

func TestRegisterHashesPasswordAndDefaults(t *testing.T) {
	c := qt.New(t)
	s := services.NewAuthService(repo.NewUserRepository(newTestDB(t)))

	u, err := s.Register(registerReq("alice", "alice@example.com"))
	c.Assert(err, qt.IsNil)
	c.Assert(u.UserID, qt.Equals, 1)
	c.Assert(u.IsAdmin, qt.Equals, false)
	c.Assert(u.Status, qt.Equals, true)
	c.Assert(u.PageSize, qt.Equals, 12)
	c.Assert(u.Password, qt.Not(qt.Equals), "s3cret-pass")
	c.Assert(bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")), qt.IsNil)
}

func TestRegisterDuplicateUserNameConflicts(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	users := repo.NewUserRepository(db)
	s := services.NewAuthService(users)

	_, err := s.Register(registerReq("alice", "alice@example.com"))
	c.Assert(err, qt.IsNil)

	_, err = s.Register(registerReq("alice", "different@example.com"))
	c.Assert(apperr.KindOf(err), qt.Equals, apperr.Conflict)

	_, err = s.Register(registerReq("different", "alice@example.com"))
	c.Assert(apperr.KindOf(err), qt.Equals, apperr.Conflict)

	// exactly one record survived
	exists, err := users.ExistsByUserNameOrEmail("different", "different@example.com")
	c.Assert(err, qt.IsNil)
	c.Assert(exists, qt.Equals, false)
}

func TestRegisterMissingFields(t *testing.T) {
	c := qt.New(t)
	s := services.NewAuthService(repo.NewUserRepository(newTestDB(t)))

	req := registerReq("alice", "alice@example.com")
	req.Email = ""
	_, err := s.Register(req)
	c.Assert(apperr.KindOf(err), qt.Equals, apperr.Validation)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	c := qt.New(t)
	s := services.NewAuthService(repo.NewUserRepository(newTestDB(t)))

	_, err := s.Register(registerReq("alice", "alice@example.com"))
	c.Assert(err, qt.IsNil)

	_, wrongPass := s.Login("alice", "wrong-password")
	_, noUser := s.Login("nobody", "s3cret-pass")

	c.Assert(wrongPass, qt.IsNotNil)
	c.Assert(noUser, qt.IsNotNil)
	c.Assert(wrongPass.Error(), qt.Equals, noUser.Error())
	c.Assert(apperr.KindOf(wrongPass), qt.Equals, apperr.Validation)
}

func TestLoginSuccess(t *testing.T) {
	c := qt.New(t)
	s := services.NewAuthService(repo.NewUserRepository(newTestDB(t)))

	_, err := s.Register(registerReq("alice", "alice@example.com"))
	c.Assert(err, qt.IsNil)

	u, err := s.Login("alice", "s3cret-pass")
	c.Assert(err, qt.IsNil)
	c.Assert(u.UserName, qt.Equals, "alice")
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	users := repo.NewUserRepository(db)
	s := services.NewAuthService(users)

	c.Assert(s.EnsureAdmin("admin123"), qt.IsNil)
	c.Assert(s.EnsureAdmin("admin123"), qt.IsNil)

	count, err := users.CountAdmins()
	c.Assert(err, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))

	admin, err := s.Login("admin", "admin123")
	c.Assert(err, qt.IsNil)
	c.Assert(admin.IsAdmin, qt.Equals, true)
	c.Assert(admin.PageSize, qt.Equals, 50)
}
