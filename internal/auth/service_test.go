package auth_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/tracko/internal/auth"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Module Suite")
}

type mockUserRepository struct {
	credentials map[string]*auth.Credentials
	actors      map[int64]*coreuser.Actor
	nextID      int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		credentials: make(map[string]*auth.Credentials),
		actors:      make(map[int64]*coreuser.Actor),
		nextID:      1,
	}
}

func (m *mockUserRepository) GetCredentialsByEmail(email string) (*auth.Credentials, error) {
	creds, ok := m.credentials[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return creds, nil
}

func (m *mockUserRepository) CreateUser(name, email, passwordHash, phoneNumber, countryCode string, role coreuser.Role) (int64, error) {
	id := m.nextID
	m.nextID++
	m.credentials[email] = &auth.Credentials{
		UserID:       id,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       coreuser.StatusActive,
	}
	m.actors[id] = &coreuser.Actor{ID: id, Email: email, Role: role}
	return id, nil
}

func (m *mockUserRepository) EmailExists(email string) (bool, error) {
	_, ok := m.credentials[email]
	return ok, nil
}

func (m *mockUserRepository) GetActorByID(userID int64) (*coreuser.Actor, error) {
	actor, ok := m.actors[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return actor, nil
}

func (m *mockUserRepository) addUser(email, password string, role coreuser.Role, status coreuser.Status) int64 {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	id := m.nextID
	m.nextID++
	m.credentials[email] = &auth.Credentials{
		UserID:       id,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	if status.IsActive() {
		m.actors[id] = &coreuser.Actor{ID: id, Email: email, Role: role}
	}
	return id
}

var _ = Describe("AuthService", func() {
	var (
		service *auth.Service
		repo    *mockUserRepository
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		tokenGen := auth.NewJWTTokenGenerator(
			"test-access-secret-0123456789abcdefgh",
			"test-refresh-secret-0123456789abcdefg",
			15*time.Minute,
			24*time.Hour,
		)
		service = auth.NewService(repo, tokenGen, bcrypt.MinCost)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)
		})

		It("issues both tokens for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
			Expect(tokens.AccessToken).NotTo(Equal(tokens.RefreshToken))
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "wrong",
			})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects an unknown email", func() {
			_, err := service.Authenticate(auth.LoginDTO{
				Email: "nobody@tracko.local", Password: "secret-password",
			})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects an inactive account", func() {
			repo.addUser("gone@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusInactive)
			_, err := service.Authenticate(auth.LoginDTO{
				Email: "gone@tracko.local", Password: "secret-password",
			})
			Expect(err).To(Equal(auth.ErrUserInactive))
		})
	})

	Describe("Signup", func() {
		It("creates an employee account and logs it in", func() {
			tokens, err := service.Signup(auth.SignupDTO{
				Name: "New Person", Email: "new@tracko.local", Password: "longenough",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Role).To(Equal(int8(coreuser.RoleEmployee)))
		})

		It("rejects a taken email", func() {
			repo.addUser("taken@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)
			_, err := service.Signup(auth.SignupDTO{
				Name: "New Person", Email: "taken@tracko.local", Password: "longenough",
			})
			Expect(err).To(Equal(auth.ErrEmailTaken))
		})

		It("rejects a short password", func() {
			_, err := service.Signup(auth.SignupDTO{
				Name: "New Person", Email: "new@tracko.local", Password: "short",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("token round trip", func() {
		It("validates an issued access token", func() {
			id := repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleManager, coreuser.StatusActive)

			tokens, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(id))
			Expect(claims.Email).To(Equal("emp@tracko.local"))
			Expect(claims.Role).To(Equal(int8(coreuser.RoleManager)))
		})

		It("rejects a refresh token used as an access token", func() {
			repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)

			tokens, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(tokens.RefreshToken)
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})

		It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})

		It("rejects an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator(
				"test-access-secret-0123456789abcdefgh",
				"test-refresh-secret-0123456789abcdefg",
				-1*time.Minute,
				24*time.Hour,
			)
			expiredService := auth.NewService(repo, expiredGen, bcrypt.MinCost)
			repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)

			tokens, err := expiredService.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = expiredService.ValidateAccessToken(tokens.AccessToken)
			Expect(err).To(Equal(auth.ErrTokenExpired))
		})
	})

	Describe("RefreshTokens", func() {
		It("rotates tokens for an active user", func() {
			repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)

			tokens, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())

			rotated, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(rotated.AccessToken).NotTo(BeEmpty())
		})

		It("rejects refresh for a deactivated user", func() {
			id := repo.addUser("emp@tracko.local", "secret-password", coreuser.RoleEmployee, coreuser.StatusActive)

			tokens, err := service.Authenticate(auth.LoginDTO{
				Email: "emp@tracko.local", Password: "secret-password",
			})
			Expect(err).NotTo(HaveOccurred())

			delete(repo.actors, id)

			_, err = service.RefreshTokens(tokens.RefreshToken)
			Expect(err).To(Equal(auth.ErrUserInactive))
		})
	})
})
