package auth

import (
	"context"
	"errors"
	"log/slog"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/storage"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, firstName, lastName, email string, passwordHash []byte) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

type TokensStorage interface {
	Upsert(ctx context.Context, userID int64, token string) (*models.Token, error)
	Get(ctx context.Context, token string) (*models.Token, error)
	Delete(ctx context.Context, token string) error
}

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func())
}

type AuthService struct {
	log           *slog.Logger
	users         UsersStorage
	tokens        TokensStorage
	Mailer        MailProvider
	taskExecutor  TaskExecutor
	secret        string
	resetTokenTTL time.Duration
}

func New(
	log *slog.Logger,
	users UsersStorage,
	tokens TokensStorage,
	mailer MailProvider,
	taskExecutor TaskExecutor,
	secret string,
	resetTokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		log:           log,
		users:         users,
		tokens:        tokens,
		Mailer:        mailer,
		taskExecutor:  taskExecutor,
		secret:        secret,
		resetTokenTTL: resetTokenTTL,
	}
}

// Signup registers a user with the viewer role and sends a welcome email
// in the background.
func (a *AuthService) Signup(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	const op = "auth.AuthService.Signup"
	log := a.log.With("op", op, "email", email)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return nil, err
	}
	user, err := a.users.Insert(ctx, firstName, lastName, email, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("email already registered")
			return nil, ErrEmailTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	a.taskExecutor.Add(func() {
		if err := a.Mailer.Send(user.Email, "user_welcome.html", map[string]any{
			"firstName": user.FirstName,
		}); err != nil {
			log.Error("Error sending welcome email", "errMsg", err.Error())
		}
	})
	return user, nil
}

// Login verifies the credentials and issues a fresh opaque token. The new
// token replaces the previously stored one, which silently logs out any
// other session for the same account.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.Token, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op, "email", email)
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error(err.Error())
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("password mismatch")
		return nil, ErrInvalidCredentials
	}
	token, err := a.tokens.Upsert(ctx, user.ID, uuid.NewString())
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return token, nil
}

// Logout invalidates the presented token. An already invalidated token is
// not an error: the session is gone either way.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	const op = "auth.AuthService.Logout"
	log := a.log.With("op", op)
	if err := a.tokens.Delete(ctx, token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

// GetUserForToken resolves the acting user from an opaque token.
// A blank or unknown token resolves to ErrNoSession, never to a panic or
// a default user.
func (a *AuthService) GetUserForToken(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.AuthService.GetUserForToken"
	log := a.log.With("op", op)
	if token == "" {
		return nil, ErrNoSession
	}
	stored, err := a.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoSession
		}
		log.Error(err.Error())
		return nil, err
	}
	user, err := a.users.Get(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("token references missing user", "user_id", stored.UserID)
			return nil, ErrNoSession
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// SendPasswordReset emails a short-lived signed reset token to the user.
// An unknown email reports ErrUserNotFound to the caller, not to the
// outside world - the handler masks it.
func (a *AuthService) SendPasswordReset(ctx context.Context, email string) error {
	const op = "auth.AuthService.SendPasswordReset"
	log := a.log.With("op", op, "email", email)
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	claims := jwt.MapClaims{
		"uid": user.ID,
		"exp": time.Now().Add(a.resetTokenTTL).Unix(),
	}
	resetToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.secret))
	if err != nil {
		log.Error("Error signing reset token", "errMsg", err.Error())
		return err
	}
	a.taskExecutor.Add(func() {
		if err := a.Mailer.Send(user.Email, "password_reset.html", map[string]any{
			"firstName":  user.FirstName,
			"resetToken": resetToken,
		}); err != nil {
			log.Error("Error sending password reset email", "errMsg", err.Error())
		}
	})
	return nil
}

// ResetPassword consumes a signed reset token and stores the new password
// hash. All active sessions of the user keep working; only the credential
// changes.
func (a *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	const op = "auth.AuthService.ResetPassword"
	log := a.log.With("op", op)
	parsed, err := jwt.Parse(resetToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.secret), nil
	})
	if err != nil || !parsed.Valid {
		log.Info("rejected reset token")
		return ErrInvalidResetToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidResetToken
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return ErrInvalidResetToken
	}
	user, err := a.users.Get(ctx, int64(uid))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return err
	}
	user.PasswordHash = passwordHash
	if _, err := a.users.Update(ctx, user); err != nil {
		log.Error(err.Error())
		return err
	}
	return nil
}
