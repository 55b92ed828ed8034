package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.adapter.SignUp(ctx, models.SignUpRequest{Email: email, Password: password}.Normalized())
	if err != nil {
		return models.Session{}, mapAuthError(err)
	}

	return a.persist(ctx, resp), nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password}.Normalized())
	if err != nil {
		return models.Session{}, mapAuthError(err)
	}

	return a.persist(ctx, resp), nil
}

// persist saves the session of a successful signup or login. A failed save is
// logged only: the user stays logged in for this run.
func (a *clientAuthService) persist(ctx context.Context, resp models.AuthResponse) models.Session {
	session := models.Session{
		UserID:  resp.User.ID,
		Email:   resp.User.Email,
		Token:   resp.Token,
		SavedAt: now(),
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.persist").Msg("session was not persisted")
	}
	return session
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNotLoggedIn
	}

	a.adapter.SetToken(session.Token)

	user, err := a.adapter.Profile(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Info().Str("user_id", session.UserID).Msg("stored session rejected by server")
			if logoutErr := a.Logout(ctx); logoutErr != nil {
				return models.Session{}, errors.Join(ErrNotLoggedIn, logoutErr)
			}
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("validate session: %w", err)
	}

	session.UserID = user.ID
	session.Email = user.Email
	return session, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Profile(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
