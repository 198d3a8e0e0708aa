package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// Auth Operations
// ============================================================================
//
// Login state lives entirely on the User node's loggedIn flag; no tokens
// are issued. The system is single-session: a login attempt while any user
// is logged in is rejected.

// Login flips the user's loggedIn flag after the global session gate and
// the credential check pass. All three steps run in one transaction.
func (r *Repository) Login(ctx context.Context, login, password string) error {
	_, err := r.writeTx(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		active, err := tx.Run(ctx, "MATCH (u:User {loggedIn: true}) RETURN u LIMIT 1", nil)
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("session gate check", err)
		}
		if active.Next(ctx) {
			return nil, apperr.ErrAlreadyLoggedIn
		}
		if err := active.Err(); err != nil {
			return nil, apperr.NewGraphQueryFailed("session gate check", err)
		}

		query := `
			MATCH (u:User {name: $login, password: $password})
			SET u.loggedIn = true
			RETURN u
		`
		matched, err := tx.Run(ctx, query, map[string]any{"login": login, "password": password})
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("credential check", err)
		}
		if !matched.Next(ctx) {
			if err := matched.Err(); err != nil {
				return nil, apperr.NewGraphQueryFailed("credential check", err)
			}
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("User logged in", zap.String("login", login))
	return nil
}

// Logout clears the loggedIn flag; the user must currently be logged in.
func (r *Repository) Logout(ctx context.Context, login string) error {
	_, err := r.writeTx(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (u:User {name: $login, loggedIn: true})
			SET u.loggedIn = false
			RETURN u
		`
		result, err := tx.Run(ctx, query, map[string]any{"login": login})
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("logout", err)
		}
		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return nil, apperr.NewGraphQueryFailed("logout", err)
			}
			return nil, apperr.ErrNotLoggedIn
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("User logged out", zap.String("login", login))
	return nil
}

// ResetPassword sets a new password for the user matching login+email.
func (r *Repository) ResetPassword(ctx context.Context, login, email, password string) error {
	_, err := r.writeTx(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (u:User {name: $login, email: $email})
			SET u.password = $password
			RETURN u
		`
		result, err := tx.Run(ctx, query, map[string]any{
			"login":    login,
			"email":    email,
			"password": password,
		})
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("password reset", err)
		}
		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return nil, apperr.NewGraphQueryFailed("password reset", err)
			}
			return nil, apperr.ErrInvalidLookup
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Password reset", zap.String("login", login))
	return nil
}
