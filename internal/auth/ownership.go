package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
)

// OwnershipPolicy decides whether a caller may touch a task owned by another
// user. Employees are restricted to their own rows; admins and managers may
// read anyone's.
type OwnershipPolicy struct{}

func (p *OwnershipPolicy) CanViewTask(actor *coreuser.Actor, ownerID int64) error {
	if actor == nil {
		return ErrForbidden
	}
	if actor.Role.CanViewAllUsers() || actor.ID == ownerID {
		return nil
	}
	return ErrForbidden
}

func (p *OwnershipPolicy) CanModifyTask(actor *coreuser.Actor, ownerID int64) error {
	if actor == nil {
		return ErrForbidden
	}
	// modification is owner-only regardless of role; admins correct records
	// through the task owner, not in place
	if actor.ID == ownerID {
		return nil
	}
	return ErrForbidden
}

// RequireTaskAccess builds a middleware that resolves the task owner from the
// route id and runs the given policy check before the handler sees the
// request.
func RequireTaskAccess(db *sqlx.DB, policy *OwnershipPolicy, check func(*OwnershipPolicy, *coreuser.Actor, int64) error) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || actor == nil {
				writeEnvelopeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			idStr := chi.URLParam(r, "id")
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil || id <= 0 {
				writeEnvelopeError(w, http.StatusBadRequest, "invalid task id")
				return
			}

			var ownerID int64
			err = db.GetContext(r.Context(), &ownerID,
				"SELECT user_id FROM user_tasks WHERE id=$1 AND is_deleted=false", id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// fall through to the handler, which reports the
					// entity-specific not-found message
					next.ServeHTTP(w, r)
					return
				}
				writeEnvelopeError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			if err := check(policy, actor, ownerID); err != nil {
				// the client contract keeps authorization failures at 400
				writeEnvelopeError(w, http.StatusBadRequest, "you are not allowed to access this task")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeEnvelopeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"code":    status,
		"message": message,
		"body":    nil,
	})
}
