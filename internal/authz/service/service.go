// Package service composes the credential, user, and membership stores into
// the authorization and membership resolution core: token authentication,
// profile lookup, role resolution, and collaborator aggregation.
package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	credentialdomain "usip/internal/credential/domain"
	membershipdomain "usip/internal/membership/domain"
	userdomain "usip/internal/user/domain"
)

// Sentinel errors for the authorization service; the HTTP handler maps them
// to status codes. All are expected, caller-recoverable conditions.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrMembershipNotFound = errors.New("member not found")
)

var orphanedMembershipsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "usip_orphaned_memberships_total",
	Help: "Memberships referencing a user absent from the directory, omitted from collaborator listings.",
})

// CredentialRepo is the minimal credential repository needed by the service.
type CredentialRepo interface {
	GetByToken(ctx context.Context, token string) (*credentialdomain.Credential, error)
}

// UserRepo is the minimal user repository needed by the service.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
}

// MembershipRepo is the minimal membership repository needed by the service.
type MembershipRepo interface {
	GetByUnitAndUser(ctx context.Context, unitID, userID string) (*membershipdomain.Membership, error)
	ListByUnit(ctx context.Context, unitID string) ([]*membershipdomain.Membership, error)
}

// CollaboratorEntry is a membership enriched with the referenced user's
// public profile, for display purposes.
type CollaboratorEntry struct {
	Role membershipdomain.Role
	User *userdomain.User
}

// UnitCollaborators holds the collaborator entries for one requested unit.
// A unit with no members is still present, with an empty Entries slice, so
// callers can tell "requested but empty" from "not requested".
type UnitCollaborators struct {
	UnitID  string
	Entries []CollaboratorEntry
}

// Service answers all read queries over the three stores. It holds no state
// of its own and borrows read-only views; every operation is a synchronous,
// idempotent read.
type Service struct {
	credentials CredentialRepo
	users       UserRepo
	memberships MembershipRepo
	logger      *zap.Logger
}

// NewService returns a Service with the given store dependencies. A nil
// logger is replaced with a no-op logger.
func NewService(credentials CredentialRepo, users UserRepo, memberships MembershipRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		credentials: credentials,
		users:       users,
		memberships: memberships,
		logger:      logger,
	}
}

// Authenticate resolves token to the profile of the user it belongs to.
// Unknown tokens fail with ErrInvalidToken. A token that resolves to a user
// absent from the directory fails with ErrUserNotFound: the two kinds stay
// distinct so a caller debugging data integrity knows which store is stale.
func (s *Service) Authenticate(ctx context.Context, token string) (*userdomain.User, error) {
	cred, err := s.credentials.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, cred.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUser returns the profile for userID, or ErrUserNotFound if absent.
func (s *Service) GetUser(ctx context.Context, userID string) (*userdomain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUsers resolves each requested id in order. Ids with no matching profile
// are dropped rather than failing the batch; duplicate ids in the input
// resolve again and produce duplicates in the output.
func (s *Service) GetUsers(ctx context.Context, userIDs []string) ([]*userdomain.User, error) {
	users := make([]*userdomain.User, 0, len(userIDs))
	for _, id := range userIDs {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u != nil {
			users = append(users, u)
		}
	}
	return users, nil
}

// GetRole returns the membership for the given unit and user, or
// ErrMembershipNotFound if no role record exists for the pair. It does not
// cross-check the user against the directory: role and profile failure
// domains are decoupled, and any cross-check is the caller's concern.
func (s *Service) GetRole(ctx context.Context, unitID, userID string) (*membershipdomain.Membership, error) {
	m, err := s.memberships.GetByUnitAndUser(ctx, unitID, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMembershipNotFound
	}
	return m, nil
}

// ListCollaborators returns, for every requested unit in request order, its
// memberships enriched with profile data. A membership whose user is missing
// from the directory is a data-integrity fault: the entry is omitted,
// logged, and counted, but never fails the aggregation. Units with zero
// memberships are present in the result with an empty entry list.
func (s *Service) ListCollaborators(ctx context.Context, unitIDs []string) ([]UnitCollaborators, error) {
	out := make([]UnitCollaborators, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		members, err := s.memberships.ListByUnit(ctx, unitID)
		if err != nil {
			return nil, err
		}
		unit := UnitCollaborators{
			UnitID:  unitID,
			Entries: make([]CollaboratorEntry, 0, len(members)),
		}
		for _, m := range members {
			u, err := s.users.GetByID(ctx, m.UserID)
			if err != nil {
				return nil, err
			}
			if u == nil {
				orphanedMembershipsTotal.Inc()
				s.logger.Warn("membership references a user absent from the directory",
					zap.String("unit_id", unitID),
					zap.String("user_id", m.UserID),
				)
				continue
			}
			unit.Entries = append(unit.Entries, CollaboratorEntry{Role: m.Role, User: u})
		}
		out = append(out, unit)
	}
	return out, nil
}
