// Package devdata provides the built-in development dataset: three users
// with generated avatars, one credential per user, and three units with two
// members each. cmd/seed loads it into Postgres; cmd/server loads it into
// the in-memory stores when no database is configured.
package devdata

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"usip/internal/avatar"
	credentialdomain "usip/internal/credential/domain"
	credentialrepo "usip/internal/credential/repository"
	membershipdomain "usip/internal/membership/domain"
	membershiprepo "usip/internal/membership/repository"
	userdomain "usip/internal/user/domain"
	userrepo "usip/internal/user/repository"
)

// FirstUserID identifies the first sample user; cmd/seed checks it to keep
// seeding idempotent.
const FirstUserID = "1"

// provisionedAt is a fixed base timestamp so the dataset is identical on
// every load and membership ordering is deterministic in Postgres too.
var provisionedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Users returns the sample user profiles.
func Users() []*userdomain.User {
	users := make([]*userdomain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("user%d", i)
		users = append(users, &userdomain.User{
			ID:        fmt.Sprintf("%d", i),
			Name:      name,
			Avatar:    avatar.Generate(name),
			CreatedAt: provisionedAt,
		})
	}
	return users
}

// Credentials returns the sample credentials, one per sample user
// ("token:1" resolves to user "1", and so on).
func Credentials() []*credentialdomain.Credential {
	creds := make([]*credentialdomain.Credential, 0, 3)
	for i := 1; i <= 3; i++ {
		creds = append(creds, &credentialdomain.Credential{
			Token:     fmt.Sprintf("token:%d", i),
			UserID:    fmt.Sprintf("%d", i),
			CreatedAt: provisionedAt,
		})
	}
	return creds
}

// Memberships returns the sample memberships. Creation timestamps increase
// in dataset order so the per-unit listing order is stable.
func Memberships() []*membershipdomain.Membership {
	data := []struct {
		unitID string
		userID string
		role   membershipdomain.Role
	}{
		{"unit1", "1", membershipdomain.RoleOwner},
		{"unit1", "2", membershipdomain.RoleEditor},
		{"unit2", "2", membershipdomain.RoleOwner},
		{"unit2", "3", membershipdomain.RoleReader},
		{"unit3", "3", membershipdomain.RoleOwner},
		{"unit3", "1", membershipdomain.RoleEditor},
	}
	out := make([]*membershipdomain.Membership, 0, len(data))
	for i, d := range data {
		out = append(out, &membershipdomain.Membership{
			UnitID:    d.unitID,
			UserID:    d.userID,
			Role:      d.role,
			CreatedAt: provisionedAt.Add(time.Duration(i) * time.Second),
		})
	}
	return out
}

// Load provisions the full dataset through the given repositories.
// Memberships without an id get a generated one.
func Load(ctx context.Context, users userrepo.Repository, credentials credentialrepo.Repository, memberships membershiprepo.Repository) error {
	for _, u := range Users() {
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.ID, err)
		}
	}
	for _, c := range Credentials() {
		if err := credentials.Create(ctx, c); err != nil {
			return fmt.Errorf("create credential for user %s: %w", c.UserID, err)
		}
	}
	for _, m := range Memberships() {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		if err := memberships.Create(ctx, m); err != nil {
			return fmt.Errorf("create membership %s/%s: %w", m.UnitID, m.UserID, err)
		}
	}
	return nil
}
