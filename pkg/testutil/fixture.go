package testutil

import (
	"context"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/repository"
)

// CreateFixtureDb seeds the database of ctx with the standard sample
// users tests build on.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	users := []entity.User{
		{Base: entity.Base{ID: "user1"}, Username: "alice"},
		{Base: entity.Base{ID: "user2"}, Username: "bob"},
		{Base: entity.Base{ID: "user3"}, Username: "carol"},
	}

	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			panic(err)
		}
	}
}
