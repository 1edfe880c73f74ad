package memory_test

import (
	"context"
	"testing"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/infra/adapter/persistence/memory"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := memory.NewUserRepo()
	ctx := context.Background()

	u := &entity.User{Username: "editor", Password: "secret"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Username != "editor" {
		t.Fatalf("Get = %+v, want stored user", got)
	}

	byName, err := repo.GetByUsername(ctx, "editor")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName == nil || byName.ID != u.ID {
		t.Fatalf("GetByUsername = %+v, want id %d", byName, u.ID)
	}
}

func TestUserRepo_MissingLookupsReturnNil(t *testing.T) {
	repo := memory.NewUserRepo()
	ctx := context.Background()

	if got, err := repo.Get(ctx, 42); err != nil || got != nil {
		t.Fatalf("Get(42) = %v, %v; want nil, nil", got, err)
	}
	if got, err := repo.GetByUsername(ctx, "nobody"); err != nil || got != nil {
		t.Fatalf("GetByUsername(nobody) = %v, %v; want nil, nil", got, err)
	}
}

func TestUserRepo_IDsAreMonotonic(t *testing.T) {
	repo := memory.NewUserRepo()
	ctx := context.Background()

	var last int64
	for _, name := range []string{"a", "b", "c"} {
		u := &entity.User{Username: name}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if u.ID <= last {
			t.Fatalf("id %d not greater than previous %d", u.ID, last)
		}
		last = u.ID
	}
}
