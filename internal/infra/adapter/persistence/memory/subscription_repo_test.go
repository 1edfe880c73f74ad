package memory_test

import (
	"context"
	"testing"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/infra/adapter/persistence/memory"
)

func TestSubscriptionRepo_CreateIsIdempotentByEmail(t *testing.T) {
	repo := memory.NewSubscriptionRepo()
	ctx := context.Background()

	first := &entity.Subscription{Email: "a@x.com", AcceptedPolicy: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == 0 || first.SubscribedAt.IsZero() {
		t.Fatalf("Create did not fill id/subscribedAt: %+v", first)
	}

	// Second sign-up with the same email and different policy flag returns
	// the stored record unchanged.
	second := &entity.Subscription{Email: "a@x.com", AcceptedPolicy: false}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create (duplicate): %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("duplicate sign-up got id %d, want %d", second.ID, first.ID)
	}
	if !second.AcceptedPolicy {
		t.Fatal("duplicate sign-up overwrote the stored acceptedPolicy")
	}
}

func TestSubscriptionRepo_EmailMatchIsCaseSensitive(t *testing.T) {
	repo := memory.NewSubscriptionRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, &entity.Subscription{Email: "a@x.com", AcceptedPolicy: true})

	got, err := repo.GetByEmail(ctx, "A@x.com")
	if err != nil || got != nil {
		t.Fatalf("GetByEmail(A@x.com) = %v, %v; want nil, nil", got, err)
	}

	got, err = repo.GetByEmail(ctx, "a@x.com")
	if err != nil || got == nil {
		t.Fatalf("GetByEmail(a@x.com) = %v, %v; want record", got, err)
	}
}
