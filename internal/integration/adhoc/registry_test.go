package adhoc

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

func TestRegistry_AddAndList(t *testing.T) {
	registry := NewRegistry()

	registry.Add("42", entity.NewAdHocItem("Batteries", decimal.NewFromInt(4), "pcs", "Household"))
	registry.Add("42", entity.NewAdHocItem("Candles", decimal.NewFromInt(2), "pcs", "Household"))
	registry.Add("7", entity.NewAdHocItem("Napkins", decimal.NewFromInt(1), "pcs", "Household"))

	items := registry.List("42")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Batteries" || items[1].Name != "Candles" {
		t.Errorf("expected insertion order preserved, got %q then %q", items[0].Name, items[1].Name)
	}
	if len(registry.List("7")) != 1 {
		t.Errorf("expected users to be isolated")
	}
}

func TestRegistry_ListReturnsCopies(t *testing.T) {
	registry := NewRegistry()
	registry.Add("42", entity.NewAdHocItem("Batteries", decimal.NewFromInt(4), "pcs", "Household"))

	registry.List("42")[0].IsBought = true

	if registry.List("42")[0].IsBought {
		t.Errorf("expected mutation of a listed item to not reach the registry")
	}
}

func TestRegistry_Toggle(t *testing.T) {
	registry := NewRegistry()
	item := entity.NewAdHocItem("Batteries", decimal.NewFromInt(4), "pcs", "Household")
	registry.Add("42", item)

	if !registry.Toggle("42", item.ID) {
		t.Fatalf("expected toggle to succeed")
	}
	if !registry.List("42")[0].IsBought {
		t.Errorf("expected item to be bought after toggle")
	}

	if !registry.Toggle("42", item.ID) {
		t.Fatalf("expected second toggle to succeed")
	}
	if registry.List("42")[0].IsBought {
		t.Errorf("expected item to be unbought after second toggle")
	}

	if registry.Toggle("42", uuid.New()) {
		t.Errorf("expected toggle of an unknown item to fail")
	}
	if registry.Toggle("7", item.ID) {
		t.Errorf("expected toggle for another user to fail")
	}
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewRegistry()
	first := entity.NewAdHocItem("Batteries", decimal.NewFromInt(4), "pcs", "Household")
	second := entity.NewAdHocItem("Candles", decimal.NewFromInt(2), "pcs", "Household")
	registry.Add("42", first)
	registry.Add("42", second)

	if !registry.Remove("42", first.ID) {
		t.Fatalf("expected remove to succeed")
	}

	items := registry.List("42")
	if len(items) != 1 || items[0].Name != "Candles" {
		t.Errorf("expected only the second item to remain, got %+v", items)
	}

	if registry.Remove("42", first.ID) {
		t.Errorf("expected removing the same item twice to fail")
	}
}

func TestRegistry_Clear(t *testing.T) {
	registry := NewRegistry()
	registry.Add("42", entity.NewAdHocItem("Batteries", decimal.NewFromInt(4), "pcs", "Household"))
	registry.Add("7", entity.NewAdHocItem("Napkins", decimal.NewFromInt(1), "pcs", "Household"))

	registry.Clear("42")

	if len(registry.List("42")) != 0 {
		t.Errorf("expected cleared user to have no items")
	}
	if len(registry.List("7")) != 1 {
		t.Errorf("expected other users to be untouched")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := entity.NewAdHocItem("Batteries", decimal.NewFromInt(1), "pcs", "Household")
			registry.Add("42", item)
			registry.Toggle("42", item.ID)
			registry.List("42")
		}()
	}
	wg.Wait()

	if len(registry.List("42")) != 20 {
		t.Errorf("expected 20 items, got %d", len(registry.List("42")))
	}
}
