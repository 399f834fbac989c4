package api

import (
	"errors"
	"testing"

	"github.com/vietct/orderflow-client/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestToProductSummary_NullCategory(t *testing.T) {
	t.Parallel()

	got := toProductSummary(productResponse{
		ID:    "p1",
		Name:  "Lamp",
		Price: 19.99,
	})

	if got.CategoryName != "Uncategorized" {
		t.Fatalf("null category must map to Uncategorized, got %q", got.CategoryName)
	}
	if got.ImagePath != nil {
		t.Fatalf("absent image must stay nil, got %q", *got.ImagePath)
	}
}

func TestToProductSummary_WithCategory(t *testing.T) {
	t.Parallel()

	got := toProductSummary(productResponse{
		ID:        "p1",
		Name:      "Lamp",
		Price:     19.99,
		ImagePath: strPtr("/img/lamp.png"),
		Category:  &categoryResponse{ID: "c1", Name: "Home", Slug: "home"},
	})

	if got.CategoryName != "Home" {
		t.Fatalf("want Home, got %q", got.CategoryName)
	}
	if got.ImagePath == nil || *got.ImagePath != "/img/lamp.png" {
		t.Fatalf("unexpected image: %v", got.ImagePath)
	}
}

// Присутствующая категория с пустым именем — не повод для замены:
// список и карточка показывают одно и то же имя.
func TestNormalize_EmptyCategoryName_KeptEverywhere(t *testing.T) {
	t.Parallel()

	raw := productResponse{
		ID:       "p1",
		Name:     "Lamp",
		Price:    10,
		Category: &categoryResponse{ID: "c1", Name: "", Slug: "misc"},
	}

	summary := toProductSummary(raw)
	detail := toProductDetail(raw)

	if summary.CategoryName != "" {
		t.Fatalf("summary must keep the server name, got %q", summary.CategoryName)
	}
	if detail.Category.Name != summary.CategoryName {
		t.Fatalf("summary and detail diverge: %q vs %q", summary.CategoryName, detail.Category.Name)
	}
	if detail.Category.ID != "c1" || detail.Category.Slug != "misc" {
		t.Fatalf("detail category wrong: %+v", detail.Category)
	}
}

func TestToProductDetail_NullCategory_Fallback(t *testing.T) {
	t.Parallel()

	got := toProductDetail(productResponse{
		ID:        "p1",
		Name:      "Lamp",
		Price:     10,
		Stock:     3,
		CreatedAt: "2024-01-01T00:00:00",
		UpdatedAt: "2024-01-02T00:00:00",
	})

	if got.Category.Name != "Uncategorized" || got.Category.ID != "" || got.Category.Slug != "" {
		t.Fatalf("fallback category wrong: %+v", got.Category)
	}
	if got.Description != nil {
		t.Fatalf("absent description must stay nil, got %q", *got.Description)
	}
	if got.Category.CreatedAt != "2024-01-01T00:00:00" {
		t.Fatalf("category timestamps must mirror the product: %+v", got.Category)
	}
}

func TestToProductPage(t *testing.T) {
	t.Parallel()

	got := toProductPage(pageResponse{
		Content:       []productResponse{{ID: "p1"}, {ID: "p2"}},
		Number:        1,
		Size:          9,
		TotalElements: 11,
		TotalPages:    2,
		First:         false,
		Last:          true,
	})

	if len(got.Content) != 2 || got.Content[0].ID != "p1" {
		t.Fatalf("content wrong: %+v", got.Content)
	}
	if got.Number != 1 || got.Size != 9 || got.TotalElements != 11 || got.TotalPages != 2 || got.First || !got.Last {
		t.Fatalf("envelope fields wrong: %+v", got)
	}
}

func TestToOrder_KnownStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"PENDING", "PAID", "CANCELLED", "SHIPPED"} {
		status := status
		t.Run(status, func(t *testing.T) {
			t.Parallel()
			got, err := toOrder(orderResponse{ID: "o1", Status: status})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got.Status) != status {
				t.Fatalf("want %s, got %s", status, got.Status)
			}
		})
	}
}

func TestToOrder_UnknownStatus_Fails(t *testing.T) {
	t.Parallel()

	_, err := toOrder(orderResponse{ID: "o1", Status: "TELEPORTED"})
	if !errors.Is(err, domain.ErrUnknownStatus) {
		t.Fatalf("want ErrUnknownStatus, got %v", err)
	}
}

func TestToOrder_GuestAndItems(t *testing.T) {
	t.Parallel()

	got, err := toOrder(orderResponse{
		ID:          "o1",
		UserID:      nil,
		Status:      "PAID",
		TotalAmount: 39.98,
		Items: []orderItemResponse{
			{ProductID: "p1", ProductName: "Lamp", Quantity: 2, PriceAtOrder: 19.99},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Guest() {
		t.Fatalf("nil userId must mean guest order")
	}
	if len(got.Items) != 1 || got.Items[0].PriceAtOrder != 19.99 || got.Items[0].ProductName != "Lamp" {
		t.Fatalf("items wrong: %+v", got.Items)
	}
}
