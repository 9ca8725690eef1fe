package service

import (
	"errors"
	"fmt"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"
	"go-retail-admin/pkg/validator"

	"github.com/rs/zerolog/log"
)

// InventoryService owns the item screen: CRUD over the item table plus
// stock-change broadcasts. Status is whatever the form set; it is not derived
// from Qty.
type InventoryService interface {
	CreateItem(req model.Item) (model.Item, error)
	UpdateItem(req model.Item) (model.Item, error)
	DeleteItem(id int) error
	GetItem(id int) (model.Item, error)
	ListItems(p store.Projection) []model.Item
}

type inventoryService struct {
	items *store.SeqTable[model.Item]
	wsHub *ws.Hub
}

func NewInventoryService(items *store.SeqTable[model.Item], hub *ws.Hub) InventoryService {
	return &inventoryService{items: items, wsHub: hub}
}

func firstValidationError(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

func (s *inventoryService) CreateItem(req model.Item) (model.Item, error) {
	if err := firstValidationError(&req); err != nil {
		return model.Item{}, err
	}

	item, err := s.items.Add(req)
	if err != nil {
		return model.Item{}, err
	}

	log.Info().Int("id", item.ID).Str("name", item.Name).Msg("item created")
	go s.wsHub.Publish("stock_update", map[string]interface{}{
		"action": "item_created",
		"item":   item,
	})

	return item, nil
}

func (s *inventoryService) UpdateItem(req model.Item) (model.Item, error) {
	if err := firstValidationError(&req); err != nil {
		return model.Item{}, err
	}

	old, err := s.items.Get(req.ID)
	if err != nil {
		return model.Item{}, errors.New("item not found")
	}
	if err := s.items.Update(req); err != nil {
		return model.Item{}, err
	}

	go s.wsHub.Publish("stock_update", map[string]interface{}{
		"action":  "item_updated",
		"item":    req,
		"old_qty": old.Qty,
		"new_qty": req.Qty,
	})

	return req, nil
}

func (s *inventoryService) DeleteItem(id int) error {
	// Orders referencing the item keep their line; readers fall back to an
	// "Unknown" label.
	if err := s.items.Delete(id); err != nil {
		return err
	}
	go s.wsHub.Publish("stock_update", map[string]interface{}{
		"action":  "item_deleted",
		"item_id": id,
	})
	return nil
}

func (s *inventoryService) GetItem(id int) (model.Item, error) {
	return s.items.Get(id)
}

// ListItems projects the item table the way the order screen searches it:
// by name, size or id.
func (s *inventoryService) ListItems(p store.Projection) []model.Item {
	return store.Apply(s.items.List(), p, store.Fields[model.Item]{
		Search: []string{"name", "size", "id"},
		Text: map[string]func(model.Item) string{
			"name":   func(i model.Item) string { return i.Name },
			"size":   func(i model.Item) string { return i.Size },
			"status": func(i model.Item) string { return string(i.Status) },
		},
		Numeric: map[string]func(model.Item) float64{
			"id":    func(i model.Item) float64 { return float64(i.ID) },
			"price": func(i model.Item) float64 { return i.Price.InexactFloat64() },
			"qty":   func(i model.Item) float64 { return float64(i.Qty) },
		},
	})
}
