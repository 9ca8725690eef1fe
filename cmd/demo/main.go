package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go-retail-admin/internal/seed"
	"go-retail-admin/internal/service"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Offline smoke tool: seeds the stores, walks the cart through an order and
// prints the result. Useful for checking the composer without the server.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// 1. Seed in-memory state
	stores := store.NewStores()
	if err := seed.Load(stores); err != nil {
		log.Fatal().Err(err).Msg("failed to seed stores")
	}

	// 2. Wire the composer directly, no HTTP layer
	wsHub := ws.NewHub()
	go wsHub.Run()
	cart := service.NewCartService(stores.Items, stores.Customers, stores.Orders, wsHub)

	const session = "demo"

	// 3. Stage an order: customer 1, two of item 1, one of item 8
	if err := cart.SelectCustomer(session, 1); err != nil {
		log.Fatal().Err(err).Msg("select customer")
	}
	for _, itemID := range []int{1, 1, 8} {
		if !cart.CanAdd(session, itemID) {
			log.Fatal().Int("item_id", itemID).Msg("stock ceiling hit")
		}
		if err := cart.Add(session, itemID); err != nil {
			log.Fatal().Err(err).Msg("add to cart")
		}
	}

	log.Info().Str("total", cart.Total(session).String()).Msg("cart staged")

	// 4. Place and print
	order, err := cart.PlaceOrder(session)
	if err != nil {
		log.Fatal().Err(err).Msg("place order")
	}

	out, _ := json.MarshalIndent(order, "", "  ")
	fmt.Println(string(out))
	log.Info().Int("orders_total", stores.Orders.Len()).Msg("done")
}
