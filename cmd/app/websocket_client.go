// Command app tails a tenant's catalog change stream.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

func main() {
	url := flag.String("url", "ws://localhost:10000/api/v1/catalog/stream", "catalog stream endpoint")
	byID := flag.Bool("id", false, "treat the argument as a tenant ID instead of a slug")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-url ws://...] [-id] <TENANT_SLUG|TENANT_ID>")
	}

	header := http.Header{}
	if *byID {
		header.Set(tenant.HeaderTenantID, flag.Arg(0))
	} else {
		header.Set(tenant.HeaderTenantSlug, flag.Arg(0))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Connecting to %s...\n", *url)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, *url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("Failed to connect: %v (HTTP %d)", err, resp.StatusCode)
		}
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for catalog events...")
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var event domain.CatalogEvent
			if err := conn.ReadJSON(&event); err != nil {
				var syntaxErr *json.SyntaxError
				if errors.As(err, &syntaxErr) {
					log.Println("Skipping malformed event:", err)
					continue
				}
				log.Println("Read error:", err)
				return
			}
			fmt.Printf("%s  %-22s %s\n", event.OccurredAt.Local().Format(time.TimeOnly), event.Type, event.EntityID)
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Println("\nDisconnecting...")
		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second)); err != nil {
			log.Println("Write close:", err)
			return
		}
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
