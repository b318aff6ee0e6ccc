package main

import (
	"fmt"
	"os"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/search"
)

// main validates the embedded catalog fixtures and prints a summary.
// Usage: go run cmd/fixtures/main.go
// Run after editing catalog/data/*.json; this is a standalone CLI tool,
// not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ELECTRICWHEELS - Catalog Fixture Check")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	store, err := catalog.Load()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ %d bikes, %d brands, %d dealers\n\n", store.Len(), len(store.Brands()), len(store.Dealers("")))

	fmt.Println("Models per brand:")
	for _, b := range store.BrandsWithCounts() {
		fmt.Printf("  %-14s %d\n", b.Name, b.ModelCount)
	}

	fmt.Println("\nPrice bucket coverage:")
	for _, bucket := range search.PriceBuckets {
		count := 0
		for _, b := range store.Bikes() {
			if bucket.Contains(float64(b.Price.MSRP)) {
				count++
			}
		}
		marker := ""
		if count == 0 {
			marker = "  ⚠️  empty"
		}
		fmt.Printf("  %-18s %d%s\n", bucket.Label, count, marker)
	}

	fmt.Println("\n✓ Fixtures OK")
}
