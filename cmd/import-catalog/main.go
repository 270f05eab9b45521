// Command import-catalog pulls merchant listings into catalog entries from
// the command line, one URL per argument.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/vastrastudio/vastra-backend/config"
	"github.com/vastrastudio/vastra-backend/importer"
)

func main() {
	config.LoadConfig()

	urls := os.Args[1:]
	if len(urls) == 0 {
		fmt.Println("Usage: import-catalog <listing-url> [listing-url ...]")
		os.Exit(1)
	}

	imp := importer.New()
	for _, u := range urls {
		fmt.Printf("Importing: %s\n", u)
		item, err := imp.Import(context.Background(), u)
		if err != nil {
			log.Printf("Failed to import %s: %v\n", u, err)
			continue
		}

		out, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			log.Printf("Failed to encode %s: %v\n", item.ID, err)
			continue
		}
		fmt.Println(string(out))
	}
}
