// petctl habla con la API de mascotas.
//
// Usage:
//
//	petctl [-addr URL] get <id>
//	petctl [-addr URL] add -id N -name NAME [-tag TAG]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"petstore/internal/client"
)

const defaultAddr = "http://localhost:9000"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "petctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("petctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", envOr("PETSTORE_ADDR", defaultAddr), "base URL of the pets API")
	timeout := fs.Duration("timeout", 5*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New("usage: petctl [-addr URL] get <id> | add -id N -name NAME [-tag TAG]")
	}

	c, err := client.New(*addr, *timeout)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "get":
		return runGet(ctx, c, rest[1:], stdout)
	case "add":
		return runAdd(ctx, c, rest[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func runGet(ctx context.Context, c *client.Client, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: petctl get <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	p, petID, err := c.GetPet(ctx, id)
	if err != nil {
		return err
	}

	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "x-pet-id: %s\n%s\n", petID, b)
	return nil
}

func runAdd(ctx context.Context, c *client.Client, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.Int("id", 0, "pet id (required)")
	name := fs.String("name", "", "pet name (required)")
	tag := fs.String("tag", "", "pet tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			idSet = true
		}
	})
	if !idSet || *name == "" {
		return errors.New("usage: petctl add -id N -name NAME [-tag TAG]")
	}

	if err := c.AddPet(ctx, client.Pet{ID: *id, Name: *name, Tag: *tag}); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "accepted pet %d\n", *id)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
