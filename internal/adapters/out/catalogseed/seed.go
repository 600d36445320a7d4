// Package catalogseed loads menu items from a YAML file so either storage
// driver can price orders without the external catalog service.
package catalogseed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Writer stores catalog items, replacing existing ones with the same id.
type Writer interface {
	Put(ctx context.Context, items ...ports.CatalogItem) error
}

type file struct {
	Items []item `yaml:"items"`
}

type item struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Price     string `yaml:"price"`
	Available *bool  `yaml:"available"`
}

// Parse decodes a seed document:
//
//	items:
//	  - id: 5f0c...
//	    name: Pizza
//	    price: "10.00"
//	    available: true
//
// available defaults to true.
func Parse(r io.Reader) ([]ports.CatalogItem, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	items := make([]ports.CatalogItem, 0, len(doc.Items))
	seen := make(map[kernel.UUID]struct{}, len(doc.Items))
	for i, raw := range doc.Items {
		it, err := raw.toCatalogItem()
		if err != nil {
			return nil, fmt.Errorf("catalog seed item %d: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("catalog seed item %d: %w", i,
				errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%s listed twice", it.ID)))
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}

// LoadFile parses the seed at path and writes it through w. It returns the
// number of items written.
func LoadFile(ctx context.Context, path string, w Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return 0, err
	}
	if err = w.Put(ctx, items...); err != nil {
		return 0, fmt.Errorf("store catalog seed: %w", err)
	}
	return len(items), nil
}

func (i item) toCatalogItem() (ports.CatalogItem, error) {
	id, err := kernel.ParseUUID("id", i.ID)
	if err != nil {
		return ports.CatalogItem{}, err
	}
	if i.Name == "" {
		return ports.CatalogItem{}, errs.NewValueIsRequiredError("name")
	}
	price, err := kernel.MoneyFromString(i.Price)
	if err != nil {
		return ports.CatalogItem{}, err
	}
	available := true
	if i.Available != nil {
		available = *i.Available
	}
	return ports.CatalogItem{ID: id, Name: i.Name, Price: price, Available: available}, nil
}
