package ormfeat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "hierarchy-paths",
		Summary: "Hierarchies: materialized paths and subtree prefix queries",
		Run:     runHierarchy,
	})
}

// CreateCategory inserts a category under parent (nil for a root) and
// assigns its materialized path. The path is derived from the generated ID,
// so insert and path assignment happen in one transaction.
func CreateCategory(db *gorm.DB, name string, parent *Category) (*Category, error) {
	cat := &Category{Name: name}
	if parent != nil {
		cat.ParentID = &parent.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		prefix := "/"
		if parent != nil {
			prefix = parent.Path
		}
		cat.Path = fmt.Sprintf("%s%d/", prefix, cat.ID)
		return tx.Model(cat).Update("path", cat.Path).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return cat, nil
}

// Subtree returns cat and all of its descendants, ordered by path.
// A subtree is exactly the rows whose path starts with cat's path.
func Subtree(db *gorm.DB, cat *Category) ([]Category, error) {
	var cats []Category
	err := db.Where("path LIKE ?", cat.Path+"%").Order("path").Find(&cats).Error
	if err != nil {
		return nil, fmt.Errorf("subtree of %q: %w", cat.Name, err)
	}
	return cats, nil
}

// Depth returns the number of ancestors encoded in the path; roots are 0.
func Depth(cat *Category) int {
	trimmed := strings.Trim(cat.Path, "/")
	if trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "/")
}

// AncestorIDs returns the IDs along the path from the root down to cat's
// parent.
func AncestorIDs(cat *Category) []uint {
	segments := strings.Split(strings.Trim(cat.Path, "/"), "/")
	if len(segments) <= 1 {
		return nil
	}
	ids := make([]uint, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		id, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			continue // malformed segment: skip rather than fail a read path
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// Ancestors loads the chain from the root down to cat's parent.
func Ancestors(db *gorm.DB, cat *Category) ([]Category, error) {
	ids := AncestorIDs(cat)
	if len(ids) == 0 {
		return nil, nil
	}
	var cats []Category
	err := db.Where("id IN ?", ids).Order("path").Find(&cats).Error
	if err != nil {
		return nil, fmt.Errorf("ancestors of %q: %w", cat.Name, err)
	}
	return cats, nil
}

func runHierarchy(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}
	db = db.WithContext(ctx)

	p.Step("each node stores the ID path from the root, e.g. /1/2/")
	electronics, err := CreateCategory(db, "Electronics", nil)
	if err != nil {
		return err
	}
	computers, err := CreateCategory(db, "Computers", electronics)
	if err != nil {
		return err
	}
	laptops, err := CreateCategory(db, "Laptops", computers)
	if err != nil {
		return err
	}
	audio, err := CreateCategory(db, "Audio", electronics)
	if err != nil {
		return err
	}
	for _, cat := range []*Category{electronics, computers, laptops, audio} {
		p.Value(cat.Name, cat.Path)
	}

	p.Step("a subtree is one prefix query on the path column")
	subtree, err := Subtree(db, computers)
	if err != nil {
		return err
	}
	names := make([]string, len(subtree))
	for i, cat := range subtree {
		names[i] = cat.Name
	}
	p.Value("subtree of Computers", names)

	p.Step("depth and ancestry fall out of the encoded path, no extra queries")
	p.Value("depth of Laptops", Depth(laptops))
	p.Value("ancestor IDs of Laptops", AncestorIDs(laptops))

	ancestors, err := Ancestors(db, laptops)
	if err != nil {
		return err
	}
	chain := make([]string, len(ancestors))
	for i, cat := range ancestors {
		chain[i] = cat.Name
	}
	p.Value("ancestors of Laptops", chain)

	return nil
}
