package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/anusha761/shopassist/internal/config"
	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/repository"

	"github.com/xuri/excelize/v2"
)

// Imports the laptop catalogue sheet (xlsx or csv) into PostgreSQL. The
// sheet must carry a header row with at least Description and Price columns;
// Brand and Model columns are picked up when present.
func main() {
	var (
		file  = flag.String("file", "laptop_data.csv", "catalogue file to import (.csv or .xlsx)")
		sheet = flag.String("sheet", "", "sheet name for xlsx files (defaults to the first sheet)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := repository.NewCatalogueRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	rows, err := readRows(*file, *sheet)
	if err != nil {
		log.Fatalf("Failed to read catalogue file: %v", err)
	}
	if len(rows) < 2 {
		log.Fatalf("Catalogue file %s has no data rows", *file)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		log.Fatalf("Bad catalogue header: %v", err)
	}

	ctx := context.Background()
	imported := 0
	for i, row := range rows[1:] {
		laptop := rowToLaptop(row, columns)
		if laptop.Description == "" || laptop.Price == "" {
			log.Printf("Skipping row %d: missing description or price", i+2)
			continue
		}
		if _, err := repo.InsertLaptop(ctx, laptop); err != nil {
			log.Printf("Failed to insert row %d: %v", i+2, err)
			continue
		}
		imported++
	}

	log.Printf("✅ Imported %d of %d catalogue rows from %s", imported, len(rows)-1, *file)
}

// columnIndexes locates the known catalogue columns in the header row
type columnIndexes struct {
	brand       int
	modelName   int
	description int
	price       int
}

func mapColumns(header []string) (*columnIndexes, error) {
	columns := &columnIndexes{brand: -1, modelName: -1, description: -1, price: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "brand":
			columns.brand = i
		case "model", "model name":
			columns.modelName = i
		case "description":
			columns.description = i
		case "price":
			columns.price = i
		}
	}
	if columns.description < 0 || columns.price < 0 {
		return nil, fmt.Errorf("missing required columns Description and Price in header %v", header)
	}
	return columns, nil
}

func rowToLaptop(row []string, columns *columnIndexes) *model.Laptop {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	return &model.Laptop{
		Brand:       cell(columns.brand),
		ModelName:   cell(columns.modelName),
		Description: cell(columns.description),
		Price:       cell(columns.price),
	}
}

// readRows loads all rows from a csv or xlsx file
func readRows(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	return f.GetRows(sheet)
}
