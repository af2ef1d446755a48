// seed genera un script SQL para poblar el catálogo (categorías y productos)
// a partir de un CSV exportado desde una hoja de cálculo.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Columnas esperadas: sku, nombre, categoria, unidad, precio_compra, precio_venta, umbral.
// Escribe: migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	sku           string
	name          string
	category      string
	unit          string
	purchasePrice string
	sellingPrice  string
	threshold     int64
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	// Los exports de Excel suelen venir en Windows-1252; solo se transcodifica
	// si el contenido no es UTF-8 válido.
	if !utf8.Valid(raw) {
		raw, _, err = transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Transcodificar CSV: %v\n", err)
			os.Exit(1)
		}
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vacío (se espera cabecera más filas)")
		os.Exit(1)
	}

	categorySet := make(map[string]struct{})
	var products []productRow
	for _, rec := range records[1:] {
		if len(rec) < 6 {
			continue
		}
		row := productRow{
			sku:           strings.ToUpper(strings.TrimSpace(rec[0])),
			name:          strings.TrimSpace(rec[1]),
			category:      strings.TrimSpace(rec[2]),
			unit:          strings.ToLower(strings.TrimSpace(rec[3])),
			purchasePrice: strings.TrimSpace(rec[4]),
			sellingPrice:  strings.TrimSpace(rec[5]),
			threshold:     1,
		}
		if row.sku == "" || row.name == "" {
			continue
		}
		if len(rec) > 6 {
			if n, err := strconv.ParseInt(strings.TrimSpace(rec[6]), 10, 64); err == nil && n >= 1 {
				row.threshold = n
			}
		}
		if row.category != "" {
			categorySet[row.category] = struct{}{}
		}
		products = append(products, row)
	}

	var categories []string
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial (categorías y productos)\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, c := range categories {
		fmt.Fprintf(out, "INSERT INTO categories (id, name) VALUES (gen_random_uuid(), '%s')\n", escapeSQL(c))
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Productos (quantity arranca en cero; el stock entra por el libro de movimientos)\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (id, sku, name, category_id, unit, quantity, low_stock_threshold, purchase_price, selling_price)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), '%s', '%s', c.id, '%s', 0, %d, %s, %s FROM categories c WHERE c.name = '%s'\n",
			escapeSQL(p.sku), escapeSQL(p.name), escapeSQL(p.unit), p.threshold,
			numOrZero(p.purchasePrice), numOrZero(p.sellingPrice), escapeSQL(p.category))
		out.WriteString("ON CONFLICT (sku) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, len(categories), len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// numOrZero valida que el campo sea numérico; si no, emite 0 para no romper el script.
func numOrZero(s string) string {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
