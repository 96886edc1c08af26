// Command import-legacy loads the old flat-file POS data (master_produk.csv,
// data_pelanggan.csv, data_transaksi.csv) into the database. One-shot: run it
// once against an empty schema, then retire the CSV files.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	dir := flag.String("dir", ".", "directory containing the legacy CSV files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Customer{}, &model.Transaction{})

	products := importProducts(db, *dir+"/master_produk.csv")
	phoneByName := importCustomers(db, *dir+"/data_pelanggan.csv")
	ledger := importLedger(db, *dir+"/data_transaksi.csv", phoneByName)

	log.Printf("✅ Import selesai: %d produk, %d pelanggan, %d baris ledger", products, len(phoneByName), ledger)
}

func readCSV(path string) [][]string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: %s not found, skipping", path)
		return nil
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatalf("❌ Failed to parse %s: %v", path, err)
	}
	if len(rows) < 2 {
		return nil // header only
	}
	return rows
}

// col finds a header index; the legacy files use Indonesian column names
func col(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// pandas writes whole numbers as "10.0"
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

func importProducts(db *gorm.DB, path string) int {
	rows := readCSV(path)
	if rows == nil {
		return 0
	}

	header := rows[0]
	name := col(header, "Nama Produk")
	category := col(header, "Kategori")
	cost := col(header, "HPP (Modal)")
	price := col(header, "Harga Jual")
	stock := col(header, "Stok")
	if name < 0 || cost < 0 || price < 0 || stock < 0 {
		log.Printf("Warning: %s is missing expected columns, skipping", path)
		return 0
	}

	count := 0
	for _, row := range rows[1:] {
		if row[name] == "" {
			continue
		}
		p := model.Product{
			Name:      row[name],
			Category:  "Lainnya",
			UnitCost:  parseMoney(row[cost]),
			UnitPrice: parseMoney(row[price]),
			Stock:     parseInt(row[stock]),
		}
		if category >= 0 && model.IsValidCategory(row[category]) {
			p.Category = row[category]
		}
		p.ComputeMargin()
		p.CreatedBy = "import-legacy"
		p.UpdatedBy = "import-legacy"

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Warning: skip product %q: %v", p.Name, err)
			continue
		}
		count++
	}
	return count
}

// importCustomers returns name -> phone so the ledger import can resolve the
// legacy name-keyed customer references to the canonical phone key.
func importCustomers(db *gorm.DB, path string) map[string]string {
	phoneByName := make(map[string]string)

	rows := readCSV(path)
	if rows == nil {
		return phoneByName
	}

	header := rows[0]
	name := col(header, "Nama Pelanggan")
	phone := col(header, "No HP")
	spend := col(header, "Total Belanja")
	if name < 0 || spend < 0 {
		log.Printf("Warning: %s is missing expected columns, skipping", path)
		return phoneByName
	}

	for _, row := range rows[1:] {
		if row[name] == "" {
			continue
		}
		if phone < 0 || row[phone] == "" || model.IsGuestRef(row[phone]) {
			// Tanpa nomor HP tidak ada identity key; baris dilewati
			log.Printf("Warning: skip customer %q: no usable phone number", row[name])
			continue
		}
		c := model.Customer{
			Phone:         row[phone],
			Name:          row[name],
			LifetimeSpend: parseMoney(row[spend]),
		}
		c.CreatedBy = "import-legacy"
		c.UpdatedBy = "import-legacy"

		if err := db.Create(&c).Error; err != nil {
			log.Printf("Warning: skip customer %q: %v", c.Name, err)
			continue
		}
		phoneByName[c.Name] = c.Phone
	}
	return phoneByName
}

func importLedger(db *gorm.DB, path string, phoneByName map[string]string) int {
	rows := readCSV(path)
	if rows == nil {
		return 0
	}

	header := rows[0]
	date := col(header, "Tanggal")
	customer := col(header, "Pelanggan")
	product := col(header, "Produk")
	qty := col(header, "Qty")
	total := col(header, "Total")
	modal := col(header, "Modal")
	laba := col(header, "Laba")
	if date < 0 || customer < 0 || product < 0 || qty < 0 || total < 0 {
		log.Printf("Warning: %s is missing expected columns, skipping", path)
		return 0
	}

	count := 0
	for _, row := range rows[1:] {
		txDate, err := time.Parse("2006-01-02", row[date])
		if err != nil {
			log.Printf("Warning: skip ledger row: bad date %q", row[date])
			continue
		}

		// Legacy ledger refers to customers by display name; map to phone,
		// anything unresolved becomes a guest row.
		customerName := row[customer]
		customerPhone, ok := phoneByName[customerName]
		if !ok {
			customerPhone = model.GuestPhone
			if customerName == "" {
				customerName = model.GuestName
			}
		}

		lineTotal := parseMoney(row[total])
		lineCost := decimal.Zero
		if modal >= 0 {
			lineCost = parseMoney(row[modal])
		}
		lineProfit := lineTotal.Sub(lineCost)
		if laba >= 0 && row[laba] != "" {
			lineProfit = parseMoney(row[laba])
		}

		tx := model.Transaction{
			Date:          txDate,
			CustomerPhone: customerPhone,
			CustomerName:  customerName,
			ProductName:   row[product],
			Quantity:      parseInt(row[qty]),
			LineTotal:     lineTotal,
			LineCost:      lineCost,
			LineProfit:    lineProfit,
		}
		tx.CreatedBy = "import-legacy"
		tx.UpdatedBy = "import-legacy"

		if err := db.Create(&tx).Error; err != nil {
			log.Printf("Warning: skip ledger row for %q: %v", row[product], err)
			continue
		}
		count++
	}
	return count
}
