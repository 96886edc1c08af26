package service

import (
	"errors"
	"time"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"
	"go-umkm-pos/internal/ws"
	"go-umkm-pos/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommitResult dikembalikan ke kasir setelah pembayaran berhasil
type CommitResult struct {
	GrandTotal  decimal.Decimal `json:"grand_total"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	RecordCount int             `json:"record_count"`
}

type CheckoutService interface {
	Commit(cart *model.Cart, customerPhone string, date time.Time, cashierID string) (*CommitResult, error)
}

type checkoutService struct {
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub

	// Kalau true, harga/modal diambil ulang dari catalog saat commit.
	// Default false: harga terkunci saat item masuk keranjang.
	repriceAtCommit bool
}

func NewCheckoutService(
	pRepo repository.ProductRepository,
	cRepo repository.CustomerRepository,
	tRepo repository.TransactionRepository,
	db *gorm.DB,
	hub *ws.Hub,
	repriceAtCommit bool,
) CheckoutService {
	return &checkoutService{
		productRepo:     pRepo,
		customerRepo:    cRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
		repriceAtCommit: repriceAtCommit,
	}
}

// Commit memproses pembayaran sebagai satu unit of work:
// tulis baris ledger per item, kurangi stok catalog, kredit loyalty pelanggan.
// Semua dalam satu transaksi database - gagal di tengah berarti rollback total,
// keranjang tetap utuh dan tidak ada store yang berubah.
func (s *checkoutService) Commit(cart *model.Cart, customerPhone string, date time.Time, cashierID string) (*CommitResult, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, model.ErrEmptyCart
	}

	items := cart.Items()
	isGuest := model.IsGuestRef(customerPhone)
	if isGuest {
		customerPhone = model.GuestPhone
	}

	var result CommitResult
	var finalStocks map[string]int // product name -> stok setelah commit, untuk broadcast

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A. Resolve nama pelanggan (snapshot untuk ledger)
		customerName := model.GuestName
		if !isGuest {
			var customer model.Customer
			if err := tx.First(&customer, "phone = ?", customerPhone).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.ErrNotFound
				}
				return err
			}
			customerName = customer.Name
		}

		// B. Loop item dalam urutan keranjang.
		// Stok dibawa sebagai running value di memory: produk yang sama di dua
		// baris harus dikurangi kumulatif, bukan dibaca ulang per baris.
		type lockedProduct struct {
			product      *model.Product
			runningStock int
			decremented  int
		}
		locked := make(map[string]*lockedProduct)
		order := make([]string, 0, len(items))

		records := make([]model.Transaction, 0, len(items))
		grandTotal := decimal.Zero
		totalProfit := decimal.Zero

		for _, item := range items {
			lp, ok := locked[item.ProductName]
			if !ok {
				product, err := s.findProductForUpdate(tx, item.ProductName)
				if err != nil {
					return err
				}
				lp = &lockedProduct{product: product, runningStock: product.Stock}
				locked[item.ProductName] = lp
				order = append(order, item.ProductName)
			}

			// Re-validasi stok saat commit (sumber bug stok negatif kalau dilewati)
			if item.Quantity > lp.runningStock {
				return model.ErrInsufficientStock
			}
			lp.runningStock -= item.Quantity
			lp.decremented += item.Quantity

			unitPrice := item.UnitPrice
			unitCost := item.UnitCost
			if s.repriceAtCommit {
				unitPrice = lp.product.UnitPrice
				unitCost = lp.product.UnitCost
			}

			qty := decimal.NewFromInt(int64(item.Quantity))
			lineTotal := unitPrice.Mul(qty)
			lineCost := unitCost.Mul(qty)
			lineProfit := lineTotal.Sub(lineCost)

			records = append(records, model.Transaction{
				BaseModel:       model.BaseModel{CreatedBy: cashierID, UpdatedBy: cashierID},
				Date:            date,
				CustomerPhone:   customerPhone,
				CustomerName:    customerName,
				ProductName:     item.ProductName,
				Quantity:        item.Quantity,
				LineTotal:       lineTotal,
				LineCost:        lineCost,
				LineProfit:      lineProfit,
				CreatedByUserID: &cashierID,
			})

			grandTotal = grandTotal.Add(lineTotal)
			totalProfit = totalProfit.Add(lineProfit)
		}

		// C. Tulis stok baru. Guard di SQL menangkap checkout lain yang sempat
		// mengurangi stok sejak baris dibaca.
		for _, name := range order {
			lp := locked[name]
			if err := s.productRepo.DecrementStock(tx, lp.product.ID, lp.decremented, cashierID); err != nil {
				return err
			}
		}

		// D. Append semua baris ledger dalam satu insert
		if err := s.transactionRepo.CreateBatch(tx, records); err != nil {
			return err
		}

		// E. Kredit loyalty, kecuali guest
		if !isGuest {
			if err := s.customerRepo.CreditSpend(tx, customerPhone, grandTotal); err != nil {
				return err
			}
		}

		finalStocks = make(map[string]int, len(locked))
		for name, lp := range locked {
			finalStocks[name] = lp.runningStock
		}

		result = CommitResult{
			GrandTotal:  grandTotal,
			TotalProfit: totalProfit,
			RecordCount: len(records),
		}
		return nil
	})

	if err != nil {
		logger.LogError("service", "Commit", "checkout transaction rolled back", customerPhone, err)
		return nil, err
	}

	// Keranjang dikosongkan hanya setelah transaksi benar-benar commit
	cart.Clear()

	// Broadcast ke layar kasir lain
	go s.wsHub.BroadcastEvent("sale_completed", map[string]interface{}{
		"customer_phone": customerPhone,
		"grand_total":    result.GrandTotal,
		"record_count":   result.RecordCount,
		"stocks":         finalStocks,
		"cashier_id":     cashierID,
	})

	return &result, nil
}

// findProductForUpdate membaca produk di dalam transaksi checkout.
// Produk yang hilang sejak masuk keranjang adalah ErrProductVanished,
// bukan ErrNotFound biasa, supaya kasir dapat pesan yang benar.
func (s *checkoutService) findProductForUpdate(tx *gorm.DB, name string) (*model.Product, error) {
	var product model.Product
	if err := tx.First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProductVanished
		}
		return nil, err
	}
	return &product, nil
}
