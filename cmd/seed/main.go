package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"
	"go-banksampah/internal/service"
	"go-banksampah/pkg/config"
	"go-banksampah/pkg/database"
	"go-banksampah/pkg/jwt"
	applog "go-banksampah/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	users := flag.Int("users", 10, "number of dummy users")
	tokos := flag.Int("tokos", 3, "number of shops, each with 3 barang")
	banks := flag.Int("banks", 3, "number of bank sampah, each with 2 sampah")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := applog.New("seed", cfg.LogLevel)

	db, err := database.ConnectDB(cfg.DSN(), log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.WithError(err).Fatal("auto migrate failed")
	}

	userRepo := repository.NewUserRepo(db)
	// The seeder never issues tokens; the signer only satisfies the constructor.
	authService := service.NewAuthService(userRepo, jwt.NewService("seed", 0), service.NopNotifier{}, log)
	tokoService := service.NewTokoService(repository.NewTokoRepo(db), repository.NewBarangRepo(db))
	bankService := service.NewBankSampahService(repository.NewBankSampahRepo(db), repository.NewSampahRepo(db))

	// 1. Default admin
	seedUser(log, authService, &service.SignupRequest{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: "admin123",
		Role:     model.RoleAdmin,
	})

	// 2. Dummy users
	for i := 0; i < *users; i++ {
		age := rand.Intn(50) + 18
		seedUser(log, authService, &service.SignupRequest{
			Name:        fmt.Sprintf("User %d", rand.Intn(1000)),
			Email:       fmt.Sprintf("user%d@gmail.com", rand.Intn(100000)),
			Password:    "password123",
			Role:        pick(model.RoleUser, model.RoleAdmin),
			PhoneNumber: fmt.Sprintf("08123456789%d", rand.Intn(10)),
			Address:     "123 Random St.",
			Age:         &age,
			Gender:      pick("male", "female"),
		})
	}

	// 3. Tokos with barang
	for i := 0; i < *tokos; i++ {
		toko, err := tokoService.CreateToko(&service.CreateTokoRequest{
			Nama:     fmt.Sprintf("Toko %d", rand.Intn(1000)),
			Alamat:   fmt.Sprintf("Alamat Toko %d", rand.Intn(100)),
			ImageURL: fmt.Sprintf("https://example.com/toko%d.jpg", rand.Intn(100)),
		})
		if err != nil {
			log.WithError(err).Fatal("seed toko")
		}
		for j := 0; j < 3; j++ {
			harga := int64(rand.Intn(100000) + 1000)
			stok := rand.Intn(100) + 1
			if _, err := tokoService.CreateBarang(&service.CreateBarangRequest{
				Nama:     fmt.Sprintf("Barang %d", rand.Intn(1000)),
				Harga:    &harga,
				Stok:     &stok,
				ImageURL: fmt.Sprintf("https://example.com/barang%d.jpg", rand.Intn(100)),
				TokoID:   toko.ID,
			}); err != nil {
				log.WithError(err).Fatal("seed barang")
			}
		}
	}

	// 4. Bank sampah with sampah
	for i := 0; i < *banks; i++ {
		bank, err := bankService.CreateBankSampah(&service.CreateBankSampahRequest{
			Name:     fmt.Sprintf("Bank Sampah %d", rand.Intn(1000)),
			Location: fmt.Sprintf("Lokasi Bank Sampah %d", rand.Intn(100)),
		})
		if err != nil {
			log.WithError(err).Fatal("seed bank sampah")
		}
		for j := 0; j < 2; j++ {
			price := decimal.NewFromInt(int64(rand.Intn(10000) + 500))
			if _, err := bankService.CreateSampah(&service.CreateSampahRequest{
				Category:     fmt.Sprintf("Category %d", rand.Intn(5)),
				Price:        &price,
				BankSampahID: bank.ID,
			}); err != nil {
				log.WithError(err).Fatal("seed sampah")
			}
		}
	}

	log.WithFields(logrus.Fields{"users": *users, "tokos": *tokos, "banks": *banks}).Info("seed data created")
}

func seedUser(log *logrus.Entry, auth service.AuthService, req *service.SignupRequest) {
	// the seeder runs with operator rights
	user, err := auth.Signup(req, true)
	if errors.Is(err, service.ErrEmailExists) {
		log.WithField("email", req.Email).Info("user already exists, skipped")
		return
	}
	if err != nil {
		log.WithError(err).WithField("email", req.Email).Fatal("seed user")
	}
	log.WithFields(logrus.Fields{"email": user.Email, "role": user.Role}).Info("user created")
}

func pick(a, b string) string {
	if rand.Intn(2) == 0 {
		return a
	}
	return b
}
