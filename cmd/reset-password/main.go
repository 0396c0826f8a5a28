package main

import (
	"flag"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"
	"go-banksampah/pkg/config"
	"go-banksampah/pkg/database"
	applog "go-banksampah/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	email := flag.String("email", "admin@example.com", "account to reset")
	newPassword := flag.String("password", "admin123", "new password")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := applog.New("reset-password", cfg.LogLevel)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DSN(), log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	userRepo := repository.NewUserRepo(db)

	// 3. Find user
	user, err := userRepo.FindByEmail(*email)
	if err != nil {
		log.WithError(err).WithField("email", *email).Fatal("user not found")
	}

	// 4. Hash new password
	var hashed model.User
	if err := hashed.SetPassword(*newPassword); err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}

	// 5. Update
	if _, err := userRepo.Update(user.ID, map[string]interface{}{"password": hashed.Password}); err != nil {
		log.WithError(err).Fatal("failed to update password")
	}

	log.WithField("email", *email).Info("password has been reset")
}
