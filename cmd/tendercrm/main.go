package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asaparov/tendercrm/internal/adapter/activity"
	"github.com/asaparov/tendercrm/internal/adapter/auth"
	"github.com/asaparov/tendercrm/internal/adapter/config"
	"github.com/asaparov/tendercrm/internal/adapter/handler/http"
	"github.com/asaparov/tendercrm/internal/adapter/logger"
	"github.com/asaparov/tendercrm/internal/adapter/storage"
	"github.com/asaparov/tendercrm/internal/adapter/storage/repository"
	"github.com/asaparov/tendercrm/internal/core/service"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error: %s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	if err := db.RunMigrations(); err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	activityLog, err := activity.NewLog(db)
	if err != nil {
		log.Error("activity log creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, activityLog, log.Named("Service"), nil)
	if err != nil {
		log.Error("tender service creating error", zap.Error(err))
		return
	}

	tenderHandler, err := http.NewTenderHandler(svc, log.Named("Tender handler"))
	if err != nil {
		log.Error("tender handler creating error", zap.Error(err))
		return
	}
	expenseHandler, err := http.NewExpenseHandler(svc, log.Named("Expense handler"))
	if err != nil {
		log.Error("expense handler creating error", zap.Error(err))
		return
	}
	accountingHandler, err := http.NewAccountingHandler(svc, log.Named("Accounting handler"))
	if err != nil {
		log.Error("accounting handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, tenderHandler, expenseHandler, accountingHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	if err := r.Serve(conf.HTTP.HostString); err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
