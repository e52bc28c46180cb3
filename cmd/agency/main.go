package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/audit"
	"github.com/BruksfildServices01/estate-agency/internal/clock"
	"github.com/BruksfildServices01/estate-agency/internal/config"
	"github.com/BruksfildServices01/estate-agency/internal/console"
	dbpkg "github.com/BruksfildServices01/estate-agency/internal/db"
	infraRepo "github.com/BruksfildServices01/estate-agency/internal/infra/repository"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/service"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agency",
		Short: "Real Estate Agency console application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			clock.Configure(cfg.Timezone)
			db := dbpkg.NewDB(cfg)

			newConsole(cfg, db).Run(cmd.Context())
			return nil
		},
	}

	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbpkg.NewDB(config.Load())
			log.Println("database schema is up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter employee roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := dbpkg.NewDB(config.Load())
			employees := service.NewEmployeeService(
				infraRepo.NewEmployeeGormRepository(db),
			)

			roster := []models.Employee{
				{FirstName: "Olena", LastName: "Shevchenko"},
				{FirstName: "Dmytro", LastName: "Kovalenko"},
				{FirstName: "Iryna", LastName: "Bondar"},
			}
			for i := range roster {
				if err := employees.Create(cmd.Context(), &roster[i]); err != nil {
					return err
				}
				log.Printf("seeded employee %s %s", roster[i].FirstName, roster[i].LastName)
			}
			return nil
		},
	}
}

// ======================================================
// WIRING
// ======================================================

func newConsole(cfg *config.Config, db *gorm.DB) *console.Console {
	clientRepo := infraRepo.NewClientGormRepository(db)
	realEstateRepo := infraRepo.NewRealEstateGormRepository(db)
	employeeRepo := infraRepo.NewEmployeeGormRepository(db)
	meetingRepo := infraRepo.NewMeetingGormRepository(db)
	agreementRepo := infraRepo.NewAgreementGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clients := service.NewClientService(clientRepo, auditDispatcher)
	realEstates := service.NewRealEstateService(realEstateRepo, clients, auditDispatcher)
	employees := service.NewEmployeeService(employeeRepo)
	meetings := service.NewMeetingService(
		meetingRepo,
		realEstates,
		clients,
		employees,
		auditDispatcher,
	)
	agreements := service.NewAgreementService(
		agreementRepo,
		realEstates,
		clients,
		auditDispatcher,
	)

	return console.New(cfg.Timezone, clients, realEstates, meetings, agreements, employees)
}
