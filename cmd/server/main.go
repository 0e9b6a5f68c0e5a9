// @title           SocietyPro API
// @version         1.0
// @description     A multi-tenant housing society management service with billing, notices, complaints, visitor passes, facility bookings and polls

// @contact.name   API Support
// @contact.email  support@societypro.in

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/Ayushman2005/SocietyPro/internal/app/routes"
	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/database"
	"github.com/Ayushman2005/SocietyPro/internal/jobs"
	Logger "github.com/Ayushman2005/SocietyPro/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "societypro",
	Short: "SocietyPro residential community management server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, db := bootstrap()
		if err := runMigrations(db, cfg); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration completed")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// bootstrap loads the environment, the configuration and the database pool.
func bootstrap() (*config.Config, *gorm.DB) {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		Logger.Warning("Could not load .env file: %v", err)
		// Environment variables may be set through other means
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	connectionPool = pool

	return cfg, pool.GetDB()
}

// connectionPool is kept for reporting pool statistics at startup.
var connectionPool *database.ConnectionPool

func runServe() {
	cfg, db := bootstrap()

	if err := runMigrations(db, cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ensureAdminExists(db, cfg)

	redisClient := newRedisClient(cfg)

	r, serviceContainer := routes.SetupRouter(db, cfg, redisClient)

	scheduler := jobs.NewScheduler(serviceContainer)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	port := cfg.ServerPort

	printSystemInfo(connectionPool)

	Logger.Info("Server starting at: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// runMigrations applies the schema according to the configured migration mode.
func runMigrations(db *gorm.DB, cfg *config.Config) error {
	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("Warning: running in drop mode, all tables will be dropped and recreated")
		return dropAndRecreateTables(db)
	case "alter":
		log.Println("Running in alter mode, table structure will be adjusted to match the models")
		return advancedMigrate(db, cfg)
	default:
		log.Println("Running in standard mode, only new columns and tables will be added")
		return autoMigrate(db)
	}
}

// autoMigrate migrates all models (adds new columns and tables only).
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Resident{},
		&models.SocietyFund{},
		&models.Bill{},
		&models.Notice{},
		&models.Complaint{},
		&models.Visitor{},
		&models.Booking{},
		&models.Facility{},
		&models.Poll{},
		&models.PollVote{},
		&models.EmergencyContact{},
		&models.ContactInquiry{},
		&models.PasswordReset{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// advancedMigrate drops columns that no longer exist on the models
// before running the standard migration.
func advancedMigrate(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	// Residents carried flat/wing address columns in earlier releases.
	var tableExists int
	err = sqlDB.QueryRow("SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = 'residents'", cfg.DBName).Scan(&tableExists)
	if err != nil {
		log.Printf("Failed to check whether the residents table exists: %v", err)
	}

	if tableExists > 0 {
		rows, err := sqlDB.Query(`
			SELECT COLUMN_NAME
			FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = ? AND TABLE_NAME = 'residents'
		`, cfg.DBName)

		if err != nil {
			log.Printf("Failed to query resident columns: %v", err)
		} else {
			defer rows.Close()

			modelColumns := map[string]bool{
				"id": true, "name": true, "email": true, "password": true,
				"admin_id": true, "created_at": true, "updated_at": true,
			}

			for rows.Next() {
				var columnName string
				if err := rows.Scan(&columnName); err != nil {
					log.Printf("Failed to scan column info: %v", err)
					continue
				}

				if !modelColumns[columnName] {
					log.Printf("Found stale column on residents table: %s, dropping", columnName)
					_, err = sqlDB.Exec(fmt.Sprintf("ALTER TABLE residents DROP COLUMN %s", columnName))
					if err != nil {
						log.Printf("Failed to drop column: %v", err)
					}
				}
			}
		}
	}

	return autoMigrate(db)
}

// dropAndRecreateTables drops every table and rebuilds the schema.
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"admins", "residents", "society_funds", "bills", "notices",
		"complaints", "visitors", "bookings", "facilities", "polls",
		"poll_votes", "emergency_contacts", "contact_inquiries", "password_resets",
	}

	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		_, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
		if err != nil {
			log.Printf("Failed to drop table: %v", err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists seeds a default admin account on an empty database
// so the panel is reachable after a fresh deployment.
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		adminService := services.NewAdminService(db, cfg)
		_, err := adminService.Register("Administrator", cfg.DefaultAdminEmail, "Default Society", cfg.DefaultAdminPassword)
		if err != nil {
			log.Fatalf("Failed to create default admin account: %v", err)
		}

		log.Printf("Created default admin account: %s", cfg.DefaultAdminEmail)
	}
}

// newRedisClient builds the optional dashboard cache client. The server
// runs fine without Redis, the container degrades it to a no-op.
func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
}

// printSystemInfo reports pool and runtime statistics at startup.
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Database connection pool status: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory usage: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
