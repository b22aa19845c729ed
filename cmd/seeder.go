package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a super admin and starter records for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"user_tasks", "designations", "workstreams", "projects", "departments", "users"} {
				if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedSuperAdmin(db)
		seedStarterRecords(db)
	},
}

func seedSuperAdmin(db *sqlx.DB) {
	email := "admin@tracko.local"

	var exists int
	if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", email).Scan(&exists); err == nil {
		fmt.Println("super admin already exists:", email)
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	_, err := db.Exec(
		`INSERT INTO users (email, name, password_hash, role, status, is_deleted, created_at, updated_at)
		 VALUES ($1, $2, $3, 0, 1, false, now(), now())`,
		email, "Super Admin", string(hash))
	if err != nil {
		log.Fatalf("failed to insert super admin: %v", err)
	}
	fmt.Println("Seeded super admin:", email)
}

func seedStarterRecords(db *sqlx.DB) {
	var adminID int64
	if err := db.QueryRow("SELECT id FROM users WHERE email = $1", "admin@tracko.local").Scan(&adminID); err != nil {
		log.Fatalf("failed to lookup super admin id: %v", err)
	}

	departments := []struct {
		Name string
		Desc string
	}{
		{"Engineering", "Product engineering"},
		{"Human Resources", "People operations"},
	}
	for _, d := range departments {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM departments WHERE name = $1 AND is_deleted = false", d.Name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			`INSERT INTO departments (name, description, status, added_by, is_deleted, created_at, updated_at)
			 VALUES ($1, $2, 1, $3, false, now(), now())`,
			d.Name, d.Desc, adminID); err != nil {
			log.Fatalf("failed to insert department %s: %v", d.Name, err)
		}
		fmt.Println("Seeded department:", d.Name)
	}

	var engineeringID int64
	if err := db.QueryRow("SELECT id FROM departments WHERE name = $1 AND is_deleted = false", "Engineering").Scan(&engineeringID); err != nil {
		log.Fatalf("failed to lookup engineering department: %v", err)
	}

	designations := []struct {
		Name string
		Desc string
	}{
		{"Software Engineer", "Builds the product"},
		{"Engineering Manager", "Leads an engineering team"},
	}
	for _, d := range designations {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM designations WHERE name = $1 AND is_deleted = false", d.Name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			`INSERT INTO designations (name, description, department_id, status, added_by, is_deleted, created_at, updated_at)
			 VALUES ($1, $2, $3, 1, $4, false, now(), now())`,
			d.Name, d.Desc, engineeringID, adminID); err != nil {
			log.Fatalf("failed to insert designation %s: %v", d.Name, err)
		}
		fmt.Println("Seeded designation:", d.Name)
	}

	workstreams := []struct {
		Name string
		Desc string
	}{
		{"Development", "Feature development work"},
		{"Maintenance", "Bug fixes and upkeep"},
		{"Meetings", "Syncs and planning"},
	}
	for _, w := range workstreams {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM workstreams WHERE name = $1 AND is_deleted = false", w.Name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			`INSERT INTO workstreams (name, description, status, added_by, is_deleted, created_at, updated_at)
			 VALUES ($1, $2, 1, $3, false, now(), now())`,
			w.Name, w.Desc, adminID); err != nil {
			log.Fatalf("failed to insert workstream %s: %v", w.Name, err)
		}
		fmt.Println("Seeded workstream:", w.Name)
	}
}
