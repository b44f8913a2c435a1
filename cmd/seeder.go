package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a development login and sample employees.`,
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
			if _, err := db.Exec("DELETE FROM employees"); err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			if _, err := db.Exec("DELETE FROM users"); err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		adminEmail := "admin@mail.com"
		var exists int
		row := db.QueryRow("SELECT 1 FROM users WHERE email = $1", adminEmail)
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists")
		} else {
			if _, err := db.Exec(
				"INSERT INTO users (email, password_hash, created_at, updated_at) VALUES ($1, $2, now(), now())",
				adminEmail, string(hash)); err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded login user:", adminEmail)
		}

		employees := []struct {
			FirstName  string
			LastName   string
			Email      string
			Department string
			Position   string
			Salary     float64
		}{
			{"Alice", "Hartono", "alice@mail.com", "IT", "Developer", 85000},
			{"Budi", "Santoso", "budi@mail.com", "IT", "SysAdmin", 78000},
			{"Citra", "Wijaya", "citra@mail.com", "HR", "Recruiter", 62000},
		}

		for _, e := range employees {
			row := db.QueryRow("SELECT 1 FROM employees WHERE email = $1", e.Email)
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				`INSERT INTO employees (first_name, last_name, email, department, position, salary, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
				e.FirstName, e.LastName, e.Email, e.Department, e.Position, e.Salary); err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			fmt.Println("Seeded employee:", e.Email)
		}
	},
}
