package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"trace_app_go/config"
	"trace_app_go/db"
	"trace_app_go/models"
	"trace_app_go/services"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Open(cfg.DBPath, cfg.Environment, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database, &models.Admin{}, &models.AdminSession{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Administrator ===")
	fmt.Println()

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	// Get password securely
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println() // New line after password input

	fmt.Print("Confirm password: ")
	confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println()

	if string(passwordBytes) != string(confirmBytes) {
		log.Fatal("Passwords do not match")
	}

	// Check if admin already exists
	var existing models.Admin
	if err := database.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Fatalf("Admin %s already exists", username)
	}

	auth := services.NewAdminAuth(database, zap.NewNop())
	admin, err := auth.CreateAdmin(context.Background(), username, string(passwordBytes))
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✓ Administrator created successfully!")
	fmt.Printf("  ID: %s\n", admin.ID)
	fmt.Printf("  Username: %s\n", admin.Username)
	fmt.Println()
	fmt.Printf("Sign in at http://localhost:%s/admin/login\n", cfg.ServerPort)
}
