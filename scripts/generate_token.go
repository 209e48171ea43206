package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "User ID for the token")
	email := flag.String("email", "", "Email claim")
	roles := flag.String("roles", string(domain.RoleAdmin), "Comma-separated list of roles")
	expiration := flag.Duration("exp", 24*time.Hour, "Token lifetime")
	tenantID := flag.String("tenant", "", "Tenant ID for the token")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if *tenantID == "" {
		log.Fatal("Tenant ID is required")
	}

	secret, ok := os.LookupEnv("JWT_SECRET_KEY")
	if !ok || secret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}

	var roleList pq.StringArray
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	issuer := service.NewTokenIssuer(secret, *expiration)
	token, err := issuer.Issue(&domain.User{
		ID:       *userID,
		TenantID: *tenantID,
		Email:    *email,
		Roles:    roleList,
	})
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", token)
}
